// Command example opens a window and draws one colored triangle with a
// vertex layout derived from the Vertex record's field tags.
//
// Prerequisites: OpenGL 4.1 and the GLFW native headers (X11 on Linux).
// The shader sources are loaded from assets/shaders next to the built
// binary.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/glbind/render"
	"github.com/glbind/render/backend/opengl"
	"github.com/glbind/render/resources"
)

const (
	windowWidth  = 800
	windowHeight = 700
	windowTitle  = "triangle"
)

// Vertex is one unit of per-vertex data. Field order defines the byte
// layout; the location tag names the shader input slot each field feeds.
type Vertex struct {
	Pos   mgl32.Vec3        `location:"0"`
	Color render.PackedRGBA `location:"1"`
}

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	layout, err := render.LayoutOf[Vertex]()
	if err != nil {
		return err
	}

	loader, err := resources.FromRelativeExePath("assets")
	if err != nil {
		return err
	}

	window, err := opengl.NewWindow(windowTitle, windowWidth, windowHeight)
	if err != nil {
		return err
	}
	defer window.Destroy()

	program, err := opengl.LoadProgram(loader, "shaders/triangle")
	if err != nil {
		return err
	}
	defer program.Delete()

	vertices := []Vertex{
		{Pos: mgl32.Vec3{0.5, -0.5, 0.0}, Color: render.NewPackedRGBA(1, 0, 0, 1)},  // bottom right
		{Pos: mgl32.Vec3{-0.5, -0.5, 0.0}, Color: render.NewPackedRGBA(0, 1, 0, 1)}, // bottom left
		{Pos: mgl32.Vec3{0.0, 0.5, 0.0}, Color: render.NewPackedRGBA(0, 0, 1, 1)},   // top
	}

	vbo := opengl.NewBuffer(opengl.ArrayBuffer)
	defer vbo.Delete()
	vbo.Bind()
	opengl.StaticDraw(vbo, vertices)
	vbo.Unbind()

	vao := opengl.NewVertexArray()
	defer vao.Delete()
	vao.Bind()
	vbo.Bind()
	opengl.SetVertexAttribPointers(layout)
	vbo.Unbind()
	vao.Unbind()

	slog.Info("scene ready",
		"vertices", len(vertices),
		"stride", layout.Stride,
		"uploaded_bytes", opengl.ByteSize(vertices))

	app := opengl.NewApp(window, program, vao, len(vertices))
	app.SetClearColor(0.24, 0.7, 0.5, 1.0)
	app.Run()
	return nil
}
