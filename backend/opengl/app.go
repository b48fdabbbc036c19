package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/glbind/render"
)

// App drives the per-frame loop over one linked program and one vertex
// array: drain events, clear, draw, present. It owns none of its parts; the
// caller remains responsible for deleting them.
type App struct {
	window      *Window
	program     *Program
	vao         *VertexArray
	vertexCount int32
}

// NewApp prepares the frame loop and sets the initial viewport from the
// window's framebuffer size.
func NewApp(window *Window, program *Program, vao *VertexArray, vertexCount int) *App {
	width, height := window.FramebufferSize()
	gl.Viewport(0, 0, int32(width), int32(height))
	return &App{
		window:      window,
		program:     program,
		vao:         vao,
		vertexCount: int32(vertexCount),
	}
}

// SetClearColor sets the color the framebuffer is cleared to each frame.
func (a *App) SetClearColor(r, g, b, alpha float32) {
	gl.ClearColor(r, g, b, alpha)
}

// Run draws until a quit event or an Escape press. Events are drained and
// folded at the top of each iteration, so quitting takes effect at the
// iteration boundary, never mid-draw, and a resize updates the viewport
// before the frame that follows it.
//
// There is nothing to return: GLFW surfaces steady-state failures through
// its error callback rather than per-call results, and setup failures have
// all been handled before the loop starts.
func (a *App) Run() {
	for {
		out := render.Reduce(a.window.Drain())
		if out.Resized {
			gl.Viewport(0, 0, int32(out.Width), int32(out.Height))
		}
		if out.Quit {
			return
		}

		gl.Clear(gl.COLOR_BUFFER_BIT)

		a.program.Use()
		a.vao.Bind()
		gl.DrawArrays(gl.TRIANGLES, 0, a.vertexCount)

		a.window.SwapBuffers()
	}
}
