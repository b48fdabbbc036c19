package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/glbind/render"
)

// WindowOption configures a Window.
type WindowOption func(*windowConfig)

type windowConfig struct {
	resizable bool
	vsync     bool
}

// WithResizable controls whether the window can be resized. Default true.
func WithResizable(resizable bool) WindowOption {
	return func(c *windowConfig) { c.resizable = resizable }
}

// WithVSync controls buffer-swap synchronization. Default true.
func WithVSync(vsync bool) WindowOption {
	return func(c *windowConfig) { c.vsync = vsync }
}

// Window wraps a GLFW window with an OpenGL 4.1 core context and a per-frame
// drained event queue. GLFW callbacks accumulate events; Drain hands them to
// the frame loop once per iteration.
//
// All of it must stay on the main thread (runtime.LockOSThread in the
// binary's init).
type Window struct {
	win    *glfw.Window
	events []render.Event
}

// NewWindow initializes GLFW, creates the window with a core-profile 4.1
// context, makes the context current, and loads the OpenGL function
// pointers. Any failure here is unrecoverable for the caller.
func NewWindow(title string, width, height int, opts ...WindowOption) (*Window, error) {
	cfg := windowConfig{resizable: true, vsync: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.vsync {
		glfw.SwapInterval(1)
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	w := &Window{win: win}
	win.SetKeyCallback(w.keyCallback)
	win.SetFramebufferSizeCallback(w.framebufferSizeCallback)
	win.SetCloseCallback(w.closeCallback)
	return w, nil
}

// Drain polls the window system and returns the events accumulated since
// the previous call. The returned slice is the frame's to keep.
func (w *Window) Drain() []render.Event {
	glfw.PollEvents()
	events := w.events
	w.events = nil
	return events
}

// FramebufferSize returns the current framebuffer size in pixels.
func (w *Window) FramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

// SwapBuffers presents the frame.
func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

// Destroy releases the window and shuts GLFW down.
func (w *Window) Destroy() {
	w.win.Destroy()
	glfw.Terminate()
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	w.events = append(w.events, render.Event{Kind: render.EventKeyDown, Key: mapKey(key)})
}

func (w *Window) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	w.events = append(w.events, render.Event{Kind: render.EventWindowResized, Width: width, Height: height})
}

func (w *Window) closeCallback(_ *glfw.Window) {
	w.events = append(w.events, render.Event{Kind: render.EventQuit})
}

func mapKey(key glfw.Key) render.Key {
	switch key {
	case glfw.KeyEscape:
		return render.KeyEscape
	}
	return render.KeyNone
}
