/*
Package render derives GPU vertex layouts from Go struct types.

# Overview

A vertex record is an ordered struct of fields from a closed set of
GPU-transferable types, each tagged with the shader attribute location it
feeds. The package derives the byte layout (per-field offset, total stride)
from the field declaration order, so the struct is the single source of
truth for both the in-memory layout and the layout described to the driver.
Computing offsets by hand is how geometry ends up silently garbled; here a
wrong layout is a derivation error, not a blank window.

# Quick Start

	type Vertex struct {
	    Pos   mgl32.Vec3        `location:"0"`
	    Color render.PackedRGBA `location:"1"`
	}

	layout, err := render.LayoutOf[Vertex]()
	// layout.Stride == 16, offsets 0 and 12

	vao.Bind()
	vbo.Bind()
	opengl.SetVertexAttribPointers(layout)
	vbo.Unbind()
	vao.Unbind()

The package itself never touches the driver; backend/opengl turns a Layout
into the matching attribute pointer calls. Everything here is usable
headless, which is also how it is tested.
*/
package render
