// Package opengl is the OpenGL 4.1 backend: it owns the driver-side
// resources (buffers, vertex arrays, shaders, programs, the window) and
// applies vertex layouts derived by the render package.
package opengl

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Target selects the binding point a Buffer is created for. It is fixed for
// the buffer's lifetime.
type Target uint32

const (
	ArrayBuffer        Target = gl.ARRAY_BUFFER
	ElementArrayBuffer Target = gl.ELEMENT_ARRAY_BUFFER
)

// Buffer owns one GPU buffer object name. Ownership is exclusive: create it
// in the scope that will Delete it, usually via defer.
type Buffer struct {
	id     uint32
	target Target
}

// NewBuffer allocates a buffer object name for the given target.
func NewBuffer(target Target) *Buffer {
	b := &Buffer{target: target}
	gl.GenBuffers(1, &b.id)
	return b
}

// Bind makes this buffer current for its target. Binding points are
// context-wide state; binding replaces whatever was bound before.
func (b *Buffer) Bind() {
	gl.BindBuffer(uint32(b.target), b.id)
}

// Unbind clears the binding point for this buffer's target.
func (b *Buffer) Unbind() {
	gl.BindBuffer(uint32(b.target), 0)
}

// Delete releases the buffer name. Safe to call more than once.
func (b *Buffer) Delete() {
	if b.id != 0 {
		gl.DeleteBuffers(1, &b.id)
		b.id = 0
	}
}

// StaticDraw uploads the records into the buffer as static-usage data.
// The buffer must be bound; the driver does not report a violation of that,
// so it is a caller contract. Zero records mean zero bytes to upload and no
// driver call is made.
func StaticDraw[T any](b *Buffer, records []T) {
	if len(records) == 0 {
		return
	}
	gl.BufferData(uint32(b.target), ByteSize(records), gl.Ptr(records), gl.STATIC_DRAW)
}

// ByteSize is the combined byte size of the records as uploaded: one stride
// per record, no gaps.
func ByteSize[T any](records []T) int {
	var zero T
	return len(records) * int(unsafe.Sizeof(zero))
}

// VertexArray owns one vertex array object name. Binding it makes it the
// target of subsequent attribute layout calls and associates the buffer
// bound while it is bound; the association is a binding, not ownership.
type VertexArray struct {
	id uint32
}

// NewVertexArray allocates a vertex array object name.
func NewVertexArray() *VertexArray {
	v := &VertexArray{}
	gl.GenVertexArrays(1, &v.id)
	return v
}

// Bind makes this vertex array current.
func (v *VertexArray) Bind() {
	gl.BindVertexArray(v.id)
}

// Unbind clears the current vertex array.
func (v *VertexArray) Unbind() {
	gl.BindVertexArray(0)
}

// Delete releases the vertex array name. Buffers it references are
// untouched. Safe to call more than once.
func (v *VertexArray) Delete() {
	if v.id != 0 {
		gl.DeleteVertexArrays(1, &v.id)
		v.id = 0
	}
}
