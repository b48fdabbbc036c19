package opengl

import "testing"

// Tests run without a GL context, so reaching any driver call here would
// fault. An empty upload has nothing to hand the driver and must return
// before building the data pointer, which cannot be taken of a zero-length
// slice.
func TestStaticDrawEmptySliceIsANoOp(t *testing.T) {
	b := &Buffer{target: ArrayBuffer}
	StaticDraw(b, []float32{})
	StaticDraw(b, []float32(nil))
}
