package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/glbind/render"
)

// SetVertexAttribPointers registers a derived vertex layout with the
// currently bound vertex array and buffer. Call order contract:
//
//	vao.Bind()
//	vbo.Bind()
//	opengl.SetVertexAttribPointers(layout)
//	vbo.Unbind()
//	vao.Unbind()
//
// Each attribute is enabled at its declared location and described with the
// layout's stride and the field's offset. Integer formats use the integer
// pointer form; everything else goes through the float form with the
// format's normalization flag.
func SetVertexAttribPointers(layout render.Layout) {
	stride := int32(layout.Stride)
	for _, a := range layout.Attributes {
		gl.EnableVertexAttribArray(a.Location)
		if a.Format.Integer {
			gl.VertexAttribIPointerWithOffset(a.Location, a.Format.Components, glElemType(a.Format.Elem), stride, uintptr(a.Offset))
		} else {
			gl.VertexAttribPointerWithOffset(a.Location, a.Format.Components, glElemType(a.Format.Elem), a.Format.Normalized, stride, uintptr(a.Offset))
		}
	}
}

func glElemType(e render.ElemType) uint32 {
	switch e {
	case render.ElemFloat:
		return gl.FLOAT
	case render.ElemByte:
		return gl.BYTE
	case render.ElemUInt2101010Rev:
		return gl.UNSIGNED_INT_2_10_10_10_REV
	}
	panic(fmt.Sprintf("opengl: unknown element type %d", e))
}
