package render

import (
	"reflect"

	"github.com/go-gl/mathgl/mgl32"
)

// ElemType identifies the wire type of one attribute component. The GL
// backend maps these to the driver's enum values; this package stays free
// of gl imports so layouts can be derived and tested headless.
type ElemType uint8

const (
	// ElemFloat is a 32-bit IEEE float component.
	ElemFloat ElemType = iota
	// ElemByte is a signed 8-bit integer component.
	ElemByte
	// ElemUInt2101010Rev is a 32-bit word packing four components in the
	// reversed 2-10-10-10 arrangement (see PackedRGBA).
	ElemUInt2101010Rev
)

// Format describes how one vertex field is presented to the GPU: how many
// components it has, their wire type, whether integer data is normalized to
// float on the way in, and how many bytes the field occupies in the record.
// Sizes are fixed per type; nothing here depends on instance data.
type Format struct {
	Components int32
	Elem       ElemType
	Normalized bool
	// Integer selects the integer attribute pointer form, which hands the
	// shader raw integers instead of converting to float.
	Integer bool
	Size    int
}

// Int8 is a single signed byte attribute delivered to the shader as a raw
// integer.
type Int8 int8

// NormInt8 is a single signed byte attribute normalized to a [-1, 1] float.
type NormInt8 int8

// formats is the closed set of vertex field types. Float vectors come from
// mathgl; the packed and byte types are defined in this package.
var formats = map[reflect.Type]Format{
	reflect.TypeOf(mgl32.Vec2{}):  {Components: 2, Elem: ElemFloat, Size: 8},
	reflect.TypeOf(mgl32.Vec3{}):  {Components: 3, Elem: ElemFloat, Size: 12},
	reflect.TypeOf(mgl32.Vec4{}):  {Components: 4, Elem: ElemFloat, Size: 16},
	reflect.TypeOf(PackedRGBA(0)): {Components: 4, Elem: ElemUInt2101010Rev, Normalized: true, Size: 4},
	reflect.TypeOf(Int8(0)):       {Components: 1, Elem: ElemByte, Integer: true, Size: 1},
	reflect.TypeOf(NormInt8(0)):   {Components: 1, Elem: ElemByte, Normalized: true, Size: 1},
}

// FormatOf returns the attribute format for a vertex field type, and whether
// the type is part of the supported set.
func FormatOf(t reflect.Type) (Format, bool) {
	f, ok := formats[t]
	return f, ok
}
