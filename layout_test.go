package render_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glbind/render"
)

// triangleVertex is the two-field record the example binary ships.
type triangleVertex struct {
	Pos   mgl32.Vec3        `location:"0"`
	Color render.PackedRGBA `location:"1"`
}

func TestLayoutOfTriangleVertex(t *testing.T) {
	layout, err := render.LayoutOf[triangleVertex]()
	require.NoError(t, err)

	require.Len(t, layout.Attributes, 2)
	assert.Equal(t, 16, layout.Stride)

	pos := layout.Attributes[0]
	assert.Equal(t, uint32(0), pos.Location)
	assert.Equal(t, 0, pos.Offset)
	assert.Equal(t, int32(3), pos.Format.Components)
	assert.Equal(t, render.ElemFloat, pos.Format.Elem)
	assert.False(t, pos.Format.Normalized)

	color := layout.Attributes[1]
	assert.Equal(t, uint32(1), color.Location)
	assert.Equal(t, 12, color.Offset)
	assert.Equal(t, int32(4), color.Format.Components)
	assert.Equal(t, render.ElemUInt2101010Rev, color.Format.Elem)
	assert.True(t, color.Format.Normalized)
}

func TestLayoutOffsetsAreRunningSums(t *testing.T) {
	type vertex struct {
		A mgl32.Vec2        `location:"0"` // 8 bytes
		B mgl32.Vec4        `location:"1"` // 16 bytes
		C mgl32.Vec3        `location:"2"` // 12 bytes
		D render.PackedRGBA `location:"3"` // 4 bytes
	}

	layout, err := render.LayoutOf[vertex]()
	require.NoError(t, err)
	require.Len(t, layout.Attributes, 4)

	offset := 0
	for _, a := range layout.Attributes {
		assert.Equal(t, offset, a.Offset, "attribute %s", a.Name)
		offset += a.Format.Size
	}
	assert.Equal(t, offset, layout.Stride)
	assert.Equal(t, 40, layout.Stride)
}

func TestLayoutLocationsPassThroughVerbatim(t *testing.T) {
	// Locations are the declared slots, not positional indices.
	type vertex struct {
		A mgl32.Vec3        `location:"7"`
		B render.PackedRGBA `location:"3"`
	}

	layout, err := render.LayoutOf[vertex]()
	require.NoError(t, err)
	require.Len(t, layout.Attributes, 2)
	assert.Equal(t, uint32(7), layout.Attributes[0].Location)
	assert.Equal(t, uint32(3), layout.Attributes[1].Location)
}

func TestLayoutRejectsMissingLocationTag(t *testing.T) {
	type vertex struct {
		Pos   mgl32.Vec3 `location:"0"`
		Color render.PackedRGBA
	}

	_, err := render.LayoutOf[vertex]()
	require.Error(t, err)
	assert.ErrorContains(t, err, "Color")
	assert.ErrorContains(t, err, "missing its location tag")
}

func TestLayoutRejectsMalformedLocationTag(t *testing.T) {
	for _, bad := range []struct {
		name string
		run  func() error
	}{
		{"word", func() error {
			type vertex struct {
				Pos mgl32.Vec3 `location:"first"`
			}
			_, err := render.LayoutOf[vertex]()
			return err
		}},
		{"negative", func() error {
			type vertex struct {
				Pos mgl32.Vec3 `location:"-1"`
			}
			_, err := render.LayoutOf[vertex]()
			return err
		}},
	} {
		t.Run(bad.name, func(t *testing.T) {
			err := bad.run()
			require.Error(t, err)
			assert.ErrorContains(t, err, "Pos")
			assert.ErrorContains(t, err, "malformed location")
		})
	}
}

func TestLayoutRejectsNonStruct(t *testing.T) {
	_, err := render.LayoutOf[[]float32]()
	require.Error(t, err)
	assert.ErrorContains(t, err, "only flat struct vertex records")
}

func TestLayoutRejectsUnsupportedFieldType(t *testing.T) {
	type vertex struct {
		Pos [3]float64 `location:"0"`
	}

	_, err := render.LayoutOf[vertex]()
	require.Error(t, err)
	assert.ErrorContains(t, err, "Pos")
	assert.ErrorContains(t, err, "unsupported type")
}

func TestLayoutRejectsInteriorPadding(t *testing.T) {
	// Go aligns the Vec3 to 4 bytes, leaving a gap after the byte field.
	type vertex struct {
		Flag render.Int8 `location:"0"`
		Pos  mgl32.Vec3  `location:"1"`
	}

	_, err := render.LayoutOf[vertex]()
	require.Error(t, err)
	assert.ErrorContains(t, err, "Pos")
	assert.ErrorContains(t, err, "padding")
}

func TestLayoutRejectsTrailingPadding(t *testing.T) {
	type vertex struct {
		Pos  mgl32.Vec3  `location:"0"`
		Flag render.Int8 `location:"1"`
	}

	_, err := render.LayoutOf[vertex]()
	require.Error(t, err)
	assert.ErrorContains(t, err, "padding")
}

func TestLayoutByteFieldFormats(t *testing.T) {
	type vertex struct {
		Raw  render.Int8     `location:"0"`
		Norm render.NormInt8 `location:"1"`
	}

	layout, err := render.LayoutOf[vertex]()
	require.NoError(t, err)
	require.Len(t, layout.Attributes, 2)
	assert.Equal(t, 2, layout.Stride)

	raw := layout.Attributes[0].Format
	assert.True(t, raw.Integer)
	assert.False(t, raw.Normalized)
	assert.Equal(t, render.ElemByte, raw.Elem)

	norm := layout.Attributes[1].Format
	assert.False(t, norm.Integer)
	assert.True(t, norm.Normalized)
	assert.Equal(t, render.ElemByte, norm.Elem)
}

func TestMustLayoutOf(t *testing.T) {
	layout := render.MustLayoutOf[triangleVertex]()
	assert.Equal(t, 16, layout.Stride)

	assert.Panics(t, func() {
		type bad struct {
			Pos mgl32.Vec3
		}
		render.MustLayoutOf[bad]()
	})
}
