package render

import "github.com/chewxy/math32"

// PackedRGBA packs four color components into one 32-bit word using the
// reversed 2-10-10-10 arrangement the GPU reads as four normalized
// components:
//
//	bits 31-30  alpha (2 bits)
//	bits 29-20  blue  (10 bits)
//	bits 19-10  green (10 bits)
//	bits  9-0   red   (10 bits)
//
// The bit order matters: it must match the element type declared in the
// attribute format, or the GPU decodes the channels in the wrong order with
// no error signal.
type PackedRGBA uint32

// NewPackedRGBA quantizes r, g and b to 10 bits and a to 2 bits. Components
// are clamped to [0, 1] before quantization.
func NewPackedRGBA(r, g, b, a float32) PackedRGBA {
	return PackedRGBA(quantize(a, 3)<<30 |
		quantize(b, 1023)<<20 |
		quantize(g, 1023)<<10 |
		quantize(r, 1023))
}

func quantize(v float32, max uint32) uint32 {
	v = math32.Max(0, math32.Min(1, v))
	return uint32(math32.Floor(v*float32(max) + 0.5))
}

// R returns the red component decoded back to [0, 1].
func (p PackedRGBA) R() float32 { return float32(p&0x3ff) / 1023 }

// G returns the green component decoded back to [0, 1].
func (p PackedRGBA) G() float32 { return float32(p>>10&0x3ff) / 1023 }

// B returns the blue component decoded back to [0, 1].
func (p PackedRGBA) B() float32 { return float32(p>>20&0x3ff) / 1023 }

// A returns the alpha component decoded back to [0, 1]. Alpha has only two
// bits, so it round-trips through {0, 1/3, 2/3, 1}.
func (p PackedRGBA) A() float32 { return float32(p>>30&0x3) / 3 }
