package render

import (
	"fmt"
	"reflect"
	"strconv"
)

// Attribute is one derived vertex field binding: which shader slot it feeds,
// how it is formatted, and where it starts within each record.
type Attribute struct {
	// Name is the struct field name, kept for diagnostics only.
	Name     string
	Location uint32
	Format   Format
	Offset   int
}

// Layout is the derived byte layout of one vertex record type. It is
// computed once, before any GPU resource exists, and never mutated.
type Layout struct {
	Attributes []Attribute
	Stride     int
}

// LayoutOf derives the attribute layout of the vertex record type T.
//
// T must be a flat struct whose every field has a type from the supported
// set and a `location:"N"` tag naming its shader input slot, N a
// non-negative integer. Offsets are the running sum of field sizes in
// declaration order and the stride is their total, so the derivation fails
// if Go inserts padding anywhere in T — reorder or pad the record
// explicitly rather than letting the compiler decide.
//
// Location uniqueness cannot be checked here: whether two fields may name
// the same slot is the shader author's contract.
func LayoutOf[T any]() (Layout, error) {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Struct {
		return Layout{}, fmt.Errorf("vertex type %s: only flat struct vertex records are supported", t)
	}

	layout := Layout{Attributes: make([]Attribute, 0, t.NumField())}
	offset := 0
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)

		tag, ok := f.Tag.Lookup("location")
		if !ok {
			return Layout{}, fmt.Errorf("vertex type %s: field %s is missing its location tag", t, f.Name)
		}
		loc, err := strconv.ParseUint(tag, 10, 32)
		if err != nil {
			return Layout{}, fmt.Errorf("vertex type %s: field %s has malformed location %q: want a non-negative integer", t, f.Name, tag)
		}

		format, ok := FormatOf(f.Type)
		if !ok {
			return Layout{}, fmt.Errorf("vertex type %s: field %s has unsupported type %s", t, f.Name, f.Type)
		}

		// The running sum must be the real in-memory offset, or the bytes
		// uploaded from []T would not match the layout described to the GPU.
		if int(f.Offset) != offset {
			return Layout{}, fmt.Errorf("vertex type %s: field %s sits at byte %d, layout expects %d: struct padding breaks the packed layout", t, f.Name, f.Offset, offset)
		}

		layout.Attributes = append(layout.Attributes, Attribute{
			Name:     f.Name,
			Location: uint32(loc),
			Format:   format,
			Offset:   offset,
		})
		offset += format.Size
	}

	if int(t.Size()) != offset {
		return Layout{}, fmt.Errorf("vertex type %s: size is %d bytes, layout expects %d: trailing struct padding breaks the packed layout", t, t.Size(), offset)
	}
	layout.Stride = offset
	return layout, nil
}

// MustLayoutOf is LayoutOf for vertex types fixed at compile time. A
// derivation failure is a defect in the record declaration, so it panics.
func MustLayoutOf[T any]() Layout {
	layout, err := LayoutOf[T]()
	if err != nil {
		panic(err)
	}
	return layout
}
