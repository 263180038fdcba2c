package kas

import "encoding/binary"

// Array is a read-only, typed view over a homogeneous numeric array. It
// borrows its backing bytes — from a caller's slice in write mode, or from
// the store's read buffer (mapped or owned) in read mode — and must not be
// retained past the lifetime of whichever one it borrows from.
type Array struct {
	typ  ElementType
	raw  []byte // len(raw) == count * width(typ)
	n    int    // element count
}

// NewArray builds an Array view over raw, which must already hold exactly
// n elements of typ (n*width(typ) bytes), little-endian. It does not copy
// raw; the caller must keep it alive for as long as the Array is used.
func NewArray(typ ElementType, raw []byte, n int) (Array, error) {
	width, ok := typ.Width()
	if !ok {
		return Array{}, newErr(BadType, "NewArray", nil)
	}
	if len(raw) != n*int(width) {
		return Array{}, newErr(BadFileFormat, "NewArray", nil)
	}
	return Array{typ: typ, raw: raw, n: n}, nil
}

// Type returns the array's element type.
func (a Array) Type() ElementType { return a.typ }

// Len returns the array's element count. May be 0.
func (a Array) Len() int { return a.n }

// Bytes returns the array's raw backing bytes, little-endian, unchecked
// against Type — callers that know the type should prefer the typed
// accessors below.
func (a Array) Bytes() []byte { return a.raw }

func (a Array) Int8() []int8 {
	out := make([]int8, a.n)
	for i := range out {
		out[i] = int8(a.raw[i])
	}
	return out
}

func (a Array) Uint8() []uint8 {
	out := make([]uint8, a.n)
	copy(out, a.raw)
	return out
}

func (a Array) Int32() []int32 {
	out := make([]int32, a.n)
	for i := range out {
		out[i] = int32(binary.LittleEndian.Uint32(a.raw[i*4:]))
	}
	return out
}

func (a Array) Uint32() []uint32 {
	out := make([]uint32, a.n)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(a.raw[i*4:])
	}
	return out
}

func (a Array) Int64() []int64 {
	out := make([]int64, a.n)
	for i := range out {
		out[i] = int64(binary.LittleEndian.Uint64(a.raw[i*8:]))
	}
	return out
}

func (a Array) Uint64() []uint64 {
	out := make([]uint64, a.n)
	for i := range out {
		out[i] = binary.LittleEndian.Uint64(a.raw[i*8:])
	}
	return out
}

func (a Array) Float32() []float32 {
	out := make([]float32, a.n)
	for i := range out {
		out[i] = decodeFloat32(binary.LittleEndian.Uint32(a.raw[i*4:]))
	}
	return out
}

func (a Array) Float64() []float64 {
	out := make([]float64, a.n)
	for i := range out {
		out[i] = decodeFloat64(binary.LittleEndian.Uint64(a.raw[i*8:]))
	}
	return out
}
