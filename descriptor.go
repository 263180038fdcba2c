package kas

import "encoding/binary"

const descriptorSize = 64

const (
	descOffType       = 0x00 // uint8
	descOffReserved1  = 0x01 // 7 reserved bytes through 0x07
	descOffKeyStart   = 0x08 // uint64 LE
	descOffKeyLen     = 0x10 // uint64 LE
	descOffArrayStart = 0x18 // uint64 LE
	descOffArrayLen   = 0x20 // uint64 LE
	descOffReserved2  = 0x28 // 24 reserved bytes through 0x3F
)

// descriptorTableOffset returns the file offset where the descriptor
// table begins: immediately after the 64-byte header.
const descriptorTableOffset = headerSize

type descriptor struct {
	typ        ElementType
	keyStart   uint64
	keyLen     uint64
	arrayStart uint64
	arrayLen   uint64
}

func (d *descriptor) encode() []byte {
	buf := make([]byte, descriptorSize)

	buf[descOffType] = uint8(d.typ)
	binary.LittleEndian.PutUint64(buf[descOffKeyStart:], d.keyStart)
	binary.LittleEndian.PutUint64(buf[descOffKeyLen:], d.keyLen)
	binary.LittleEndian.PutUint64(buf[descOffArrayStart:], d.arrayStart)
	binary.LittleEndian.PutUint64(buf[descOffArrayLen:], d.arrayLen)
	// reserved regions are already zero.

	return buf
}

// decodeDescriptor parses one descriptorSize-byte record and validates its
// bounds against fileSize. It does not validate canonical packing — that
// is the reader's job once every descriptor and the expected layout are
// both in hand.
func decodeDescriptor(buf []byte, fileSize uint64) (descriptor, error) {
	typ := ElementType(buf[descOffType])
	if !typ.Valid() {
		return descriptor{}, newErr(BadType, "open", nil)
	}

	d := descriptor{
		typ:        typ,
		keyStart:   binary.LittleEndian.Uint64(buf[descOffKeyStart:]),
		keyLen:     binary.LittleEndian.Uint64(buf[descOffKeyLen:]),
		arrayStart: binary.LittleEndian.Uint64(buf[descOffArrayStart:]),
		arrayLen:   binary.LittleEndian.Uint64(buf[descOffArrayLen:]),
	}

	width, _ := typ.Width()

	if d.keyStart > fileSize || d.keyLen > fileSize-d.keyStart {
		return descriptor{}, newErr(BadFileFormat, "open", nil)
	}

	arrayByteLen, overflow := mulOverflows(d.arrayLen, uint64(width))
	if overflow || d.arrayStart > fileSize || arrayByteLen > fileSize-d.arrayStart {
		return descriptor{}, newErr(BadFileFormat, "open", nil)
	}

	return d, nil
}

// mulOverflows returns a*b and whether the uint64 multiplication
// overflowed, so bounds checks downstream of it can't be defeated by a
// wrapped product.
func mulOverflows(a, b uint64) (product uint64, overflow bool) {
	if a == 0 || b == 0 {
		return 0, false
	}
	product = a * b
	return product, product/b != a
}
