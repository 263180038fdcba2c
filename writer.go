package kas

import "os"

// writeFile sorts nothing (items must already be in canonical order),
// packs them, and emits the header, descriptor table, keys, and arrays in
// one forward pass. Every offset is known before any byte is written, so
// there is no seeking back to patch a field.
func writeFile(f *os.File, items []*item) error {
	fileSize := pack(items)

	h := header{
		versionMajor: libraryVersionMajor,
		versionMinor: libraryVersionMinor,
		numItems:     uint32(len(items)),
		fileSize:     fileSize,
	}

	if _, err := f.Write(h.encode()); err != nil {
		return newErr(IOError, "write", err)
	}

	for _, it := range items {
		d := descriptor{
			typ:        it.typ,
			keyStart:   it.keyStart,
			keyLen:     uint64(len(it.key)),
			arrayStart: it.arrayStart,
			arrayLen:   it.arrayLen(),
		}
		if _, err := f.Write(d.encode()); err != nil {
			return newErr(IOError, "write", err)
		}
	}

	for _, it := range items {
		if _, err := f.Write(it.key); err != nil {
			return newErr(IOError, "write", err)
		}
	}

	current := descriptorTableOffset + uint64(len(items))*descriptorSize
	for _, it := range items {
		current += uint64(len(it.key))
	}

	var padding [8]byte
	for _, it := range items {
		padLen := it.arrayStart - current
		if padLen > 0 {
			if _, err := f.Write(padding[:padLen]); err != nil {
				return newErr(IOError, "write", err)
			}
		}
		if _, err := f.Write(it.array.Bytes()); err != nil {
			return newErr(IOError, "write", err)
		}
		current = it.arrayStart + it.arrayByteLen()
	}

	return nil
}
