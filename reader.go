package kas

import (
	"errors"
	"io"
	"os"

	"github.com/bits-and-blooms/bloom/v3"
)

// readState holds everything a read-mode Store owns: the whole-file
// buffer (mapped or owned), whether it's mapped, the parsed items, and
// the in-memory negative-lookup accelerator.
type readState struct {
	buf    []byte
	mapped bool
	items  []*item
	bloom  *bloom.BloomFilter
}

// ingestWhole acquires the whole file as a single byte slice: mapped
// read-only when the platform supports it and flags doesn't set NoMmap,
// or else read fully into an owned buffer. Either path returns a buffer
// of exactly the file's actual on-disk length.
func ingestWhole(f *os.File, flags Flags) (buf []byte, mapped bool, err error) {
	info, statErr := f.Stat()
	if statErr != nil {
		return nil, false, newErr(IOError, "open", statErr)
	}
	size := info.Size()

	if size < headerSize {
		return nil, false, newErr(BadFileFormat, "open", nil)
	}

	wantMmap := mmapSupported && flags&NoMmap == 0
	if wantMmap {
		data, mmapErr := mmapFile(f, size)
		if mmapErr == nil {
			return data, true, nil
		}
		// mmap is an optimization, not a contract: fall through to a
		// buffered read rather than failing the open outright.
	}

	buf = make([]byte, size)
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, false, newErr(IOError, "open", err)
	}
	if _, err := io.ReadFull(f, buf); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, false, newErr(BadFileFormat, "open", nil)
		}
		return nil, false, newErr(IOError, "open", err)
	}

	return buf, false, nil
}

// parseFile validates the header, descriptor table, and canonical packing
// of buf, and returns the parsed items in file order (which, in a valid
// file, is sorted order).
func parseFile(buf []byte) ([]*item, error) {
	h, err := decodeHeader(buf)
	if err != nil {
		return nil, err
	}

	if h.fileSize != uint64(len(buf)) {
		return nil, newErr(BadFileFormat, "open", nil)
	}

	if h.numItems == 0 {
		return nil, nil
	}

	descTableEnd := descriptorTableOffset + uint64(h.numItems)*descriptorSize
	if descTableEnd > h.fileSize {
		return nil, newErr(BadFileFormat, "open", nil)
	}

	descs := make([]descriptor, h.numItems)
	for i := range descs {
		start := descriptorTableOffset + uint64(i)*descriptorSize
		d, err := decodeDescriptor(buf[start:start+descriptorSize], h.fileSize)
		if err != nil {
			return nil, err
		}
		descs[i] = d
	}

	// Validate canonical packing: recompute the layout the packer would
	// have produced from these lengths alone, and demand an exact match.
	// This forbids overlapping items and holes beyond alignment padding.
	keyLens := make([]uint64, h.numItems)
	arrayByteLens := make([]uint64, h.numItems)
	for i, d := range descs {
		width, _ := d.typ.Width()
		keyLens[i] = d.keyLen
		arrayByteLens[i] = d.arrayLen * uint64(width)
	}
	wantKeyStarts, wantArrayStarts, _ := packOffsets(keyLens, arrayByteLens)

	items := make([]*item, h.numItems)
	for i, d := range descs {
		if d.keyStart != wantKeyStarts[i] || d.arrayStart != wantArrayStarts[i] {
			return nil, newErr(BadFileFormat, "open", nil)
		}

		width, _ := d.typ.Width()
		key := buf[d.keyStart : d.keyStart+d.keyLen]
		raw := buf[d.arrayStart : d.arrayStart+d.arrayLen*uint64(width)]

		arr, err := NewArray(d.typ, raw, int(d.arrayLen))
		if err != nil {
			return nil, err
		}

		items[i] = &item{
			key:        key,
			typ:        d.typ,
			array:      arr,
			keyStart:   d.keyStart,
			arrayStart: d.arrayStart,
		}

		if i > 0 && compareKeys(items[i-1].key, items[i].key) >= 0 {
			return nil, newErr(BadFileFormat, "open", nil)
		}
	}

	return items, nil
}

func openRead(f *os.File, flags Flags) (*readState, error) {
	buf, mapped, err := ingestWhole(f, flags)
	if err != nil {
		return nil, err
	}

	items, err := parseFile(buf)
	if err != nil {
		if mapped {
			_ = munmapFile(buf)
		}
		return nil, err
	}

	return &readState{
		buf:    buf,
		mapped: mapped,
		items:  items,
		bloom:  buildBloomIndex(items),
	}, nil
}

func (rs *readState) release() error {
	if rs.mapped {
		return munmapFile(rs.buf)
	}
	return nil
}
