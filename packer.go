package kas

// align8 rounds x up to the next multiple of 8.
func align8(x uint64) uint64 {
	return (x + 7) &^ 7
}

// packOffsets computes the canonical key_start/array_start for numItems
// items given in sorted order, knowing only their key and array byte
// lengths. Both the writer (packing real items) and the reader (checking
// a file's layout is canonical) drive this same function, so the two can
// never compute different offsets for the same lengths.
func packOffsets(keyLens, arrayByteLens []uint64) (keyStarts, arrayStarts []uint64, fileSize uint64) {
	n := len(keyLens)
	keyStarts = make([]uint64, n)
	arrayStarts = make([]uint64, n)

	offset := descriptorTableOffset + uint64(n)*descriptorSize

	for i, kl := range keyLens {
		keyStarts[i] = offset
		offset += kl
	}

	for i, al := range arrayByteLens {
		arrayStarts[i] = align8(offset)
		offset = arrayStarts[i] + al
	}

	return keyStarts, arrayStarts, offset
}

// pack assigns keyStart and arrayStart to every item in items (which must
// already be in canonical sorted order) and returns the resulting file
// size.
func pack(items []*item) uint64 {
	keyLens := make([]uint64, len(items))
	arrayByteLens := make([]uint64, len(items))
	for i, it := range items {
		keyLens[i] = uint64(len(it.key))
		arrayByteLens[i] = it.arrayByteLen()
	}

	keyStarts, arrayStarts, fileSize := packOffsets(keyLens, arrayByteLens)

	for i, it := range items {
		it.keyStart = keyStarts[i]
		it.arrayStart = arrayStarts[i]
	}

	return fileSize
}
