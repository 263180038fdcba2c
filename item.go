package kas

// item is one (key, type, array) record. Offsets are meaningless until the
// packer assigns them (write mode, at Close) or the reader parses them
// (read mode, at Open).
type item struct {
	key   []byte
	typ   ElementType
	array Array

	keyStart   uint64
	arrayStart uint64
}

func (it *item) arrayLen() uint64 { return uint64(it.array.Len()) }

func (it *item) arrayByteLen() uint64 {
	width, _ := it.typ.Width()
	return it.arrayLen() * uint64(width)
}

// compareKeys implements the store's total order: byte-wise comparison
// over the shorter of the two lengths, ties broken by shorter-key-first.
// This is exactly Go's native []byte/string ordering, so it is exposed
// here only for readability at call sites and for use outside the
// pending package where a []byte rather than a string is in hand.
func compareKeys(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
