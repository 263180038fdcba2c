package kas

import "testing"

func TestDescriptorEncodeDecodeRoundTrip(t *testing.T) {
	d := descriptor{typ: Float64, keyStart: 128, keyLen: 5, arrayStart: 136, arrayLen: 10}

	buf := d.encode()
	if len(buf) != descriptorSize {
		t.Fatalf("expected %d bytes, got %d", descriptorSize, len(buf))
	}

	got, err := decodeDescriptor(buf, 1000)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != d {
		t.Fatalf("round-trip mismatch: got %+v, want %+v", got, d)
	}
}

func TestDescriptorBadTypeRejected(t *testing.T) {
	d := descriptor{typ: ElementType(9), keyStart: 0, keyLen: 0, arrayStart: 0, arrayLen: 0}
	buf := d.encode()

	_, err := decodeDescriptor(buf, 1000)
	if kerr, ok := err.(*Error); !ok || kerr.Kind != BadType {
		t.Fatalf("expected BadType, got %v", err)
	}
}

func TestDescriptorKeyPastEOFRejected(t *testing.T) {
	d := descriptor{typ: Uint8, keyStart: 900, keyLen: 200, arrayStart: 0, arrayLen: 0}
	buf := d.encode()

	_, err := decodeDescriptor(buf, 1000)
	if kerr, ok := err.(*Error); !ok || kerr.Kind != BadFileFormat {
		t.Fatalf("expected BadFileFormat, got %v", err)
	}
}

func TestDescriptorArrayPastEOFRejected(t *testing.T) {
	d := descriptor{typ: Float64, keyStart: 0, keyLen: 0, arrayStart: 960, arrayLen: 10}
	buf := d.encode()

	_, err := decodeDescriptor(buf, 1000)
	if kerr, ok := err.(*Error); !ok || kerr.Kind != BadFileFormat {
		t.Fatalf("expected BadFileFormat, got %v", err)
	}
}

func TestDescriptorKeyLenOverflowRejected(t *testing.T) {
	// keyStart+keyLen wraps past the uint64 range; a naive unchecked sum
	// would pass as "within fileSize". Must still be rejected.
	d := descriptor{typ: Uint8, keyStart: 128, keyLen: ^uint64(0) - 64, arrayStart: 0, arrayLen: 0}
	buf := d.encode()

	_, err := decodeDescriptor(buf, 1000)
	if kerr, ok := err.(*Error); !ok || kerr.Kind != BadFileFormat {
		t.Fatalf("expected BadFileFormat, got %v", err)
	}
}

func TestDescriptorArrayLenMultiplyOverflowRejected(t *testing.T) {
	// arrayLen*width overflows uint64 for a large arrayLen even though
	// each individual field fits comfortably in 64 bits.
	d := descriptor{typ: Float64, keyStart: 0, keyLen: 0, arrayStart: 136, arrayLen: ^uint64(0)/4 + 1}
	buf := d.encode()

	_, err := decodeDescriptor(buf, 1000)
	if kerr, ok := err.(*Error); !ok || kerr.Kind != BadFileFormat {
		t.Fatalf("expected BadFileFormat, got %v", err)
	}
}
