package kas

import "testing"

func TestHeaderEncodeDecodeRoundTrip(t *testing.T) {
	h := header{versionMajor: 1, versionMinor: 0, numItems: 3, fileSize: 256}

	buf := h.encode()
	if len(buf) != headerSize {
		t.Fatalf("expected %d bytes, got %d", headerSize, len(buf))
	}

	got, err := decodeHeader(buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != h {
		t.Fatalf("round-trip mismatch: got %+v, want %+v", got, h)
	}
}

func TestHeaderReservedBytesZero(t *testing.T) {
	h := header{versionMajor: 1, numItems: 1, fileSize: 64}
	buf := h.encode()

	for i := hdrOffReserved; i < headerSize; i++ {
		if buf[i] != 0 {
			t.Fatalf("reserved byte %d not zero", i)
		}
	}
}

func TestHeaderTooShortRejected(t *testing.T) {
	_, err := decodeHeader(make([]byte, 10))
	if err == nil {
		t.Fatal("expected error for short buffer")
	}
	if kerr, ok := err.(*Error); !ok || kerr.Kind != BadFileFormat {
		t.Fatalf("expected BadFileFormat, got %v", err)
	}
}

func TestHeaderBadMagicRejected(t *testing.T) {
	h := header{versionMajor: 1, fileSize: 64}
	buf := h.encode()
	buf[0] = 0x00

	_, err := decodeHeader(buf)
	if kerr, ok := err.(*Error); !ok || kerr.Kind != BadFileFormat {
		t.Fatalf("expected BadFileFormat, got %v", err)
	}
}

func TestHeaderFileSizeTooSmallRejected(t *testing.T) {
	h := header{versionMajor: 1, fileSize: 10}
	buf := h.encode()

	_, err := decodeHeader(buf)
	if kerr, ok := err.(*Error); !ok || kerr.Kind != BadFileFormat {
		t.Fatalf("expected BadFileFormat, got %v", err)
	}
}
