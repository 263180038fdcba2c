//go:build !unix

package kas

import "os"

const mmapSupported = false

// mmapFile is never called on this platform; mmapSupported is false so the
// reader always takes the buffered-read path, which spec.md §9 explicitly
// allows ("the mmap path is an optimization, not a contract").
func mmapFile(f *os.File, size int64) ([]byte, error) {
	panic("kas: mmapFile called with mmapSupported == false")
}

func munmapFile(data []byte) error {
	panic("kas: munmapFile called with mmapSupported == false")
}
