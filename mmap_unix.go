//go:build unix

package kas

import (
	"os"

	"golang.org/x/sys/unix"
)

const mmapSupported = true

// mmapFile maps f read-only, private, for size bytes starting at offset 0,
// the way the corpus's append-only mmap backends map their log files —
// here the mapping is whole-file and read-only since KAS is write-once.
func mmapFile(f *os.File, size int64) ([]byte, error) {
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func munmapFile(data []byte) error {
	return unix.Munmap(data)
}
