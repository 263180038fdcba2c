package kas

import (
	"os"

	"github.com/kasformat/kas/pending"
)

// Mode selects whether a Store is opened for reading or writing.
type Mode int

const (
	ModeRead Mode = iota
	ModeWrite
)

// Flags is a bitset of Open options. All bits besides NoMmap are reserved
// and must be zero.
type Flags uint32

// NoMmap forces buffered reads even where memory mapping is available.
// Open's actual test is flags&NoMmap != 0 — i.e. mmap unless explicitly
// disabled — resolving spec.md §9's Open Question in favor of that
// intent rather than the `(!flags) & MMAP_OFF` bug it describes.
const NoMmap Flags = 1 << 0

type storeState int

const (
	stateOpen storeState = iota
	stateClosed
)

// Store is a single KAS file handle: either write mode, accumulating
// items in memory until Close, or read mode, with the whole file ingested
// and ready for Get. A Store is not safe for concurrent use and is not
// reentrant.
type Store struct {
	mode  Mode
	file  *os.File
	state storeState

	// write mode
	pend *pending.Set[string, *item]

	// read mode
	rs *readState
}

// Open opens filename in mode, applying flags (currently only NoMmap is
// defined). In ModeWrite, nothing reaches disk until Close. In ModeRead,
// the whole file is validated and ingested before Open returns.
func Open(filename string, mode Mode, flags Flags) (*Store, error) {
	switch mode {
	case ModeWrite:
		f, err := os.Create(filename)
		if err != nil {
			return nil, newErr(IOError, "open", err)
		}
		return &Store{
			mode: ModeWrite,
			file: f,
			pend: pending.New[string, *item](),
		}, nil

	case ModeRead:
		f, err := os.Open(filename)
		if err != nil {
			return nil, newErr(IOError, "open", err)
		}

		rs, err := openRead(f, flags)
		if err != nil {
			_ = f.Close()
			return nil, err
		}

		return &Store{
			mode: ModeRead,
			file: f,
			rs:   rs,
		}, nil

	default:
		return nil, newErr(BadMode, "open", nil)
	}
}

// Put inserts key with array into a write-mode store. The key is copied;
// array is retained by reference and must stay alive until Close. flags
// is reserved and must be zero. Put is illegal on a read-mode or closed
// store.
func (s *Store) Put(key []byte, array Array, flags Flags) error {
	if s.mode != ModeWrite {
		return newErr(BadMode, "put", nil)
	}
	if s.state == stateClosed {
		return newErr(IOError, "put", os.ErrClosed)
	}
	if len(key) == 0 {
		return newErr(EmptyKey, "put", nil)
	}
	if !array.Type().Valid() {
		return newErr(BadType, "put", nil)
	}

	keyCopy := make([]byte, len(key))
	copy(keyCopy, key)

	it := &item{key: keyCopy, typ: array.Type(), array: array}

	if ok := s.pend.Put(string(keyCopy), it); !ok {
		// Duplicate: the skip list never threaded it in, so there is
		// nothing to undo — the store is already exactly as it was.
		return newErr(DuplicateKey, "put", nil)
	}

	return nil
}

// Get looks up key in a read-mode store and returns its array view. The
// returned Array borrows from the store's buffer and is valid only until
// Close.
func (s *Store) Get(key []byte) (Array, error) {
	if s.mode != ModeRead {
		return Array{}, newErr(BadMode, "get", nil)
	}
	if s.state == stateClosed {
		return Array{}, newErr(IOError, "get", os.ErrClosed)
	}

	if !mightContain(s.rs.bloom, key) {
		return Array{}, newErr(KeyNotFound, "get", nil)
	}

	idx := lookup(s.rs.items, key)
	if idx < 0 {
		return Array{}, newErr(KeyNotFound, "get", nil)
	}

	return s.rs.items[idx].array, nil
}

// Close flushes (write mode) or releases (read mode) the store. Close is
// always terminal: it releases every resource the store holds regardless
// of which step fails, and reports the first error encountered.
func (s *Store) Close() error {
	if s.state == stateClosed {
		return nil
	}
	s.state = stateClosed

	var firstErr error
	record := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	ioErr := func(err error) error {
		if err == nil {
			return nil
		}
		return newErr(IOError, "close", err)
	}

	switch s.mode {
	case ModeWrite:
		items := make([]*item, 0, s.pend.Len())
		for r := range s.pend.All() {
			items = append(items, r.Value)
		}
		record(writeFile(s.file, items))
		record(ioErr(s.file.Close()))
		s.pend = nil

	case ModeRead:
		if s.rs != nil {
			record(ioErr(s.rs.release()))
			s.rs = nil
		}
		record(ioErr(s.file.Close()))
	}

	return firstErr
}
