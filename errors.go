package kas

import "fmt"

// Kind identifies the category of a *Error, stable across format versions.
type Kind int

const (
	// Generic marks an error path that should be unreachable.
	Generic Kind = iota
	// IOError wraps an underlying read/write/seek/stat/mmap failure.
	IOError
	// BadMode means the mode passed to Open wasn't Read or Write, or that
	// Put was called on a read-mode store or Get on a write-mode store.
	BadMode
	// NoMemory means an allocation failed.
	NoMemory
	// BadFileFormat means the file violates the on-disk structure: bad
	// magic, short file, misaligned or overlapping items, non-canonical
	// packing, or a descriptor whose bounds fall outside the file.
	BadFileFormat
	// VersionTooOld means the file's major version precedes this library's.
	VersionTooOld
	// VersionTooNew means the file's major version is ahead of this library's.
	VersionTooNew
	// BadType means a type code was >= 8, in a Put call or in a descriptor.
	BadType
	// DuplicateKey means Put was called with a key already present.
	DuplicateKey
	// KeyNotFound means Get found no item for the given key.
	KeyNotFound
	// EmptyKey means Put was called with a zero-length key.
	EmptyKey
)

func (k Kind) String() string {
	switch k {
	case IOError:
		return "io error"
	case BadMode:
		return "bad mode"
	case NoMemory:
		return "no memory"
	case BadFileFormat:
		return "bad file format"
	case VersionTooOld:
		return "version too old"
	case VersionTooNew:
		return "version too new"
	case BadType:
		return "bad type"
	case DuplicateKey:
		return "duplicate key"
	case KeyNotFound:
		return "key not found"
	case EmptyKey:
		return "empty key"
	default:
		return "generic error"
	}
}

// Error implements the error interface so that a Kind can be used directly
// as an errors.Is target, independent of any wrapping *Error around it.
func (k Kind) Error() string {
	return k.String()
}

// Error is the error type returned by every KAS operation. Op names the
// operation that failed ("open", "put", "get", "close", ...); Err, when
// non-nil, is the underlying cause (an *os.PathError, an io error, or
// nil when Kind alone is sufficient).
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("kas: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("kas: %s: %s", e.Op, e.Kind)
}

// Unwrap returns the wrapped cause, or the Kind itself when there is no
// cause. Matching on the Kind when a cause is present goes through Is.
func (e *Error) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is reports whether target is the same Kind as e, so callers can write
// errors.Is(err, kas.KeyNotFound) without reaching into e.Kind by hand.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

func newErr(kind Kind, op string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Err: cause}
}
