package gazetteer

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a gazetteer failure.
type ErrorKind int

const (
	ErrorFetch ErrorKind = iota + 1
	ErrorDeserialize
	ErrorNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorFetch:
		return "Fetch"
	case ErrorDeserialize:
		return "Deserialize"
	case ErrorNotFound:
		return "NotFound"
	default:
		return "Unknown"
	}
}

// Error is returned by every gazetteer implementation. Op names the lookup, e.g. "list cities 東京都".
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("gazetteer: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("gazetteer: %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var gerr *Error
	if errors.As(err, &gerr) {
		return gerr.Kind, true
	}
	return 0, false
}

// IsNotFound reports whether err says the requested unit does not exist.
func IsNotFound(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == ErrorNotFound
}

func citiesOp(prefecture string) string {
	return "list cities " + prefecture
}

func townsOp(prefecture, city string) string {
	return "list towns " + prefecture + city
}
