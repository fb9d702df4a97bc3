// Package errors records the failed operation and the kind of failure
// alongside the underlying error.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies why an operation failed.
type Kind uint8

const (
	Other Kind = iota
	CatalogUnavailable
	InvalidVersion
	DownloadFailed
	ExtractionFailed
	InvalidDistro
	MissingRepofile
)

func (k Kind) String() string {
	switch k {
	case CatalogUnavailable:
		return "catalog unavailable"
	case InvalidVersion:
		return "invalid version"
	case DownloadFailed:
		return "download failed"
	case ExtractionFailed:
		return "extraction failed"
	case InvalidDistro:
		return "invalid distro"
	case MissingRepofile:
		return "missing repofile"
	default:
		return "other"
	}
}

type Error struct {
	Op   string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Kind != Other {
		return fmt.Sprintf("operation %q failed: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("operation %q failed: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func E(op string, err error) error {
	return &Error{Op: op, Err: err}
}

// K is like E but tags the error with a failure kind.
func K(op string, kind Kind, err error) error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// KindOf returns the innermost non-Other kind found in err's chain.
func KindOf(err error) Kind {
	kind := Other
	for err != nil {
		var e *Error
		if !stderrors.As(err, &e) {
			break
		}
		if e.Kind != Other {
			kind = e.Kind
		}
		err = e.Err
	}
	return kind
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
