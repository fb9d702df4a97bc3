package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		kind     Kind
		err      error
		expected string
	}{
		{
			name:     "simple error",
			op:       "readFile",
			err:      errors.New("file not found"),
			expected: `operation "readFile" failed: file not found`,
		},
		{
			name:     "kinded error",
			op:       "resolve",
			kind:     InvalidVersion,
			err:      errors.New(`no release matches "45"`),
			expected: `operation "resolve" failed: invalid version: no release matches "45"`,
		},
		{
			name:     "empty operation",
			op:       "",
			err:      errors.New("unknown error"),
			expected: `operation "" failed: unknown error`,
		},
		{
			name:     "nested error",
			op:       "outer",
			err:      E("inner", errors.New("base error")),
			expected: `operation "outer" failed: operation "inner" failed: base error`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Error{
				Op:   tt.op,
				Kind: tt.kind,
				Err:  tt.err,
			}

			result := e.Error()
			if result != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestE(t *testing.T) {
	result := E("testOp", errors.New("test error"))

	e, ok := result.(*Error)
	if !ok {
		t.Fatalf("E() returned type %T, want *Error", result)
	}
	if e.Kind != Other {
		t.Errorf("E().Kind = %v, want %v", e.Kind, Other)
	}
	if !strings.Contains(result.Error(), "testOp") {
		t.Errorf("E().Error() = %q, want to contain %q", result.Error(), "testOp")
	}
}

func TestError_Unwrap(t *testing.T) {
	base := errors.New("base error")
	err := E("outer", K("inner", DownloadFailed, base))

	if !errors.Is(err, base) {
		t.Error("errors.Is should find the base error through the chain")
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, Other},
		{"plain error", errors.New("x"), Other},
		{"untagged", E("op", errors.New("x")), Other},
		{"tagged", K("op", MissingRepofile, errors.New("x")), MissingRepofile},
		{"wrapped by E", E("cmd", K("op", InvalidDistro, errors.New("x"))), InvalidDistro},
		{"wrapped by fmt", fmt.Errorf("ctx: %w", K("op", CatalogUnavailable, errors.New("x"))), CatalogUnavailable},
		{"innermost wins", K("outer", DownloadFailed, K("inner", ExtractionFailed, errors.New("x"))), ExtractionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
			if !Is(tt.err, tt.want) {
				t.Errorf("Is(err, %v) = false, want true", tt.want)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	kinds := map[Kind]string{
		Other:              "other",
		CatalogUnavailable: "catalog unavailable",
		InvalidVersion:     "invalid version",
		DownloadFailed:     "download failed",
		ExtractionFailed:   "extraction failed",
		InvalidDistro:      "invalid distro",
		MissingRepofile:    "missing repofile",
	}
	for k, want := range kinds {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
