package types

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains string
	}{
		{
			name: "with message",
			err: &Error{
				Op:      "index.Build",
				Kind:    ErrCorpusMalformed,
				Message: "row 3 has 3 fields, want 4",
			},
			contains: "index.Build",
		},
		{
			name: "with underlying error",
			err: &Error{
				Op:   "corpus.Load",
				Kind: ErrCorpusIO,
				Err:  errors.New("permission denied"),
			},
			contains: "permission denied",
		},
		{
			name: "kind only",
			err: &Error{
				Op:   "query.Evaluate",
				Kind: ErrOOVTerm,
			},
			contains: "term not in vocabulary",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			if msg == "" {
				t.Fatal("Error() returned empty string")
			}
			if !strings.Contains(msg, tt.contains) {
				t.Errorf("Error() = %q, want it to contain %q", msg, tt.contains)
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Op:   "query.Evaluate",
		Kind: ErrOOVTerm,
	}

	if !errors.Is(err, ErrOOVTerm) {
		t.Error("Error should match ErrOOVTerm")
	}

	if errors.Is(err, ErrUnsupportedPattern) {
		t.Error("Error should not match ErrUnsupportedPattern")
	}
}

func TestError_Unwrap(t *testing.T) {
	inner := errors.New("inner error")
	err := &Error{
		Op:   "index.Build",
		Kind: ErrCorpusIO,
		Err:  inner,
	}

	if errors.Unwrap(err) != inner {
		t.Error("Unwrap should return inner error")
	}
}

func TestErrorf(t *testing.T) {
	err := Errorf("query.resolveWildcard", ErrUnsupportedPattern, "pattern %q has two internal wildcards", "*mon*al*")

	if err == nil {
		t.Fatal("Errorf returned nil")
	}

	var e *Error
	if !errors.As(err, &e) {
		t.Fatal("Errorf should return *Error")
	}

	if e.Op != "query.resolveWildcard" {
		t.Errorf("Op = %s, want query.resolveWildcard", e.Op)
	}
	if !errors.Is(err, ErrUnsupportedPattern) {
		t.Error("Errorf result should match ErrUnsupportedPattern via errors.Is")
	}
}

func TestWrapError(t *testing.T) {
	inner := errors.New("connection refused")
	err := WrapError("index.persist.Open", ErrStorageIO, inner)

	var e *Error
	if !errors.As(err, &e) {
		t.Fatal("WrapError should return *Error")
	}

	if e.Err != inner {
		t.Error("wrapped error should contain inner error")
	}
}
