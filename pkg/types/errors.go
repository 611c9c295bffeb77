package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for the tweet search service, one per distinct
// failure kind the corpus loader, index builder, and query evaluator
// can raise.
var (
	// ErrCorpusIO marks the corpus or stopwords file being unreadable.
	// Fatal at build time.
	ErrCorpusIO = errors.New("corpus I/O error")
	// ErrCorpusMalformed marks a corpus row that could not be parsed
	// into the four-field schema. The row is skipped, not fatal.
	ErrCorpusMalformed = errors.New("corpus row malformed")
	// ErrOOVTerm marks a literal (non-wildcard) query term absent from
	// the token-to-ID table.
	ErrOOVTerm = errors.New("term not in vocabulary")
	// ErrOOVKgram marks a k-gram of a wildcard pattern absent from the
	// k-gram index. Behavior is governed by IndexConfig.OOVKgramPolicy.
	ErrOOVKgram = errors.New("k-gram not in index")
	// ErrUnsupportedPattern marks a query pattern with more than one
	// internal wildcard, or an empty pattern after stripping wildcards.
	ErrUnsupportedPattern = errors.New("unsupported wildcard pattern")
	// ErrInternalInvariant marks a posting list or k-gram bucket found
	// non-sorted or duplicated after build. Indicates a builder bug.
	ErrInternalInvariant = errors.New("internal invariant violated")

	// ErrNotFound is returned when a lookup finds nothing.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArg marks a caller-supplied argument that cannot be used.
	ErrInvalidArg = errors.New("invalid argument")
	// ErrStorageIO marks a failure reading or writing the persisted index.
	ErrStorageIO = errors.New("storage I/O error")
	// ErrStorageCorrupt marks a persisted index blob that failed to decode
	// or carries an unrecognized version byte.
	ErrStorageCorrupt = errors.New("storage corrupted")
)

// Error wraps an error with operation context, in the style used
// throughout this codebase for explicit, local error propagation.
type Error struct {
	Op      string // Operation that failed
	Kind    error  // Category of error (one of the sentinels above)
	Err     error  // Underlying error, if any
	Message string // Human-readable message, if any
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Kind)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Errorf creates a new Error with a formatted message.
func Errorf(op string, kind error, format string, args ...any) error {
	return &Error{
		Op:      op,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError wraps an error with operation context.
func WrapError(op string, kind error, err error) error {
	return &Error{
		Op:   op,
		Kind: kind,
		Err:  err,
	}
}
