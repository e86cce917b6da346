package tokenizer

import (
	"github.com/cockroachdb/errors"
)

// Data sources named in an InitializationError.
const (
	SourcePrefixes  = "non-breaking prefixes"
	SourceEmoticons = "emoticons"
)

// ErrInitialization is matched by every error returned from New.
var ErrInitialization = errors.New("tokenizer initialization failed")

// InitializationError reports that a data source could not be read or parsed.
type InitializationError struct {
	Source string // SourcePrefixes or SourceEmoticons
	Err    error
}

func newInitializationError(source string, err error) *InitializationError {
	return &InitializationError{Source: source, Err: err}
}

func (e *InitializationError) Error() string {
	return "tokenizer: loading " + e.Source + ": " + e.Err.Error()
}

func (e *InitializationError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrInitialization) hold for any InitializationError.
func (e *InitializationError) Is(target error) bool {
	return target == ErrInitialization
}
