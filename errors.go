package linkprep

import (
	"errors"
	"fmt"

	"github.com/hupe1980/linkprep/build"
	"github.com/hupe1980/linkprep/internal/resource"
)

var (
	// ErrEmptySentence is returned when a sentence has no words.
	ErrEmptySentence = errors.New("empty sentence")

	// ErrInvalidOption is returned for out-of-range configuration values.
	ErrInvalidOption = errors.New("invalid option")

	// ErrMemoryLimitExceeded is returned when the pools of live prepared
	// sentences would exceed the configured memory limit.
	ErrMemoryLimitExceeded = resource.ErrMemoryLimitExceeded

	// ErrExpressionTooDeep is returned when an expression is nested deeper
	// than the configured maximum depth.
	ErrExpressionTooDeep = build.ErrExpressionTooDeep
)

// ErrWordExpression reports a failure to expand one expression of a word.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrWordExpression struct {
	Word   int
	String string
	cause  error
}

func (e *ErrWordExpression) Error() string {
	return fmt.Sprintf("word %d (%q): %v", e.Word, e.String, e.cause)
}

func (e *ErrWordExpression) Unwrap() error { return e.cause }
