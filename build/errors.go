package build

import "errors"

// ErrExpressionTooDeep is returned when an expression is nested deeper than
// the configured limit.
var ErrExpressionTooDeep = errors.New("expression too deep")
