package scheme

import "errors"

// Evaluation failures. Errors returned by this package wrap one of these,
// so callers can test with errors.Is.
var (
	ErrUnboundVariable = errors.New("unbound variable")
	ErrArityMismatch   = errors.New("arity mismatch")
	ErrNotApplicable   = errors.New("not applicable")
	ErrMalformed       = errors.New("malformed special form")
	ErrWrongType       = errors.New("wrong type argument")
)

var ErrEOF = errors.New("end of file")
