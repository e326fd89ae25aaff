package dynamic

import "fmt"

// Error codes.  Every failure is a programming error surfaced immediately;
// nothing is retried.
const (
	CodeTypeMismatch      = "ERR_TYPE_MISMATCH"
	CodeInvalidOperation  = "ERR_INVALID_OPERATION"
	CodeIndexOutOfRange   = "ERR_INDEX_OUT_OF_RANGE"
	CodeKeyNotFound       = "ERR_KEY_NOT_FOUND"
	CodeInvalidComparison = "ERR_INVALID_COMPARISON"
	CodeLimitDepth        = "ERR_LIMIT_DEPTH"
)

// Error is the error type returned by every operation in this package.
// Tests and callers compare the Code field against the Code* constants,
// or use errors.Is with the Err* sentinels.
type Error struct {
	Code string
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Msg)
	}
	return e.Code
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Sentinels for errors.Is.
var (
	ErrTypeMismatch      = &Error{Code: CodeTypeMismatch}
	ErrInvalidOperation  = &Error{Code: CodeInvalidOperation}
	ErrIndexOutOfRange   = &Error{Code: CodeIndexOutOfRange}
	ErrKeyNotFound       = &Error{Code: CodeKeyNotFound}
	ErrInvalidComparison = &Error{Code: CodeInvalidComparison}
	ErrLimitDepth        = &Error{Code: CodeLimitDepth}
)

func newErr(code, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

func newErrf(code, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}
