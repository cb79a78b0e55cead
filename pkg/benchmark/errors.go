package benchmark

import "fmt"

// Error is an error that carries the return code a lifecycle failure maps
// to, so callers can branch on the code without string matching.
type Error struct {
	code ReturnCode
	msg  string
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Code() ReturnCode {
	return e.code
}

func newError(code ReturnCode, format string, args ...any) *Error {
	return &Error{
		code: code,
		msg:  fmt.Sprintf(format, args...),
	}
}

// CodeOf returns the return code carried by err, or
// ReturnCodeExecutionFailure if err is not a benchmark error. A nil err maps
// to ReturnCodeSuccess.
func CodeOf(err error) ReturnCode {
	if err == nil {
		return ReturnCodeSuccess
	}
	if be, ok := err.(*Error); ok {
		return be.code
	}
	return ReturnCodeExecutionFailure
}
