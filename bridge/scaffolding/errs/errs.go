// Package errs provides types and support related to web error
// functionality. Bridges return *Error values; the error middleware
// logs them and writes them to the client with the mapped HTTP status.
package errs

import (
	"encoding/json"
	"fmt"
	"runtime"
)

// Error represents an error in the system.
type Error struct {
	Code     Code   `json:"code"`
	Message  string `json:"message"`
	FuncName string `json:"-"`
	FileName string `json:"-"`
}

// New constructs an error based on an existing error.
func New(code Code, err error) *Error {
	pc, filename, line, _ := runtime.Caller(1)

	return &Error{
		Code:     code,
		Message:  err.Error(),
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", filename, line),
	}
}

// Newf constructs an error from a format string.
func Newf(code Code, format string, v ...any) *Error {
	pc, filename, line, _ := runtime.Caller(1)

	return &Error{
		Code:     code,
		Message:  fmt.Sprintf(format, v...),
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", filename, line),
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Encode implements the web.Encoder interface.
func (e *Error) Encode() ([]byte, string, error) {
	data, err := json.Marshal(e)
	return data, "application/json", err
}

// HTTPStatus returns the status the web package should respond with.
func (e *Error) HTTPStatus() int {
	return httpStatus(e.Code)
}
