package errors

import (
	"fmt"
)

// Kind tags an error with the category callers should branch on,
// instead of inspecting the dynamic type of the underlying error.
type Kind int

const (
	KindUnexpected Kind = iota
	KindValidation
	KindNotFound
	KindUnauthorized
)

type Error interface {
	error

	Code() int
	Kind() Kind
	Message() string
	Cause() error
}

// DefaultCode defines the code that will be used by default when
// none is given. It is set to 500, Internal Server Error
var DefaultCode = 500

type myError struct {
	code  int
	kind  Kind
	msg   string
	cause *myError
}

func (err *myError) Error() string {
	if err.cause == nil {
		return err.msg
	}

	return fmt.Sprintf("%s: %v", err.msg, err.cause)
}

func (err *myError) Code() int {
	return err.code
}

func (err *myError) Kind() Kind {
	return err.kind
}

func (err *myError) Message() string {
	return err.msg
}

func (err *myError) Cause() error {
	return err.cause
}

type ErrorEnricher func(error) error

func WithCode(code int) ErrorEnricher {
	return func(err error) error {
		if err == nil {
			return nil
		}

		if err, ok := err.(*myError); ok {
			err.code = code
			return err
		}

		return &myError{
			msg:  err.Error(),
			code: code,
		}
	}
}

func WithKind(kind Kind) ErrorEnricher {
	return func(err error) error {
		if err == nil {
			return nil
		}

		if err, ok := err.(*myError); ok {
			err.kind = kind
			return err
		}

		return &myError{
			msg:  err.Error(),
			code: DefaultCode,
			kind: kind,
		}
	}
}

func WithCause(cause error) ErrorEnricher {
	var myCause *myError
	switch cause := cause.(type) {
	case *myError:
		myCause = cause
	default:
		myCause = &myError{msg: cause.Error(), code: DefaultCode}
	}

	return func(err error) error {
		if err == nil {
			return nil
		}

		if myErr, ok := err.(*myError); ok {
			myErr.cause = myCause
			return myErr
		}

		return &myError{
			msg:   err.Error(),
			code:  myCause.code,
			kind:  myCause.kind,
			cause: myCause,
		}
	}
}

func New(msg string, fs ...ErrorEnricher) error {
	var err error
	err = &myError{
		msg:  msg,
		code: DefaultCode,
	}

	for _, f := range fs {
		err = f(err)
	}

	return err
}

// KindOf extracts the kind of an error. Errors that do not carry a
// kind are reported as unexpected.
func KindOf(err error) Kind {
	if err, ok := err.(Error); ok {
		return err.Kind()
	}

	return KindUnexpected
}
