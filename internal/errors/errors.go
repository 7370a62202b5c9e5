// Package errors is what recipebook imports instead of "errors" or pkg/errors.
// Wrapping records where an error was annotated, and StackTrace gets that
// location back out for logging.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// stackTracer is implemented by errors created or wrapped through pkg/errors.
type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

func New(text string) error {
	return stderrors.New(text)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// Wrap prefixes err with message and records the caller's stack.
// A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack records the caller's stack without changing the message.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Errorf is fmt.Errorf with a recorded stack. It does not understand %w.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// StackTrace returns the stack recorded closest to where err was created,
// one "function\n\tfile:line" pair per line. It returns "" when nothing in
// the Unwrap chain carries a stack, e.g. for sentinel errors.
func StackTrace(err error) string {
	var deepest stackTracer
	for err != nil {
		if st, ok := err.(stackTracer); ok {
			deepest = st
		}
		err = stderrors.Unwrap(err)
	}
	if deepest == nil {
		return ""
	}

	return strings.TrimPrefix(fmt.Sprintf("%+v", deepest.StackTrace()), "\n")
}
