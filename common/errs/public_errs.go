package errs

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/errors/withstack"
)

// PublicError carries a message that is safe to show to API callers.
// The error handler renders it instead of a generic internal error.
type PublicError struct {
	err     error
	message string
	code    string // optional machine readable code
}

func (p PublicError) Error() string {
	return p.err.Error()
}

func (p PublicError) Message() string {
	return p.message
}

func (p PublicError) Code() string {
	return p.code
}

func (p PublicError) Unwrap() error {
	return p.err
}

func NewPublicError(message string) error {
	return withstack.WithStackDepth(&PublicError{err: errors.New(message), message: message}, 1)
}

// WithPublicMessage marks err as public. The message is "prefix: err" or just err when prefix is empty.
func WithPublicMessage(err error, prefix string) error {
	return withPublicMessage(err, prefix, "")
}

// WithPublicMessageCode is WithPublicMessage with a machine readable code.
func WithPublicMessageCode(err error, prefix string, code string) error {
	return withPublicMessage(err, prefix, code)
}

func withPublicMessage(err error, prefix string, code string) error {
	if err == nil {
		return nil
	}
	message := err.Error()
	if prefix != "" {
		message = fmt.Sprintf("%s: %s", prefix, message)
	}
	return withstack.WithStackDepth(&PublicError{err: err, message: message, code: code}, 2)
}
