package errs

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// New returns an error annotated with the caller's stack.
func New(msg string) error {
	return errors.New(msg)
}

// Wrap adds msg as context while keeping the cause visible to errors.Is.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, msg)
}

// Mark makes err match sentinel through errors.Is without replacing the cause.
func Mark(err, sentinel error) error {
	if err == nil {
		return sentinel
	}
	return errors.Mark(err, sentinel)
}

// StackLines renders the first max lines of the error's verbose form, for
// structured log fields.
func StackLines(err error, max int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if max > 0 && len(lines) > max {
		lines = lines[:max]
	}
	return lines
}
