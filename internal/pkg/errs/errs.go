package errs

import (
	"errors"
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark tags err so that errors.Is(err, markErr) holds while keeping its own message.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return &marked{cause: err, mark: markErr}
}

// NewKind creates a sentinel that also matches the given kind.
func NewKind(msg string, kind error) error {
	return &marked{cause: errors.New(msg), mark: kind, public: true}
}

// marked answers Is for its mark through the standard Is hook, which both
// the standard library and cockroachdb/errors consult.
type marked struct {
	cause  error
	mark   error
	public bool
}

func (m *marked) Error() string { return m.cause.Error() }
func (m *marked) Unwrap() error { return m.cause }

func (m *marked) Is(target error) bool {
	return target == m.mark || errors.Is(m.mark, target)
}

// PublicMessage returns the text of the outermost NewKind sentinel found in err's
// chain, including sentinels attached with Mark.
func PublicMessage(err error) (string, bool) {
	for e := err; e != nil; e = errors.Unwrap(e) {
		m, ok := e.(*marked)
		if !ok {
			continue
		}
		if m.public {
			return m.Error(), true
		}
		if s, ok := m.mark.(*marked); ok && s.public {
			return s.Error(), true
		}
	}
	return "", false
}

func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
