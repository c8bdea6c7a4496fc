package settings

import (
	"errors"
	"strings"
)

var (
	// ErrUnknownKind is returned when a request names a kind the verifier
	// does not implement.
	ErrUnknownKind = errors.New("unknown verification kind")
	// ErrMalformedRange is returned when an integer range has neither bound
	// set, or a bound that is not a whole number.
	ErrMalformedRange = errors.New("malformed integer range")
	// ErrNoChoices is returned when an enumerated request has nothing to choose from.
	ErrNoChoices = errors.New("enumerated setting has no choices")
	// ErrInputClosed is returned when the input ends before a valid value was given.
	ErrInputClosed = errors.New("input closed before a valid value was given")
)

// Rejection is returned by a rule when the user's input is not acceptable.
// Reason is shown to the user before the prompt is repeated.
type Rejection struct {
	Reason string
}

func (r *Rejection) Error() string {
	return "rejected: " + strings.ReplaceAll(r.Reason, "\n", " ")
}

func reject(reason string) error {
	return &Rejection{Reason: reason}
}
