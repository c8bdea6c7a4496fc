package settings

import (
	"fmt"
	"strconv"
	"strings"
)

// Request describes one prompt.
type Request struct {
	// Key is the setting name in the store.
	Key string
	// Message is shown to the user.
	Message string
	Kind    Kind
	// Choices are the allowed values for KindEnumerated. For the path kinds
	// they are literal values accepted without touching the filesystem.
	Choices []string
	// Range bounds KindIntegerRange.
	Range Range
}

// Range is an integer interval whose bounds are each optional.
type Range struct {
	Min *int
	Max *int
}

// Between returns a closed range [min, max]. A range with min above max is
// rejected by Verify and ParseRange with ErrMalformedRange.
func Between(min, max int) Range {
	return Range{Min: &min, Max: &max}
}

// AtLeast returns a range with only a lower bound.
func AtLeast(min int) Range {
	return Range{Min: &min}
}

// AtMost returns a range with only an upper bound.
func AtMost(max int) Range {
	return Range{Max: &max}
}

// ParseRange parses the comma-separated form "min,max" where either side may
// be empty: "1,3" is 1 to 3, "1," is 1 or higher, ",3" is at most 3. Bounds
// must be unsigned whole numbers.
func ParseRange(s string) (Range, error) {
	lo, hi, found := strings.Cut(s, ",")
	if !found {
		return Range{}, fmt.Errorf("%w: %q has no comma", ErrMalformedRange, s)
	}

	var r Range
	for _, b := range []struct {
		text string
		dst  **int
	}{{lo, &r.Min}, {hi, &r.Max}} {
		if b.text == "" {
			continue
		}
		if !isDigits(b.text) {
			return Range{}, fmt.Errorf("%w: bound %q is not a whole number", ErrMalformedRange, b.text)
		}
		n, err := strconv.Atoi(b.text)
		if err != nil {
			return Range{}, fmt.Errorf("%w: %w", ErrMalformedRange, err)
		}
		*b.dst = &n
	}

	if err := r.validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

func (r Range) validate() error {
	if r.Min == nil && r.Max == nil {
		return fmt.Errorf("%w: both bounds are empty", ErrMalformedRange)
	}
	if r.Min != nil && r.Max != nil && *r.Min > *r.Max {
		return fmt.Errorf("%w: lower bound %d exceeds upper bound %d", ErrMalformedRange, *r.Min, *r.Max)
	}
	return nil
}

// Contains reports whether n satisfies every bound that is set.
func (r Range) Contains(n int) bool {
	if r.Min != nil && n < *r.Min {
		return false
	}
	if r.Max != nil && n > *r.Max {
		return false
	}
	return true
}

func (r Range) String() string {
	switch {
	case r.Min != nil && r.Max != nil:
		return fmt.Sprintf("between %d and %d", *r.Min, *r.Max)
	case r.Min != nil:
		return fmt.Sprintf("of at least %d", *r.Min)
	case r.Max != nil:
		return fmt.Sprintf("of at most %d", *r.Max)
	default:
		return "without bounds"
	}
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}
