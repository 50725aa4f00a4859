// Package ordernumber converts between numeric order ids and the display
// order numbers customers see (and that double as gateway transaction ids).
package ordernumber

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidOrderNumber = errors.New("invalid order number")

type Formatter struct {
	Prefix string
	Width  int
}

func New(prefix string, width int) *Formatter {
	if width <= 0 {
		width = 1
	}
	return &Formatter{
		Prefix: prefix,
		Width:  width,
	}
}

// Format renders id as prefix + zero padded digits, e.g. 42 -> "FM000042".
func (f *Formatter) Format(id int64) string {
	return fmt.Sprintf("%s%0*d", f.Prefix, f.Width, id)
}

// Unformat accepts either a display number or a bare numeric id.
// The prefix match is case-insensitive and surrounding whitespace is ignored.
func (f *Formatter) Unformat(displayID string) (int64, error) {
	s := strings.TrimSpace(displayID)
	if f.Prefix != "" && len(s) >= len(f.Prefix) && strings.EqualFold(s[:len(f.Prefix)], f.Prefix) {
		s = s[len(f.Prefix):]
	}

	if s == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOrderNumber, displayID)
	}

	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOrderNumber, displayID)
	}
	return id, nil
}
