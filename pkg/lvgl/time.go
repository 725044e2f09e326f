package lvgl

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/ncruces/go-strftime"
)

// ErrTimeFormat is returned when a time cannot be formatted.
var ErrTimeFormat = errors.New("lvgl: cannot format time")

// maxTimeText is the longest formatted time, in bytes, a label accepts
// from FormatTime.
const maxTimeText = 63

// FormatTime formats the current local time with a strftime format such as
// "%D %H:%M".
func FormatTime(format string) (string, error) {
	return FormatTimeAt(format, time.Now())
}

// FormatTimeAt formats t with a strftime format.
func FormatTimeAt(format string, t time.Time) (string, error) {
	if err := ValidateText(format); err != nil {
		return "", fmt.Errorf("%w: format %q: %w", ErrTimeFormat, format, err)
	}
	out := strftime.Format(format, t)
	if !utf8.ValidString(out) {
		return "", fmt.Errorf("%w: result is not valid UTF-8", ErrTimeFormat)
	}
	if len(out) > maxTimeText {
		return "", fmt.Errorf("%w: result is %d bytes, limit %d", ErrTimeFormat, len(out), maxTimeText)
	}
	return out, nil
}
