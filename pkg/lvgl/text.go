package lvgl

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-lvgl/lvgl/pkg/logx"
)

// Placeholders written instead of text that cannot reach the native side.
const (
	placeholderLabel = "Non UTF8 label"
	placeholderText  = "Non UTF8 text"
	placeholderPath  = "Non UTF8 path"
)

// ErrInvalidText is returned by ValidateText for strings that are not valid
// UTF-8 or that hold a NUL byte.
var ErrInvalidText = errors.New("lvgl: text is not a valid C string")

// ValidateText reports whether s can be handed to the native library
// unchanged. Setters do not fail on invalid text; they write a placeholder.
func ValidateText(s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("%w: invalid UTF-8", ErrInvalidText)
	}
	if i := strings.IndexByte(s, 0); i >= 0 {
		return fmt.Errorf("%w: NUL byte at offset %d", ErrInvalidText, i)
	}
	return nil
}

// text returns s, or placeholder when s fails ValidateText.
func (d *Display) text(s, placeholder, uid string) string {
	err := ValidateText(s)
	if err == nil {
		return s
	}
	d.metrics.substitutions.Inc()
	logx.Warn("text replaced by placeholder", d, "uid", uid, "placeholder", placeholder, "err", err)
	return placeholder
}
