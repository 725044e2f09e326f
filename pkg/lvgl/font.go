package lvgl

import (
	"fmt"

	"github.com/go-lvgl/lvgl/pkg/native"
)

// Font selects one of the Montserrat fonts compiled into LVGL.
type Font native.Font

const (
	FontStd10 = Font(native.FontMontserrat10)
	FontStd12 = Font(native.FontMontserrat12)
	FontStd14 = Font(native.FontMontserrat14)
	FontStd18 = Font(native.FontMontserrat18)
	FontStd22 = Font(native.FontMontserrat22)
	FontStd26 = Font(native.FontMontserrat26)
	FontStd30 = Font(native.FontMontserrat30)
	FontStd34 = Font(native.FontMontserrat34)
	FontStd40 = Font(native.FontMontserrat40)
	FontStd48 = Font(native.FontMontserrat48)
)

// Size returns the point size of f, or 0 when f is not a built-in font.
func (f Font) Size() int { return native.Font(f).PointSize() }

func (f Font) String() string { return fmt.Sprintf("montserrat_%d", f.Size()) }

// FontOfSize returns the built-in font of the given point size.
func FontOfSize(size int) (Font, error) {
	for f := FontStd10; f <= FontStd48; f++ {
		if f.Size() == size {
			return f, nil
		}
	}
	return 0, fmt.Errorf("lvgl: no built-in font of size %d", size)
}
