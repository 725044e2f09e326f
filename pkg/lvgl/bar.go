package lvgl

import "github.com/go-lvgl/lvgl/pkg/native"

// Bar is a horizontal or vertical progress bar.
type Bar struct {
	common[*Bar]
}

func NewBar(parent Widget, uid string, min, max int32, x, y int16) *Bar {
	d, o := newObj(parent, native.KindBar, x, y)
	d.lib.BarSetRange(o, min, max)

	w := &Bar{}
	return w.init(w, d, KindBar, uid, o)
}

// SetGradient fills the indicator with a gradient from background to color.
func (w *Bar) SetGradient(vertical bool, color, background Color) *Bar {
	lib := w.lib()
	lib.StyleSetNum(w.style, native.PropBgOpa, int32(native.OpaCover))
	lib.StyleSetColor(w.style, native.PropBgColor, background)
	lib.StyleSetColor(w.style, native.PropBgGradColor, color)
	dir := native.GradHor
	if vertical {
		dir = native.GradVer
	}
	lib.StyleSetNum(w.style, native.PropBgGradDir, int32(dir))
	lib.AddStyle(w.obj, w.style, native.PartIndicator)
	return w
}

// SetValue moves the bar without animation.
func (w *Bar) SetValue(v int32) *Bar {
	w.lib().BarSetValue(w.obj, v, false)
	return w
}

// SetValueAnimated moves the bar with the native animation.
func (w *Bar) SetValueAnimated(v int32) *Bar {
	w.lib().BarSetValue(w.obj, v, true)
	return w
}

func (w *Bar) Value() int32 {
	return w.lib().BarValue(w.obj)
}
