package lvgl

import "github.com/go-lvgl/lvgl/pkg/native"

// Led is a round indicator light. It starts switched off.
type Led struct {
	common[*Led]
}

func NewLed(parent Widget, uid string, x, y int16) *Led {
	d, o := newObj(parent, native.KindLed, x, y)
	d.lib.LedOff(o)

	w := &Led{}
	return w.init(w, d, KindLed, uid, o)
}

// SetOn switches the light.
func (w *Led) SetOn(on bool) *Led {
	if on {
		w.lib().LedOn(w.obj)
	} else {
		w.lib().LedOff(w.obj)
	}
	return w
}

// SetColor sets the light color rather than the text color.
func (w *Led) SetColor(color Color) *Led {
	w.lib().LedSetColor(w.obj, color)
	return w
}

func (w *Led) SetBrightness(bright uint8) *Led {
	w.lib().LedSetBrightness(w.obj, bright)
	return w
}

func (w *Led) Brightness() uint8 {
	return w.lib().LedBrightness(w.obj)
}
