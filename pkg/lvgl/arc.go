package lvgl

import "github.com/go-lvgl/lvgl/pkg/native"

// Arc is a read-only arc gauge.
type Arc struct {
	common[*Arc]
}

// NewArc creates an arc whose background spans start to end degrees. The
// arc does not react to input.
func NewArc(parent Widget, uid string, start, end uint16, x, y int16) *Arc {
	d := parent.display()
	o := d.lib.Create(native.KindArc, parent.Handle())
	d.lib.ArcSetBgAngles(o, start, end)
	d.lib.Align(o, native.AlignTopLeft, x, y)
	d.lib.ClearFlag(o, native.FlagClickable)

	w := &Arc{}
	return w.init(w, d, KindArc, uid, o)
}

func (w *Arc) SetRotation(angle uint16) *Arc {
	w.lib().ArcSetRotation(w.obj, angle)
	return w
}

func (w *Arc) SetRange(min, max int16) *Arc {
	w.lib().ArcSetRange(w.obj, min, max)
	return w
}

// SetValue moves the indicator. LVGL arcs hold 16-bit values; v is
// saturated to that range.
func (w *Arc) SetValue(v int32) *Arc {
	w.lib().ArcSetValue(w.obj, int16(max(-32768, min(v, 32767))))
	return w
}

func (w *Arc) Value() int32 {
	return int32(w.lib().ArcValue(w.obj))
}

// RemoveKnob drops every style of the knob part.
func (w *Arc) RemoveKnob() *Arc {
	w.lib().RemoveStyle(w.obj, 0, native.PartKnob)
	return w
}

// SetWidth sets the arc stroke width.
func (w *Arc) SetWidth(width int16) *Arc {
	w.lib().StyleSetNum(w.style, native.PropArcWidth, int32(width))
	return w
}

// SetColor sets the arc stroke color.
func (w *Arc) SetColor(color Color) *Arc {
	w.lib().StyleSetColor(w.style, native.PropArcColor, color)
	return w
}

func (w *Arc) SetRounded(rounded bool) *Arc {
	w.lib().StyleSetNum(w.style, native.PropArcRounded, boolNum(rounded))
	return w
}
