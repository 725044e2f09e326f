package lvgl

import "github.com/go-lvgl/lvgl/pkg/native"

// Meter is a round gauge with one scale and one needle.
type Meter struct {
	common[*Meter]
	scale  native.MeterScale
	needle native.MeterIndicator
	zones  []native.MeterIndicator
}

// NewMeter creates a meter whose needle is needleWidth wide and shortened
// by needleRatio pixels from the scale radius.
func NewMeter(parent Widget, uid string, needleWidth uint16, needleRatio int16, needleColor Color, x, y int16) *Meter {
	d, o := newObj(parent, native.KindMeter, x, y)

	w := &Meter{}
	w.init(w, d, KindMeter, uid, o)
	w.scale = d.lib.MeterAddScale(o)
	w.needle = d.lib.MeterAddNeedleLine(o, w.scale, needleWidth, needleColor, needleRatio)
	return w
}

// SetTicks configures the scale: tickCount minor ticks of lineWidth by
// tickLength, every nthMajor of them a major tick one and a half times as
// large, labelled labelGap pixels away.
func (w *Meter) SetTicks(lineWidth uint16, labelGap int16, tickCount, tickLength, nthMajor uint16, minor, major Color) *Meter {
	lib := w.lib()
	lib.MeterSetScaleTicks(w.obj, w.scale, tickCount, lineWidth, tickLength, minor)
	lib.MeterSetScaleMajorTicks(w.obj, w.scale, nthMajor, lineWidth*3/2, tickLength*3/2, major, labelGap)
	return w
}

// SetZone colors the scale arc and ticks between start and end.
func (w *Meter) SetZone(start, end int32, width uint16, color Color) *Meter {
	lib := w.lib()
	arc := lib.MeterAddArc(w.obj, w.scale, width, color, 0)
	lib.MeterSetIndicatorStartValue(w.obj, arc, start)
	lib.MeterSetIndicatorEndValue(w.obj, arc, end)

	lines := lib.MeterAddScaleLines(w.obj, w.scale, color, color, false, 0)
	lib.MeterSetIndicatorStartValue(w.obj, lines, start)
	lib.MeterSetIndicatorEndValue(w.obj, lines, end)
	w.zones = append(w.zones, arc, lines)
	return w
}

// SetValue moves the needle.
func (w *Meter) SetValue(v int32) *Meter {
	w.lib().MeterSetIndicatorValue(w.obj, w.needle, v)
	return w
}

// Needle returns the needle indicator.
func (w *Meter) Needle() native.MeterIndicator { return w.needle }

// Zones returns the indicators added by SetZone, two per zone.
func (w *Meter) Zones() []native.MeterIndicator {
	return append([]native.MeterIndicator(nil), w.zones...)
}
