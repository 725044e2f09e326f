package lvgl

import "github.com/go-lvgl/lvgl/pkg/native"

// Point is a vertex of a Line, relative to the line origin.
type Point = native.Point

// Line is a polyline.
type Line struct {
	common[*Line]
	points []Point
}

func NewLine(parent Widget, uid string, x, y int16) *Line {
	d, o := newObj(parent, native.KindLine, x, y)
	w := &Line{}
	return w.init(w, d, KindLine, uid, o)
}

// SetPoints hands the vertices to the line. The native side keeps its own
// copy for the process lifetime.
func (w *Line) SetPoints(points []Point) *Line {
	w.points = append(w.points[:0:0], points...)
	w.lib().LineSetPoints(w.obj, w.points)
	return w
}

// Points returns the vertices last set.
func (w *Line) Points() []Point { return append([]Point(nil), w.points...) }

// SetWidth sets the stroke width rather than the object width.
func (w *Line) SetWidth(width int16) *Line {
	w.lib().StyleSetNum(w.style, native.PropLineWidth, int32(width))
	return w
}

// SetColor sets the stroke color.
func (w *Line) SetColor(color Color) *Line {
	w.lib().StyleSetColor(w.style, native.PropLineColor, color)
	return w
}

// SetRounded rounds the line ends.
func (w *Line) SetRounded(rounded bool) *Line {
	w.lib().StyleSetNum(w.style, native.PropLineRounded, boolNum(rounded))
	return w
}

func boolNum(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
