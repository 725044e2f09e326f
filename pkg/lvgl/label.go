package lvgl

import "github.com/go-lvgl/lvgl/pkg/native"

// Label is a single line of text.
type Label struct {
	common[*Label]
}

// NewLabel creates a centered, non-recolored label at x, y inside parent.
func NewLabel(parent Widget, uid string, font Font, x, y int16) *Label {
	d, o := newObj(parent, native.KindLabel, x, y)
	d.lib.LabelSetRecolor(o, false)
	d.lib.SetLocalNum(o, native.PropTextAlign, int32(native.TextAlignCenter), native.PartMain)
	attachFont(d, o, font)

	w := &Label{}
	return w.init(w, d, KindLabel, uid, o)
}

// SetValue replaces the text. Invalid text is shown as a placeholder.
func (w *Label) SetValue(text string) *Label {
	w.lib().LabelSetText(w.obj, w.d.text(text, placeholderLabel, w.uid))
	return w
}

// Value returns the displayed text.
func (w *Label) Value() string {
	return w.lib().LabelText(w.obj)
}

// SetCircular scrolls text that does not fit in a loop.
func (w *Label) SetCircular() *Label {
	w.lib().LabelSetLongMode(w.obj, native.LongScrollCircular)
	return w
}
