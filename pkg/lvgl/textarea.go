package lvgl

import "github.com/go-lvgl/lvgl/pkg/native"

// TextArea is a one-line editable text field.
type TextArea struct {
	common[*TextArea]
}

// NewTextArea creates a left aligned one-line text area at x, y inside
// parent.
func NewTextArea(parent Widget, uid string, x, y int16) *TextArea {
	d, o := newObj(parent, native.KindTextArea, x, y)
	d.lib.TextareaSetOneLine(o, true)
	d.lib.SetLocalNum(o, native.PropTextAlign, int32(native.TextAlignLeft), native.PartMain)
	d.lib.SetLocalNum(o, native.PropTextOpa, int32(native.OpaCover), native.Selector(native.StateFocused))

	w := &TextArea{}
	return w.init(w, d, KindTextArea, uid, o)
}

// SetValue replaces the content.
func (w *TextArea) SetValue(text string) *TextArea {
	w.lib().TextareaSetText(w.obj, w.d.text(text, placeholderText, w.uid))
	return w
}

// Insert adds text at the cursor.
func (w *TextArea) Insert(text string) *TextArea {
	w.lib().TextareaAddText(w.obj, w.d.text(text, placeholderText, w.uid))
	return w
}

// Value returns the content.
func (w *TextArea) Value() string {
	return w.lib().TextareaText(w.obj)
}
