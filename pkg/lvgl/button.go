package lvgl

import (
	"github.com/go-lvgl/lvgl/pkg/native"
)

// Button is a push button with a centered text label.
type Button struct {
	common[*Button]
	label native.Obj
}

// NewButton creates a button at x, y inside parent. font applies to the
// button label.
func NewButton(parent Widget, uid string, font Font, x, y int16) *Button {
	d, o := newObj(parent, native.KindButton, x, y)
	attachFont(d, o, font)

	label := d.lib.Create(native.KindLabel, o)
	d.lib.SetAlign(label, native.AlignCenter)
	d.lib.SetPos(label, 0, 0)

	w := &Button{label: label}
	return w.init(w, d, KindButton, uid, o)
}

// SetValue sets the button label.
func (w *Button) SetValue(text string) *Button {
	w.lib().LabelSetText(w.label, w.d.text(text, placeholderLabel, w.uid))
	return w
}

// Value returns the button label.
func (w *Button) Value() string {
	return w.lib().LabelText(w.label)
}

// SetCircular scrolls a label that does not fit in a loop.
func (w *Button) SetCircular() *Button {
	w.lib().LabelSetLongMode(w.label, native.LongScrollCircular)
	return w
}

// LabelHandle returns the child label object.
func (w *Button) LabelHandle() native.Obj { return w.label }

// PixButton is a push button showing a symbol.
type PixButton struct {
	common[*PixButton]
	image native.Obj
}

// NewPixButton creates an empty pixmap button at x, y inside parent.
func NewPixButton(parent Widget, uid string, x, y int16) *PixButton {
	d, o := newObj(parent, native.KindButton, x, y)
	image := d.lib.Create(native.KindImage, o)
	d.lib.Align(image, native.AlignCenter, 0, 0)

	w := &PixButton{image: image}
	return w.init(w, d, KindPixButton, uid, o)
}

// SetValue shows icon on the button.
func (w *PixButton) SetValue(icon Icon) *PixButton {
	w.lib().ImgSetSrc(w.image, w.d.text(icon.src(), placeholderPath, w.uid))
	return w
}

// ImageHandle returns the child image object.
func (w *PixButton) ImageHandle() native.Obj { return w.image }

// ImgButton is an image button that darkens and widens while pressed.
type ImgButton struct {
	common[*ImgButton]
	label    native.Obj
	pressed  native.Style
	released native.Style
}

// imgButtonWiden is the transform width added while pressed.
const imgButtonWiden = 20

// NewImgButton creates an image button at x, y inside parent with a text
// label. While pressed the image is recolored with pressedColor at 30%
// opacity and widened; the change animates over transitionMs after
// delayMs. Image sources are set with SetSources.
func NewImgButton(parent Widget, uid, label string, x, y int16, pressedColor Color, transitionMs, delayMs uint32) *ImgButton {
	d := parent.display()
	lib := d.lib

	released := d.newStyle()
	lib.StyleSetTransition(released, []native.StyleProp{native.PropTransformWidth, native.PropImgRecolorOpa}, transitionMs, delayMs)

	pressed := d.newStyle()
	lib.StyleSetNum(pressed, native.PropImgRecolorOpa, int32(native.Opa30))
	lib.StyleSetColor(pressed, native.PropImgRecolor, pressedColor)
	lib.StyleSetNum(pressed, native.PropTransformWidth, imgButtonWiden)

	o := lib.Create(native.KindImgButton, parent.Handle())
	lib.AddStyle(o, released, native.PartMain)
	lib.AddStyle(o, pressed, native.Selector(native.StatePressed))
	lib.Align(o, native.AlignTopLeft, x, y)

	w := &ImgButton{pressed: pressed, released: released}
	w.init(w, d, KindImgButton, uid, o)

	w.label = lib.Create(native.KindLabel, o)
	lib.LabelSetText(w.label, d.text(label, placeholderLabel, uid))
	lib.Align(w.label, native.AlignCenter, 0, 0)
	return w
}

// SetSources sets the left, middle and right images of the released and
// pressed states. Paths are file paths; the "L:" drive prefix is added.
// An empty path leaves that slice out.
func (w *ImgButton) SetSources(left, mid, right string) *ImgButton {
	l, m, r := w.src(left), w.src(mid), w.src(right)
	w.lib().ImgbtnSetSrc(w.obj, native.ImgbtnReleased, l, m, r)
	w.lib().ImgbtnSetSrc(w.obj, native.ImgbtnPressed, l, m, r)
	return w
}

// SetValue replaces the label text.
func (w *ImgButton) SetValue(text string) *ImgButton {
	w.lib().LabelSetText(w.label, w.d.text(text, placeholderLabel, w.uid))
	return w
}

func (w *ImgButton) src(path string) string {
	if path == "" {
		return ""
	}
	return w.d.text(ImagePath(path), placeholderPath, w.uid)
}
