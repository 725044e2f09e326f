package lvgl

import (
	"github.com/go-lvgl/lvgl/pkg/logx"
	"github.com/go-lvgl/lvgl/pkg/native"
)

// Kind names the concrete type behind a Widget.
type Kind uint8

const (
	KindLabel Kind = iota
	KindButton
	KindPixButton
	KindPixmap
	KindImage
	KindTextArea
	KindLed
	KindLine
	KindArc
	KindSwitch
	KindBar
	KindMeter
	KindQrcode
	KindArea
	KindImgButton
	KindRoot
)

// Kinds lists every widget kind.
func Kinds() []Kind {
	return []Kind{
		KindLabel, KindButton, KindPixButton, KindPixmap, KindImage,
		KindTextArea, KindLed, KindLine, KindArc, KindSwitch, KindBar,
		KindMeter, KindQrcode, KindArea, KindImgButton, KindRoot,
	}
}

func (k Kind) String() string {
	switch k {
	case KindLabel:
		return "Label"
	case KindButton:
		return "Button"
	case KindPixButton:
		return "PixButton"
	case KindPixmap:
		return "Pixmap"
	case KindImage:
		return "Image"
	case KindTextArea:
		return "TextArea"
	case KindLed:
		return "Led"
	case KindLine:
		return "Line"
	case KindArc:
		return "Arc"
	case KindSwitch:
		return "Switch"
	case KindBar:
		return "Bar"
	case KindMeter:
		return "Meter"
	case KindQrcode:
		return "Qrcode"
	case KindArea:
		return "Area"
	case KindImgButton:
		return "ImgButton"
	case KindRoot:
		return "Root"
	default:
		return "Unknown"
	}
}

var (
	pressOnly   = eventsOf(EventPressed)
	valueOnly   = eventsOf(EventValueChanged)
	onOffAction = []string{"ON", "OFF"}
)

// Forwards reports whether widgets of kind k pass ev to their handler.
func (k Kind) Forwards(ev Event) bool {
	return k.allowed().has(ev)
}

func (k Kind) allowed() eventSet {
	switch k {
	case KindButton, KindPixButton, KindImgButton, KindLed:
		return pressOnly
	case KindSwitch, KindBar:
		return valueOnly
	default:
		return 0
	}
}

// Actions returns the user-facing actions of widgets of kind k.
func (k Kind) Actions() []string {
	switch k {
	case KindPixButton, KindPixmap, KindLed, KindSwitch:
		return onOffAction
	default:
		return nil
	}
}

// Widget is implemented by every wrapper in this package and by nothing
// else. Type switch on the concrete pointer types to reach kind-specific
// operations.
type Widget interface {
	UID() string
	Info() string
	ID() uintptr
	Handle() native.Obj
	Kind() Kind
	States() native.State
	Actions() []string

	dispatch(ev Event)
	display() *Display
}

// common carries the state and methods shared by every wrapper. T is the
// embedding wrapper's pointer type so setters can chain.
type common[T any] struct {
	self    T
	d       *Display
	id      uintptr
	uid     string
	info    string
	kind    Kind
	obj     native.Obj
	style   native.Style
	handler Handler
}

// init attaches the widget style and registers the wrapper. The returned
// wrapper must be fully constructed except for the style.
func (c *common[T]) init(self T, d *Display, kind Kind, uid string, obj native.Obj) T {
	c.self = self
	c.d = d
	c.kind = kind
	c.uid = uid
	c.obj = obj
	c.style = d.newStyle()
	d.lib.AddStyle(obj, c.style, native.PartMain)
	c.id = d.arena.add(any(self).(Widget))
	d.metrics.widgets.Inc()
	logx.Debug("widget created", d, "kind", kind.String(), "uid", uid, "id", c.id)
	return self
}

func (c *common[T]) UID() string { return c.uid }
func (c *common[T]) Info() string { return c.info }
func (c *common[T]) ID() uintptr { return c.id }
func (c *common[T]) Handle() native.Obj { return c.obj }
func (c *common[T]) Kind() Kind { return c.kind }
func (c *common[T]) Style() native.Style { return c.style }
func (c *common[T]) States() native.State { return c.d.lib.State(c.obj) }
func (c *common[T]) Actions() []string { return c.kind.Actions() }
func (c *common[T]) display() *Display { return c.d }
func (c *common[T]) lib() native.Library { return c.d.lib }
func (c *common[T]) Display() *Display { return c.d }
func (c *common[T]) Callback() (Handler, bool) { return c.handler, c.handler != nil }

func (c *common[T]) SetInfo(info string) T {
	c.info = info
	return c.self
}

func (c *common[T]) SetSize(width, height int16) T {
	c.lib().SetWidth(c.obj, width)
	c.lib().SetHeight(c.obj, height)
	return c.self
}

func (c *common[T]) SetWidth(width int16) T {
	c.lib().SetWidth(c.obj, width)
	return c.self
}

func (c *common[T]) SetHeight(height int16) T {
	c.lib().SetHeight(c.obj, height)
	return c.self
}

// SetColor sets the text color.
func (c *common[T]) SetColor(color Color) T {
	c.lib().StyleSetColor(c.style, native.PropTextColor, color)
	return c.self
}

func (c *common[T]) SetBorder(width int16, color Color) T {
	c.lib().StyleSetNum(c.style, native.PropBorderWidth, int32(width))
	c.lib().StyleSetColor(c.style, native.PropBorderColor, color)
	return c.self
}

func (c *common[T]) SetPadding(top, bottom, right, left int16) T {
	lib := c.lib()
	lib.StyleSetNum(c.style, native.PropPadTop, int32(top))
	lib.StyleSetNum(c.style, native.PropPadBottom, int32(bottom))
	lib.StyleSetNum(c.style, native.PropPadRight, int32(right))
	lib.StyleSetNum(c.style, native.PropPadLeft, int32(left))
	return c.self
}

// SetDisable adds or clears the disabled state.
func (c *common[T]) SetDisable(lock bool) T {
	if lock {
		c.lib().AddState(c.obj, native.StateDisabled)
	} else {
		c.lib().ClearState(c.obj, native.StateDisabled)
	}
	return c.self
}

// SetRadius makes the widget round.
func (c *common[T]) SetRadius() T {
	c.lib().SetLocalNum(c.obj, native.PropRadius, native.RadiusCircle, native.PartMain)
	return c.self
}

// SetTitle puts a caption label on the active screen, aligned below the
// widget's left edge and shifted by x, y.
func (c *common[T]) SetTitle(text string, x, y int16, font Font) T {
	lib := c.lib()
	title := lib.Create(native.KindLabel, lib.ScreenActive())
	lib.AlignTo(title, c.obj, native.AlignBottomLeft, x, y)

	style := c.d.newStyle()
	lib.AddStyle(title, style, native.PartMain)
	lib.SetLocalNum(title, native.PropTextAlign, int32(native.TextAlignCenter), native.PartMain)
	lib.StyleSetFont(style, native.Font(font))
	lib.LabelSetText(title, c.d.text(text, placeholderLabel, c.uid))
	return c.self
}

// SetBackground paints the background at half opacity.
func (c *common[T]) SetBackground(color Color) T {
	lib := c.lib()
	lib.StyleSetColor(c.style, native.PropBgColor, color)
	lib.StyleSetNum(c.style, native.PropBgOpa, int32(native.Opa50))
	lib.AddStyle(c.obj, c.style, native.PartMain)
	return c.self
}

// SetCallback installs h and subscribes the widget to native events. Only
// the first handler is kept; later calls do nothing.
func (c *common[T]) SetCallback(h Handler) T {
	if h == nil {
		return c.self
	}
	if c.handler != nil {
		logx.Debug("callback already set", c.d, "uid", c.uid)
		return c.self
	}
	c.handler = h
	c.lib().AddEventCallback(c.obj, c.id)
	return c.self
}

// SetCallbackFunc is SetCallback for a plain function.
func (c *common[T]) SetCallbackFunc(fn func(w Widget, uid string, ev Event)) T {
	if fn == nil {
		return c.self
	}
	return c.SetCallback(HandlerFunc(fn))
}

func (c *common[T]) dispatch(ev Event) {
	if c.handler == nil || !c.kind.allowed().has(ev) {
		c.d.metrics.event(ev, outcomeFiltered)
		return
	}
	c.d.metrics.event(ev, outcomeForwarded)
	c.handler.HandleEvent(any(c.self).(Widget), c.uid, ev)
}

// newObj creates a native object of kind under parent and aligns it
// top-left at x, y, the placement every constructor uses. parent must not
// be nil; use Display.Root for the active screen.
func newObj(parent Widget, kind native.Kind, x, y int16) (*Display, native.Obj) {
	d := parent.display()
	o := d.lib.Create(kind, parent.Handle())
	d.lib.Align(o, native.AlignTopLeft, x, y)
	return d, o
}

// attachFont adds a style block carrying font to o.
func attachFont(d *Display, o native.Obj, font Font) native.Style {
	s := d.newStyle()
	d.lib.StyleSetFont(s, native.Font(font))
	d.lib.AddStyle(o, s, native.PartMain)
	return s
}
