// Package native describes the LVGL C ABI consumed by the binding.
//
// The Library interface lists every native entry point the widget layer
// calls. Two implementations exist:
//
//   - the cgo implementation, compiled with the "lvgl" build tag, which links
//     liblvgl and liblv_drivers. The display backend is chosen at build time:
//     "-tags lvgl" selects the framebuffer + evdev drivers, "-tags lvgl,gtk"
//     the GTK simulator.
//   - [Headless], a pure-Go object tree that records every call. It is the
//     default library when LVGL is not linked and the one used by tests.
//
// LVGL is not thread safe. A Library must only be driven from the goroutine
// that owns the display loop; the lvgl package enforces that contract.
package native

import "errors"

// Backend names reported by Library.Backend.
const (
	BackendFbdev    = "fbdev"
	BackendGTK      = "gtk"
	BackendHeadless = "headless"
)

// ErrQrcodeUpdate is returned when the native encoder rejects the payload.
var ErrQrcodeUpdate = errors.New("native: qrcode update failed")

// Library is the native LVGL surface used by the widget layer.
type Library interface {
	// Backend returns the compiled driver backend name.
	Backend() string

	// Init initializes the library and the selected drivers. Calling it
	// more than once is a no-op.
	Init()
	// RegisterDisplay allocates a draw buffer of bufferPixels pixels and
	// registers the display driver.
	RegisterDisplay(width, height int16, bufferPixels uint32) error
	// RegisterPointer registers the pointer input driver. device overrides
	// the evdev node when non-empty; other backends ignore it.
	RegisterPointer(device string) error
	// SetTheme installs the default theme on the default display.
	SetTheme(primary, secondary Color, dark bool, font Font)
	// SetDisplayBackground sets the default display background.
	SetDisplayBackground(c Color, opa Opa)
	// ScreenActive returns the active screen of the default display.
	ScreenActive() Obj
	// TickInc advances the library clock by ms milliseconds.
	TickInc(ms uint32)
	// TimerHandler runs due timers and returns the delay in ms until the
	// next one.
	TimerHandler() uint32
	// SetEventSink installs the receiver of all subscribed native events.
	SetEventSink(sink EventSink)

	Create(kind Kind, parent Obj) Obj
	CreateQrcode(parent Obj, size int16, dark, light Color) Obj
	Align(o Obj, align Align, x, y int16)
	AlignTo(o, base Obj, align Align, x, y int16)
	SetAlign(o Obj, align Align)
	SetPos(o Obj, x, y int16)
	SetWidth(o Obj, w int16)
	SetHeight(o Obj, h int16)
	AddState(o Obj, s State)
	ClearState(o Obj, s State)
	State(o Obj) State
	AddFlag(o Obj, f Flag)
	ClearFlag(o Obj, f Flag)
	AddStyle(o Obj, s Style, sel Selector)
	// RemoveStyle detaches s from o; a zero s removes every style on sel.
	RemoveStyle(o Obj, s Style, sel Selector)
	SetLocalNum(o Obj, p StyleProp, v int32, sel Selector)
	SetLocalColor(o Obj, p StyleProp, c Color, sel Selector)
	// AddEventCallback subscribes o to all events, tagging them with token.
	AddEventCallback(o Obj, token uintptr)

	// NewStyle allocates and initializes a style block that is never freed.
	NewStyle() Style
	StyleSetNum(s Style, p StyleProp, v int32)
	StyleSetColor(s Style, p StyleProp, c Color)
	StyleSetFont(s Style, f Font)
	StyleSetTransition(s Style, props []StyleProp, timeMs, delayMs uint32)

	LabelSetText(o Obj, text string)
	LabelText(o Obj) string
	LabelSetLongMode(o Obj, mode LongMode)
	LabelSetRecolor(o Obj, on bool)

	// ImgSetSrc sets an image source: an "L:" prefixed path or a symbol.
	ImgSetSrc(o Obj, src string)
	ImgSetAngle(o Obj, angle int16)
	ImgSetZoom(o Obj, zoom uint16)

	TextareaSetText(o Obj, text string)
	TextareaAddText(o Obj, text string)
	TextareaText(o Obj) string
	TextareaSetOneLine(o Obj, on bool)

	LedOn(o Obj)
	LedOff(o Obj)
	LedSetColor(o Obj, c Color)
	LedSetBrightness(o Obj, bright uint8)
	LedBrightness(o Obj) uint8

	// LineSetPoints hands points to the line; the library keeps them for
	// the process lifetime.
	LineSetPoints(o Obj, points []Point)

	ArcSetBgAngles(o Obj, start, end uint16)
	ArcSetRotation(o Obj, rotation uint16)
	ArcSetRange(o Obj, min, max int16)
	ArcSetValue(o Obj, v int16)
	ArcValue(o Obj) int16

	BarSetRange(o Obj, min, max int32)
	BarSetValue(o Obj, v int32, animate bool)
	BarValue(o Obj) int32

	MeterAddScale(o Obj) MeterScale
	MeterSetScaleTicks(o Obj, sc MeterScale, count, width, length uint16, c Color)
	MeterSetScaleMajorTicks(o Obj, sc MeterScale, nth, width, length uint16, c Color, labelGap int16)
	MeterAddNeedleLine(o Obj, sc MeterScale, width uint16, c Color, rMod int16) MeterIndicator
	MeterAddArc(o Obj, sc MeterScale, width uint16, c Color, rMod int16) MeterIndicator
	MeterAddScaleLines(o Obj, sc MeterScale, start, end Color, local bool, widthMod int16) MeterIndicator
	MeterSetIndicatorValue(o Obj, ind MeterIndicator, v int32)
	MeterSetIndicatorStartValue(o Obj, ind MeterIndicator, v int32)
	MeterSetIndicatorEndValue(o Obj, ind MeterIndicator, v int32)

	QrcodeUpdate(o Obj, data []byte) error

	// ImgbtnSetSrc sets the three slices of an image button state. The
	// sources are retained by the library.
	ImgbtnSetSrc(o Obj, state ImgbtnState, left, mid, right string)
}
