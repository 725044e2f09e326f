package native

import (
	"fmt"
	"slices"
	"sync"
)

// headlessNextTimer is the delay TimerHandler reports when nothing is due.
const headlessNextTimer = 5

// ObjectState is a snapshot of one object in a Headless tree.
type ObjectState struct {
	Kind      Kind
	Parent    Obj
	Children  []Obj
	X, Y      int16
	Width     int16
	Height    int16
	Align     Align
	AlignBase Obj
	State     State
	Flags     Flag
	Styles    []Style
	Local     map[StyleProp]any

	Text     string
	LongMode LongMode
	Recolor  bool
	OneLine  bool

	Src   string
	Angle int16
	Zoom  uint16

	LedOn      bool
	LedColor   Color
	Brightness uint8

	Points []Point

	Min, Max   int32
	Value      int32
	BgStart    uint16
	BgEnd      uint16
	Rotation   uint16
	QrSize     int16
	QrData     []byte
	ImgbtnSrcs map[ImgbtnState][3]string

	Callbacks []uintptr
}

// StyleState is a snapshot of one style block in a Headless library.
type StyleState struct {
	Props      map[StyleProp]any
	Transition []StyleProp
}

type meterIndicator struct {
	obj   Obj
	value int32
	start int32
	end   int32
}

// Headless is an in-memory Library. It keeps the object tree, styles,
// states and widget values so the binding can run without liblvgl, and it
// can inject native events with Emit and Click.
//
// All methods are safe for concurrent use; the event sink is always called
// without the internal lock held.
type Headless struct {
	mu          sync.Mutex
	initialized bool
	next        uintptr
	objects     map[Obj]*ObjectState
	styles      map[Style]*StyleState
	indicators  map[MeterIndicator]*meterIndicator
	screen      Obj
	sink        EventSink

	width, height int16
	bufferPixels  uint32
	pointer       bool
	inputDevice   string
	theme         *Theme
	bg            Color
	bgOpa         Opa

	ticks     uint64
	handlers  uint64
	NextTimer uint32
	// QrcodeLimit is the largest payload QrcodeUpdate accepts.
	QrcodeLimit int
}

// Theme records the arguments of the last SetTheme call.
type Theme struct {
	Primary   Color
	Secondary Color
	Dark      bool
	Font      Font
}

var _ Library = (*Headless)(nil)

// NewHeadless returns an empty, uninitialized headless library.
func NewHeadless() *Headless {
	return &Headless{
		next:        0x1000,
		objects:     make(map[Obj]*ObjectState),
		styles:      make(map[Style]*StyleState),
		indicators:  make(map[MeterIndicator]*meterIndicator),
		NextTimer:   headlessNextTimer,
		QrcodeLimit: 2953,
	}
}

func (h *Headless) alloc() uintptr {
	h.next += 0x10
	return h.next
}

func (h *Headless) obj(o Obj) *ObjectState {
	st, ok := h.objects[o]
	if !ok {
		panic(fmt.Sprintf("native: unknown object %#x", uintptr(o)))
	}
	return st
}

func (h *Headless) style(s Style) *StyleState {
	st, ok := h.styles[s]
	if !ok {
		panic(fmt.Sprintf("native: unknown style %#x", uintptr(s)))
	}
	return st
}

func (h *Headless) newObj(kind Kind, parent Obj) Obj {
	o := Obj(h.alloc())
	st := &ObjectState{Kind: kind, Parent: parent, Local: make(map[StyleProp]any)}
	switch kind {
	case KindSwitch:
		st.Flags |= FlagClickable | FlagCheckable
	case KindButton, KindImgButton:
		st.Flags |= FlagClickable
	case KindArc:
		st.Flags |= FlagClickable
		st.Max = 100
	case KindBar:
		st.Max = 100
	case KindImage:
		st.Zoom = 256
	case KindLed:
		st.Brightness = 255
		st.LedOn = true
	}
	h.objects[o] = st
	if parent != 0 {
		p := h.obj(parent)
		p.Children = append(p.Children, o)
	}
	return o
}

func (h *Headless) Backend() string { return BackendHeadless }

func (h *Headless) Init() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.initialized {
		return
	}
	h.initialized = true
	h.screen = h.newObj(KindObj, 0)
}

// Initialized reports whether Init has been called.
func (h *Headless) Initialized() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.initialized
}

func (h *Headless) RegisterDisplay(width, height int16, bufferPixels uint32) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.initialized {
		return fmt.Errorf("native: RegisterDisplay before Init")
	}
	if bufferPixels == 0 {
		return fmt.Errorf("native: empty draw buffer")
	}
	h.width, h.height, h.bufferPixels = width, height, bufferPixels
	return nil
}

func (h *Headless) RegisterPointer(device string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.initialized {
		return fmt.Errorf("native: RegisterPointer before Init")
	}
	h.pointer = true
	h.inputDevice = device
	return nil
}

// DisplayInfo returns the registered resolution and draw buffer size.
func (h *Headless) DisplayInfo() (width, height int16, bufferPixels uint32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.width, h.height, h.bufferPixels
}

// PointerRegistered reports whether a pointer driver was registered and the
// device it was given.
func (h *Headless) PointerRegistered() (bool, string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pointer, h.inputDevice
}

func (h *Headless) SetTheme(primary, secondary Color, dark bool, font Font) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.theme = &Theme{Primary: primary, Secondary: secondary, Dark: dark, Font: font}
}

// Theme returns the installed theme, or nil.
func (h *Headless) Theme() *Theme {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.theme
}

func (h *Headless) SetDisplayBackground(c Color, opa Opa) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.bg, h.bgOpa = c, opa
}

func (h *Headless) ScreenActive() Obj {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.screen
}

func (h *Headless) TickInc(ms uint32) {
	h.mu.Lock()
	h.ticks += uint64(ms)
	h.mu.Unlock()
}

func (h *Headless) TimerHandler() uint32 {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handlers++
	return h.NextTimer
}

// Ticks returns the accumulated TickInc milliseconds and the number of
// TimerHandler calls.
func (h *Headless) Ticks() (ms uint64, handlerCalls uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.ticks, h.handlers
}

func (h *Headless) SetEventSink(sink EventSink) {
	h.mu.Lock()
	h.sink = sink
	h.mu.Unlock()
}

func (h *Headless) Create(kind Kind, parent Obj) Obj {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.newObj(kind, parent)
}

func (h *Headless) CreateQrcode(parent Obj, size int16, dark, light Color) Obj {
	h.mu.Lock()
	defer h.mu.Unlock()
	o := h.newObj(KindQrcode, parent)
	st := h.objects[o]
	st.QrSize = size
	st.Width, st.Height = size, size
	st.Local[PropLineColor] = dark
	st.Local[PropBgColor] = light
	return o
}

func (h *Headless) Align(o Obj, align Align, x, y int16) {
	h.mu.Lock()
	defer h.mu.Unlock()
	st := h.obj(o)
	st.Align, st.X, st.Y, st.AlignBase = align, x, y, 0
}

func (h *Headless) AlignTo(o, base Obj, align Align, x, y int16) {
	h.mu.Lock()
	defer h.mu.Unlock()
	st := h.obj(o)
	h.obj(base)
	st.Align, st.X, st.Y, st.AlignBase = align, x, y, base
}

func (h *Headless) SetAlign(o Obj, align Align) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.obj(o).Align = align
}

func (h *Headless) SetPos(o Obj, x, y int16) {
	h.mu.Lock()
	defer h.mu.Unlock()
	st := h.obj(o)
	st.X, st.Y = x, y
}

func (h *Headless) SetWidth(o Obj, w int16) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.obj(o).Width = w
}

func (h *Headless) SetHeight(o Obj, v int16) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.obj(o).Height = v
}

func (h *Headless) AddState(o Obj, s State) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.obj(o).State |= s
}

func (h *Headless) ClearState(o Obj, s State) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.obj(o).State &^= s
}

func (h *Headless) State(o Obj) State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.obj(o).State
}

func (h *Headless) AddFlag(o Obj, f Flag) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.obj(o).Flags |= f
}

func (h *Headless) ClearFlag(o Obj, f Flag) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.obj(o).Flags &^= f
}

func (h *Headless) AddStyle(o Obj, s Style, sel Selector) {
	h.mu.Lock()
	defer h.mu.Unlock()
	st := h.obj(o)
	h.style(s)
	st.Styles = append(st.Styles, s)
}

func (h *Headless) RemoveStyle(o Obj, s Style, sel Selector) {
	h.mu.Lock()
	defer h.mu.Unlock()
	st := h.obj(o)
	if s == 0 {
		st.Styles = nil
		return
	}
	st.Styles = slices.DeleteFunc(st.Styles, func(x Style) bool { return x == s })
}

func (h *Headless) SetLocalNum(o Obj, p StyleProp, v int32, sel Selector) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.obj(o).Local[p] = v
}

func (h *Headless) SetLocalColor(o Obj, p StyleProp, c Color, sel Selector) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.obj(o).Local[p] = c
}

func (h *Headless) AddEventCallback(o Obj, token uintptr) {
	h.mu.Lock()
	defer h.mu.Unlock()
	st := h.obj(o)
	st.Callbacks = append(st.Callbacks, token)
}

func (h *Headless) NewStyle() Style {
	h.mu.Lock()
	defer h.mu.Unlock()
	s := Style(h.alloc())
	h.styles[s] = &StyleState{Props: make(map[StyleProp]any)}
	return s
}

func (h *Headless) StyleSetNum(s Style, p StyleProp, v int32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.style(s).Props[p] = v
}

func (h *Headless) StyleSetColor(s Style, p StyleProp, c Color) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.style(s).Props[p] = c
}

func (h *Headless) StyleSetFont(s Style, f Font) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.style(s).Props[PropTextFont] = f
}

func (h *Headless) StyleSetTransition(s Style, props []StyleProp, timeMs, delayMs uint32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.style(s).Transition = slices.Clone(props)
}

func (h *Headless) LabelSetText(o Obj, text string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.obj(o).Text = text
}

func (h *Headless) LabelText(o Obj) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.obj(o).Text
}

func (h *Headless) LabelSetLongMode(o Obj, mode LongMode) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.obj(o).LongMode = mode
}

func (h *Headless) LabelSetRecolor(o Obj, on bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.obj(o).Recolor = on
}

func (h *Headless) ImgSetSrc(o Obj, src string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.obj(o).Src = src
}

func (h *Headless) ImgSetAngle(o Obj, angle int16) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.obj(o).Angle = angle
}

func (h *Headless) ImgSetZoom(o Obj, zoom uint16) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.obj(o).Zoom = zoom
}

func (h *Headless) TextareaSetText(o Obj, text string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.obj(o).Text = text
}

func (h *Headless) TextareaAddText(o Obj, text string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.obj(o).Text += text
}

func (h *Headless) TextareaText(o Obj) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.obj(o).Text
}

func (h *Headless) TextareaSetOneLine(o Obj, on bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.obj(o).OneLine = on
}

func (h *Headless) LedOn(o Obj) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.obj(o).LedOn = true
}

func (h *Headless) LedOff(o Obj) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.obj(o).LedOn = false
}

func (h *Headless) LedSetColor(o Obj, c Color) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.obj(o).LedColor = c
}

func (h *Headless) LedSetBrightness(o Obj, bright uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.obj(o).Brightness = bright
}

func (h *Headless) LedBrightness(o Obj) uint8 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.obj(o).Brightness
}

func (h *Headless) LineSetPoints(o Obj, points []Point) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.obj(o).Points = slices.Clone(points)
}

func (h *Headless) ArcSetBgAngles(o Obj, start, end uint16) {
	h.mu.Lock()
	defer h.mu.Unlock()
	st := h.obj(o)
	st.BgStart, st.BgEnd = start, end
}

func (h *Headless) ArcSetRotation(o Obj, rotation uint16) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.obj(o).Rotation = rotation
}

func (h *Headless) ArcSetRange(o Obj, min, max int16) {
	h.mu.Lock()
	defer h.mu.Unlock()
	st := h.obj(o)
	st.Min, st.Max = int32(min), int32(max)
	st.Value = clamp(st.Value, st.Min, st.Max)
}

func (h *Headless) ArcSetValue(o Obj, v int16) {
	h.mu.Lock()
	defer h.mu.Unlock()
	st := h.obj(o)
	st.Value = clamp(int32(v), st.Min, st.Max)
}

func (h *Headless) ArcValue(o Obj) int16 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return int16(h.obj(o).Value)
}

func (h *Headless) BarSetRange(o Obj, min, max int32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	st := h.obj(o)
	st.Min, st.Max = min, max
	st.Value = clamp(st.Value, min, max)
}

func (h *Headless) BarSetValue(o Obj, v int32, animate bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	st := h.obj(o)
	st.Value = clamp(v, st.Min, st.Max)
}

func (h *Headless) BarValue(o Obj) int32 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.obj(o).Value
}

func (h *Headless) MeterAddScale(o Obj) MeterScale {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.obj(o)
	return MeterScale(h.alloc())
}

func (h *Headless) MeterSetScaleTicks(o Obj, sc MeterScale, count, width, length uint16, c Color) {
}

func (h *Headless) MeterSetScaleMajorTicks(o Obj, sc MeterScale, nth, width, length uint16, c Color, labelGap int16) {
}

func (h *Headless) addIndicator(o Obj) MeterIndicator {
	h.obj(o)
	ind := MeterIndicator(h.alloc())
	h.indicators[ind] = &meterIndicator{obj: o}
	return ind
}

func (h *Headless) MeterAddNeedleLine(o Obj, sc MeterScale, width uint16, c Color, rMod int16) MeterIndicator {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.addIndicator(o)
}

func (h *Headless) MeterAddArc(o Obj, sc MeterScale, width uint16, c Color, rMod int16) MeterIndicator {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.addIndicator(o)
}

func (h *Headless) MeterAddScaleLines(o Obj, sc MeterScale, start, end Color, local bool, widthMod int16) MeterIndicator {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.addIndicator(o)
}

func (h *Headless) MeterSetIndicatorValue(o Obj, ind MeterIndicator, v int32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.indicators[ind].value = v
}

func (h *Headless) MeterSetIndicatorStartValue(o Obj, ind MeterIndicator, v int32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.indicators[ind].start = v
}

func (h *Headless) MeterSetIndicatorEndValue(o Obj, ind MeterIndicator, v int32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.indicators[ind].end = v
}

// IndicatorValue returns the value, start and end of a meter indicator.
func (h *Headless) IndicatorValue(ind MeterIndicator) (value, start, end int32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	mi, ok := h.indicators[ind]
	if !ok {
		return 0, 0, 0
	}
	return mi.value, mi.start, mi.end
}

func (h *Headless) QrcodeUpdate(o Obj, data []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(data) > h.QrcodeLimit {
		return ErrQrcodeUpdate
	}
	h.obj(o).QrData = slices.Clone(data)
	return nil
}

func (h *Headless) ImgbtnSetSrc(o Obj, state ImgbtnState, left, mid, right string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	st := h.obj(o)
	if st.ImgbtnSrcs == nil {
		st.ImgbtnSrcs = make(map[ImgbtnState][3]string)
	}
	st.ImgbtnSrcs[state] = [3]string{left, mid, right}
}

// Object returns a copy of the object state.
func (h *Headless) Object(o Obj) (ObjectState, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	st, ok := h.objects[o]
	if !ok {
		return ObjectState{}, false
	}
	cp := *st
	cp.Children = slices.Clone(st.Children)
	cp.Styles = slices.Clone(st.Styles)
	cp.Points = slices.Clone(st.Points)
	cp.Callbacks = slices.Clone(st.Callbacks)
	cp.QrData = slices.Clone(st.QrData)
	cp.Local = make(map[StyleProp]any, len(st.Local))
	for k, v := range st.Local {
		cp.Local[k] = v
	}
	return cp, true
}

// StyleOf returns a copy of a style block.
func (h *Headless) StyleOf(s Style) (StyleState, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	st, ok := h.styles[s]
	if !ok {
		return StyleState{}, false
	}
	cp := StyleState{Props: make(map[StyleProp]any, len(st.Props)), Transition: slices.Clone(st.Transition)}
	for k, v := range st.Props {
		cp.Props[k] = v
	}
	return cp, true
}

// ObjectCount returns the number of objects, the screen included.
func (h *Headless) ObjectCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.objects)
}

// Emit delivers a native event code to every callback subscribed on o, the
// way lv_event_send would.
func (h *Headless) Emit(o Obj, code EventCode) {
	h.mu.Lock()
	st, ok := h.objects[o]
	if !ok {
		h.mu.Unlock()
		return
	}
	tokens := slices.Clone(st.Callbacks)
	sink := h.sink
	h.mu.Unlock()

	if sink == nil {
		return
	}
	for _, token := range tokens {
		sink(token, code)
	}
}

// Click simulates a pointer press and release on o. Disabled objects
// ignore it. Checkable objects toggle their checked state and report a
// value change.
func (h *Headless) Click(o Obj) {
	h.mu.Lock()
	st, ok := h.objects[o]
	if !ok || st.State.Has(StateDisabled) {
		h.mu.Unlock()
		return
	}
	checkable := st.Flags&FlagCheckable != 0
	h.mu.Unlock()

	h.Emit(o, 1)
	h.Emit(o, 8)
	h.Emit(o, 4)
	h.Emit(o, 7)
	if checkable {
		h.mu.Lock()
		st.State ^= StateChecked
		h.mu.Unlock()
		h.Emit(o, 28)
	}
}

func clamp(v, lo, hi int32) int32 {
	if lo > hi {
		return v
	}
	return max(lo, min(v, hi))
}
