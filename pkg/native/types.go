package native

// Obj is an opaque lv_obj_t pointer owned by the native object tree.
type Obj uintptr

// Style is an opaque lv_style_t pointer. Style blocks are never freed.
type Style uintptr

// MeterScale is an opaque lv_meter_scale_t pointer.
type MeterScale uintptr

// MeterIndicator is an opaque lv_meter_indicator_t pointer.
type MeterIndicator uintptr

// Kind selects the native constructor used by Library.Create.
type Kind uint8

const (
	KindObj Kind = iota
	KindLabel
	KindButton
	KindImage
	KindTextArea
	KindLed
	KindLine
	KindArc
	KindSwitch
	KindBar
	KindMeter
	KindImgButton
	KindQrcode
)

func (k Kind) String() string {
	switch k {
	case KindObj:
		return "obj"
	case KindLabel:
		return "label"
	case KindButton:
		return "btn"
	case KindImage:
		return "img"
	case KindTextArea:
		return "textarea"
	case KindLed:
		return "led"
	case KindLine:
		return "line"
	case KindArc:
		return "arc"
	case KindSwitch:
		return "switch"
	case KindBar:
		return "bar"
	case KindMeter:
		return "meter"
	case KindImgButton:
		return "imgbtn"
	case KindQrcode:
		return "qrcode"
	default:
		return "unknown"
	}
}

// Color is a 24-bit RGB color packed as 0xRRGGBB. The cgo layer converts it
// to lv_color_t for the configured color depth.
type Color uint32

// RGB returns the red, green and blue components.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// MakeColor packs three components into a Color.
func MakeColor(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// State mirrors lv_state_t.
type State uint16

const (
	StateDefault  State = 0x0000
	StateChecked  State = 0x0001
	StateFocused  State = 0x0002
	StateFocusKey State = 0x0004
	StateEdited   State = 0x0008
	StateHovered  State = 0x0010
	StatePressed  State = 0x0020
	StateScrolled State = 0x0040
	StateDisabled State = 0x0080
	StateUser1    State = 0x1000
	StateUser2    State = 0x2000
	StateUser3    State = 0x4000
	StateUser4    State = 0x8000
)

// Has reports whether any bit of flag is set.
func (s State) Has(flag State) bool {
	return s&flag != 0
}

// Selector mirrors lv_style_selector_t (part | state).
type Selector uint32

const (
	PartMain      Selector = 0x000000
	PartScrollbar Selector = 0x010000
	PartIndicator Selector = 0x020000
	PartKnob      Selector = 0x030000
)

// Align mirrors lv_align_t.
type Align uint8

const (
	AlignDefault Align = iota
	AlignTopLeft
	AlignTopMid
	AlignTopRight
	AlignBottomLeft
	AlignBottomMid
	AlignBottomRight
	AlignLeftMid
	AlignRightMid
	AlignCenter
)

// TextAlign mirrors lv_text_align_t.
type TextAlign uint8

const (
	TextAlignAuto TextAlign = iota
	TextAlignLeft
	TextAlignCenter
	TextAlignRight
)

// LongMode mirrors lv_label_long_mode_t.
type LongMode uint8

const (
	LongWrap LongMode = iota
	LongDot
	LongScroll
	LongScrollCircular
	LongClip
)

// Flag mirrors lv_obj_flag_t.
type Flag uint32

const (
	FlagHidden         Flag = 1 << 0
	FlagClickable      Flag = 1 << 1
	FlagClickFocusable Flag = 1 << 2
	FlagCheckable      Flag = 1 << 3
)

// GradDir mirrors lv_grad_dir_t.
type GradDir uint8

const (
	GradNone GradDir = iota
	GradVer
	GradHor
)

// Opa mirrors lv_opa_t.
type Opa uint8

const (
	OpaTransp Opa = 0
	Opa30     Opa = 76
	Opa50     Opa = 127
	OpaCover  Opa = 255
)

// RadiusCircle is LV_RADIUS_CIRCLE for 16-bit coordinates.
const RadiusCircle int32 = 0x7FFF

// Font identifies one of the built-in Montserrat fonts compiled into LVGL.
type Font uint8

const (
	FontMontserrat10 Font = iota + 1
	FontMontserrat12
	FontMontserrat14
	FontMontserrat18
	FontMontserrat22
	FontMontserrat26
	FontMontserrat30
	FontMontserrat34
	FontMontserrat40
	FontMontserrat48
)

// PointSize returns the nominal size of the font, or 0 for an unknown font.
func (f Font) PointSize() int {
	switch f {
	case FontMontserrat10:
		return 10
	case FontMontserrat12:
		return 12
	case FontMontserrat14:
		return 14
	case FontMontserrat18:
		return 18
	case FontMontserrat22:
		return 22
	case FontMontserrat26:
		return 26
	case FontMontserrat30:
		return 30
	case FontMontserrat34:
		return 34
	case FontMontserrat40:
		return 40
	case FontMontserrat48:
		return 48
	default:
		return 0
	}
}

// StyleProp names the subset of lv_style_prop_t the binding writes.
type StyleProp uint16

const (
	PropTextColor StyleProp = iota + 1
	PropTextFont
	PropTextAlign
	PropTextOpa
	PropBorderWidth
	PropBorderColor
	PropPadTop
	PropPadBottom
	PropPadLeft
	PropPadRight
	PropBgColor
	PropBgOpa
	PropBgGradColor
	PropBgGradDir
	PropLineWidth
	PropLineColor
	PropLineRounded
	PropArcWidth
	PropArcColor
	PropArcRounded
	PropImgRecolor
	PropImgRecolorOpa
	PropTransformWidth
	PropRadius
)

// ImgbtnState mirrors lv_imgbtn_state_t.
type ImgbtnState uint8

const (
	ImgbtnReleased ImgbtnState = iota
	ImgbtnPressed
	ImgbtnDisabled
	ImgbtnCheckedReleased
	ImgbtnCheckedPressed
	ImgbtnCheckedDisabled
)

// Point mirrors lv_point_t.
type Point struct {
	X, Y int16
}

// EventCode is a raw lv_event_code_t value.
type EventCode uint32

// EventSink receives every native event for objects subscribed through
// Library.AddEventCallback. Token is the user data given at subscription.
type EventSink func(token uintptr, code EventCode)
