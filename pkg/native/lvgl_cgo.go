//go:build lvgl && cgo

package native

/*
#cgo CFLAGS: -DLV_CONF_INCLUDE_SIMPLE -DLV_LVGL_H_INCLUDE_SIMPLE
#cgo LDFLAGS: -llv_drivers -llvgl -lm

#include <stdint.h>
#include <stdlib.h>
#include "lvgl.h"

extern void lvglGoEvent(uintptr_t token, uint32_t code);

static void lvgl_go_event_trampoline(lv_event_t *e) {
	lvglGoEvent((uintptr_t)lv_event_get_user_data(e), (uint32_t)lv_event_get_code(e));
}

static void lvgl_go_add_event(lv_obj_t *o, uintptr_t token) {
	lv_obj_add_event_cb(o, lvgl_go_event_trampoline, LV_EVENT_ALL, (void *)token);
}

static lv_color_t lvgl_go_color(uint32_t rgb) {
	return lv_color_hex(rgb);
}

static const lv_font_t *lvgl_go_font(int id) {
	switch (id) {
	case 1: return &lv_font_montserrat_10;
	case 2: return &lv_font_montserrat_12;
	case 3: return &lv_font_montserrat_14;
	case 4: return &lv_font_montserrat_18;
	case 5: return &lv_font_montserrat_22;
	case 6: return &lv_font_montserrat_26;
	case 7: return &lv_font_montserrat_30;
	case 8: return &lv_font_montserrat_34;
	case 9: return &lv_font_montserrat_40;
	case 10: return &lv_font_montserrat_48;
	}
	return LV_FONT_DEFAULT;
}

static lv_style_prop_t lvgl_go_prop(int p) {
	switch (p) {
	case 1: return LV_STYLE_TEXT_COLOR;
	case 2: return LV_STYLE_TEXT_FONT;
	case 3: return LV_STYLE_TEXT_ALIGN;
	case 4: return LV_STYLE_TEXT_OPA;
	case 5: return LV_STYLE_BORDER_WIDTH;
	case 6: return LV_STYLE_BORDER_COLOR;
	case 7: return LV_STYLE_PAD_TOP;
	case 8: return LV_STYLE_PAD_BOTTOM;
	case 9: return LV_STYLE_PAD_LEFT;
	case 10: return LV_STYLE_PAD_RIGHT;
	case 11: return LV_STYLE_BG_COLOR;
	case 12: return LV_STYLE_BG_OPA;
	case 13: return LV_STYLE_BG_GRAD_COLOR;
	case 14: return LV_STYLE_BG_GRAD_DIR;
	case 15: return LV_STYLE_LINE_WIDTH;
	case 16: return LV_STYLE_LINE_COLOR;
	case 17: return LV_STYLE_LINE_ROUNDED;
	case 18: return LV_STYLE_ARC_WIDTH;
	case 19: return LV_STYLE_ARC_COLOR;
	case 20: return LV_STYLE_ARC_ROUNDED;
	case 21: return LV_STYLE_IMG_RECOLOR;
	case 22: return LV_STYLE_IMG_RECOLOR_OPA;
	case 23: return LV_STYLE_TRANSFORM_WIDTH;
	case 24: return LV_STYLE_RADIUS;
	}
	return LV_STYLE_PROP_INV;
}

static lv_obj_t *lvgl_go_create(int kind, lv_obj_t *parent) {
	switch (kind) {
	case 1: return lv_label_create(parent);
	case 2: return lv_btn_create(parent);
	case 3: return lv_img_create(parent);
	case 4: return lv_textarea_create(parent);
	case 5: return lv_led_create(parent);
	case 6: return lv_line_create(parent);
	case 7: return lv_arc_create(parent);
	case 8: return lv_switch_create(parent);
	case 9: return lv_bar_create(parent);
	case 10: return lv_meter_create(parent);
	case 11: return lv_imgbtn_create(parent);
	}
	return lv_obj_create(parent);
}

static void lvgl_go_local_num(lv_obj_t *o, int p, int32_t v, uint32_t sel) {
	lv_style_value_t val;
	val.num = v;
	lv_obj_set_local_style_prop(o, lvgl_go_prop(p), val, sel);
}

static void lvgl_go_local_color(lv_obj_t *o, int p, uint32_t rgb, uint32_t sel) {
	lv_style_value_t val;
	val.color = lv_color_hex(rgb);
	lv_obj_set_local_style_prop(o, lvgl_go_prop(p), val, sel);
}

static lv_style_t *lvgl_go_style_new(void) {
	lv_style_t *s = calloc(1, sizeof(lv_style_t));
	lv_style_init(s);
	return s;
}

static void lvgl_go_style_num(lv_style_t *s, int p, int32_t v) {
	lv_style_value_t val;
	val.num = v;
	lv_style_set_prop(s, lvgl_go_prop(p), val);
}

static void lvgl_go_style_color(lv_style_t *s, int p, uint32_t rgb) {
	lv_style_value_t val;
	val.color = lv_color_hex(rgb);
	lv_style_set_prop(s, lvgl_go_prop(p), val);
}

static void lvgl_go_style_font(lv_style_t *s, int id) {
	lv_style_set_text_font(s, lvgl_go_font(id));
}

static void lvgl_go_style_transition(lv_style_t *s, const int *props, int n, uint32_t time, uint32_t delay) {
	lv_style_prop_t *list = calloc(n + 1, sizeof(lv_style_prop_t));
	for (int i = 0; i < n; i++) {
		list[i] = lvgl_go_prop(props[i]);
	}
	lv_style_transition_dsc_t *dsc = calloc(1, sizeof(lv_style_transition_dsc_t));
	lv_style_transition_dsc_init(dsc, list, lv_anim_path_linear, time, delay, NULL);
	lv_style_set_transition(s, dsc);
}

static void lvgl_go_theme(uint32_t primary, uint32_t secondary, bool dark, int font) {
	lv_disp_t *disp = lv_disp_get_default();
	lv_theme_t *th = lv_theme_default_init(disp, lv_color_hex(primary), lv_color_hex(secondary), dark, lvgl_go_font(font));
	lv_disp_set_theme(disp, th);
}

static void lvgl_go_disp_bg(uint32_t rgb, lv_opa_t opa) {
	lv_disp_t *disp = lv_disp_get_default();
	lv_disp_set_bg_color(disp, lv_color_hex(rgb));
	lv_disp_set_bg_opa(disp, opa);
}

static lv_point_t *lvgl_go_points(const int16_t *xy, int n) {
	lv_point_t *pts = calloc(n, sizeof(lv_point_t));
	for (int i = 0; i < n; i++) {
		pts[i].x = xy[2 * i];
		pts[i].y = xy[2 * i + 1];
	}
	return pts;
}
*/
import "C"

import (
	"sync"
	"unsafe"
)

type cgoLibrary struct {
	once sync.Once
	mu   sync.Mutex
	sink EventSink
}

var linked = &cgoLibrary{}

var _ Library = (*cgoLibrary)(nil)

// Linked returns the cgo library backed by liblvgl. There is exactly one
// per process.
func Linked() Library { return linked }

func dispatchNative(token uintptr, code EventCode) {
	linked.mu.Lock()
	sink := linked.sink
	linked.mu.Unlock()
	if sink != nil {
		sink(token, code)
	}
}

func cobj(o Obj) *C.lv_obj_t { return (*C.lv_obj_t)(unsafe.Pointer(o)) }

func cstyle(s Style) *C.lv_style_t { return (*C.lv_style_t)(unsafe.Pointer(s)) }

func cscale(sc MeterScale) *C.lv_meter_scale_t {
	return (*C.lv_meter_scale_t)(unsafe.Pointer(sc))
}

func cind(ind MeterIndicator) *C.lv_meter_indicator_t {
	return (*C.lv_meter_indicator_t)(unsafe.Pointer(ind))
}

func ccolor(c Color) C.lv_color_t { return C.lvgl_go_color(C.uint32_t(c)) }

func (l *cgoLibrary) Backend() string { return backendName }

func (l *cgoLibrary) Init() {
	l.once.Do(func() {
		C.lv_init()
		driverInit()
	})
}

func (l *cgoLibrary) RegisterDisplay(width, height int16, bufferPixels uint32) error {
	return driverRegisterDisplay(width, height, bufferPixels)
}

func (l *cgoLibrary) RegisterPointer(device string) error {
	return driverRegisterPointer(device)
}

func (l *cgoLibrary) SetTheme(primary, secondary Color, dark bool, font Font) {
	C.lvgl_go_theme(C.uint32_t(primary), C.uint32_t(secondary), C.bool(dark), C.int(font))
}

func (l *cgoLibrary) SetDisplayBackground(c Color, opa Opa) {
	C.lvgl_go_disp_bg(C.uint32_t(c), C.lv_opa_t(opa))
}

func (l *cgoLibrary) ScreenActive() Obj { return Obj(unsafe.Pointer(C.lv_scr_act())) }

func (l *cgoLibrary) TickInc(ms uint32) { C.lv_tick_inc(C.uint32_t(ms)) }

func (l *cgoLibrary) TimerHandler() uint32 { return uint32(C.lv_timer_handler()) }

func (l *cgoLibrary) SetEventSink(sink EventSink) {
	l.mu.Lock()
	l.sink = sink
	l.mu.Unlock()
}

func (l *cgoLibrary) Create(kind Kind, parent Obj) Obj {
	return Obj(unsafe.Pointer(C.lvgl_go_create(C.int(kind), cobj(parent))))
}

func (l *cgoLibrary) CreateQrcode(parent Obj, size int16, dark, light Color) Obj {
	return Obj(unsafe.Pointer(C.lv_qrcode_create(cobj(parent), C.lv_coord_t(size), ccolor(dark), ccolor(light))))
}

func (l *cgoLibrary) Align(o Obj, align Align, x, y int16) {
	C.lv_obj_align(cobj(o), C.lv_align_t(align), C.lv_coord_t(x), C.lv_coord_t(y))
}

func (l *cgoLibrary) AlignTo(o, base Obj, align Align, x, y int16) {
	C.lv_obj_align_to(cobj(o), cobj(base), C.lv_align_t(align), C.lv_coord_t(x), C.lv_coord_t(y))
}

func (l *cgoLibrary) SetAlign(o Obj, align Align) { C.lv_obj_set_align(cobj(o), C.lv_align_t(align)) }

func (l *cgoLibrary) SetPos(o Obj, x, y int16) {
	C.lv_obj_set_pos(cobj(o), C.lv_coord_t(x), C.lv_coord_t(y))
}

func (l *cgoLibrary) SetWidth(o Obj, w int16) { C.lv_obj_set_width(cobj(o), C.lv_coord_t(w)) }

func (l *cgoLibrary) SetHeight(o Obj, h int16) { C.lv_obj_set_height(cobj(o), C.lv_coord_t(h)) }

func (l *cgoLibrary) AddState(o Obj, s State) { C.lv_obj_add_state(cobj(o), C.lv_state_t(s)) }

func (l *cgoLibrary) ClearState(o Obj, s State) { C.lv_obj_clear_state(cobj(o), C.lv_state_t(s)) }

func (l *cgoLibrary) State(o Obj) State { return State(C.lv_obj_get_state(cobj(o))) }

func (l *cgoLibrary) AddFlag(o Obj, f Flag) { C.lv_obj_add_flag(cobj(o), C.lv_obj_flag_t(f)) }

func (l *cgoLibrary) ClearFlag(o Obj, f Flag) { C.lv_obj_clear_flag(cobj(o), C.lv_obj_flag_t(f)) }

func (l *cgoLibrary) AddStyle(o Obj, s Style, sel Selector) {
	C.lv_obj_add_style(cobj(o), cstyle(s), C.lv_style_selector_t(sel))
}

func (l *cgoLibrary) RemoveStyle(o Obj, s Style, sel Selector) {
	C.lv_obj_remove_style(cobj(o), cstyle(s), C.lv_style_selector_t(sel))
}

func (l *cgoLibrary) SetLocalNum(o Obj, p StyleProp, v int32, sel Selector) {
	C.lvgl_go_local_num(cobj(o), C.int(p), C.int32_t(v), C.uint32_t(sel))
}

func (l *cgoLibrary) SetLocalColor(o Obj, p StyleProp, c Color, sel Selector) {
	C.lvgl_go_local_color(cobj(o), C.int(p), C.uint32_t(c), C.uint32_t(sel))
}

func (l *cgoLibrary) AddEventCallback(o Obj, token uintptr) {
	C.lvgl_go_add_event(cobj(o), C.uintptr_t(token))
}

func (l *cgoLibrary) NewStyle() Style { return Style(unsafe.Pointer(C.lvgl_go_style_new())) }

func (l *cgoLibrary) StyleSetNum(s Style, p StyleProp, v int32) {
	C.lvgl_go_style_num(cstyle(s), C.int(p), C.int32_t(v))
}

func (l *cgoLibrary) StyleSetColor(s Style, p StyleProp, c Color) {
	C.lvgl_go_style_color(cstyle(s), C.int(p), C.uint32_t(c))
}

func (l *cgoLibrary) StyleSetFont(s Style, f Font) { C.lvgl_go_style_font(cstyle(s), C.int(f)) }

func (l *cgoLibrary) StyleSetTransition(s Style, props []StyleProp, timeMs, delayMs uint32) {
	ids := make([]C.int, len(props)+1)
	for i, p := range props {
		ids[i] = C.int(p)
	}
	C.lvgl_go_style_transition(cstyle(s), &ids[0], C.int(len(props)), C.uint32_t(timeMs), C.uint32_t(delayMs))
}

func (l *cgoLibrary) LabelSetText(o Obj, text string) {
	cs := C.CString(text)
	defer C.free(unsafe.Pointer(cs))
	C.lv_label_set_text(cobj(o), cs)
}

func (l *cgoLibrary) LabelText(o Obj) string { return C.GoString(C.lv_label_get_text(cobj(o))) }

func (l *cgoLibrary) LabelSetLongMode(o Obj, mode LongMode) {
	C.lv_label_set_long_mode(cobj(o), C.lv_label_long_mode_t(mode))
}

func (l *cgoLibrary) LabelSetRecolor(o Obj, on bool) { C.lv_label_set_recolor(cobj(o), C.bool(on)) }

// ImgSetSrc relies on lv_img_set_src copying file and symbol sources.
func (l *cgoLibrary) ImgSetSrc(o Obj, src string) {
	cs := C.CString(src)
	defer C.free(unsafe.Pointer(cs))
	C.lv_img_set_src(cobj(o), unsafe.Pointer(cs))
}

func (l *cgoLibrary) ImgSetAngle(o Obj, angle int16) { C.lv_img_set_angle(cobj(o), C.int16_t(angle)) }

func (l *cgoLibrary) ImgSetZoom(o Obj, zoom uint16) { C.lv_img_set_zoom(cobj(o), C.uint16_t(zoom)) }

func (l *cgoLibrary) TextareaSetText(o Obj, text string) {
	cs := C.CString(text)
	defer C.free(unsafe.Pointer(cs))
	C.lv_textarea_set_text(cobj(o), cs)
}

func (l *cgoLibrary) TextareaAddText(o Obj, text string) {
	cs := C.CString(text)
	defer C.free(unsafe.Pointer(cs))
	C.lv_textarea_add_text(cobj(o), cs)
}

func (l *cgoLibrary) TextareaText(o Obj) string {
	return C.GoString(C.lv_textarea_get_text(cobj(o)))
}

func (l *cgoLibrary) TextareaSetOneLine(o Obj, on bool) {
	C.lv_textarea_set_one_line(cobj(o), C.bool(on))
}

func (l *cgoLibrary) LedOn(o Obj) { C.lv_led_on(cobj(o)) }

func (l *cgoLibrary) LedOff(o Obj) { C.lv_led_off(cobj(o)) }

func (l *cgoLibrary) LedSetColor(o Obj, c Color) { C.lv_led_set_color(cobj(o), ccolor(c)) }

func (l *cgoLibrary) LedSetBrightness(o Obj, bright uint8) {
	C.lv_led_set_brightness(cobj(o), C.uint8_t(bright))
}

func (l *cgoLibrary) LedBrightness(o Obj) uint8 { return uint8(C.lv_led_get_brightness(cobj(o))) }

func (l *cgoLibrary) LineSetPoints(o Obj, points []Point) {
	if len(points) == 0 {
		return
	}
	xy := make([]C.int16_t, 0, 2*len(points))
	for _, p := range points {
		xy = append(xy, C.int16_t(p.X), C.int16_t(p.Y))
	}
	pts := C.lvgl_go_points(&xy[0], C.int(len(points)))
	C.lv_line_set_points(cobj(o), pts, C.uint16_t(len(points)))
}

func (l *cgoLibrary) ArcSetBgAngles(o Obj, start, end uint16) {
	C.lv_arc_set_bg_angles(cobj(o), C.uint16_t(start), C.uint16_t(end))
}

func (l *cgoLibrary) ArcSetRotation(o Obj, rotation uint16) {
	C.lv_arc_set_rotation(cobj(o), C.uint16_t(rotation))
}

func (l *cgoLibrary) ArcSetRange(o Obj, min, max int16) {
	C.lv_arc_set_range(cobj(o), C.int16_t(min), C.int16_t(max))
}

func (l *cgoLibrary) ArcSetValue(o Obj, v int16) { C.lv_arc_set_value(cobj(o), C.int16_t(v)) }

func (l *cgoLibrary) ArcValue(o Obj) int16 { return int16(C.lv_arc_get_value(cobj(o))) }

func (l *cgoLibrary) BarSetRange(o Obj, min, max int32) {
	C.lv_bar_set_range(cobj(o), C.int32_t(min), C.int32_t(max))
}

func (l *cgoLibrary) BarSetValue(o Obj, v int32, animate bool) {
	anim := C.lv_anim_enable_t(C.LV_ANIM_OFF)
	if animate {
		anim = C.LV_ANIM_ON
	}
	C.lv_bar_set_value(cobj(o), C.int32_t(v), anim)
}

func (l *cgoLibrary) BarValue(o Obj) int32 { return int32(C.lv_bar_get_value(cobj(o))) }

func (l *cgoLibrary) MeterAddScale(o Obj) MeterScale {
	return MeterScale(unsafe.Pointer(C.lv_meter_add_scale(cobj(o))))
}

func (l *cgoLibrary) MeterSetScaleTicks(o Obj, sc MeterScale, count, width, length uint16, c Color) {
	C.lv_meter_set_scale_ticks(cobj(o), cscale(sc), C.uint16_t(count), C.uint16_t(width), C.uint16_t(length), ccolor(c))
}

func (l *cgoLibrary) MeterSetScaleMajorTicks(o Obj, sc MeterScale, nth, width, length uint16, c Color, labelGap int16) {
	C.lv_meter_set_scale_major_ticks(cobj(o), cscale(sc), C.uint16_t(nth), C.uint16_t(width), C.uint16_t(length), ccolor(c), C.int16_t(labelGap))
}

func (l *cgoLibrary) MeterAddNeedleLine(o Obj, sc MeterScale, width uint16, c Color, rMod int16) MeterIndicator {
	return MeterIndicator(unsafe.Pointer(C.lv_meter_add_needle_line(cobj(o), cscale(sc), C.uint16_t(width), ccolor(c), C.int16_t(rMod))))
}

func (l *cgoLibrary) MeterAddArc(o Obj, sc MeterScale, width uint16, c Color, rMod int16) MeterIndicator {
	return MeterIndicator(unsafe.Pointer(C.lv_meter_add_arc(cobj(o), cscale(sc), C.uint16_t(width), ccolor(c), C.int16_t(rMod))))
}

func (l *cgoLibrary) MeterAddScaleLines(o Obj, sc MeterScale, start, end Color, local bool, widthMod int16) MeterIndicator {
	return MeterIndicator(unsafe.Pointer(C.lv_meter_add_scale_lines(cobj(o), cscale(sc), ccolor(start), ccolor(end), C.bool(local), C.int16_t(widthMod))))
}

func (l *cgoLibrary) MeterSetIndicatorValue(o Obj, ind MeterIndicator, v int32) {
	C.lv_meter_set_indicator_value(cobj(o), cind(ind), C.int32_t(v))
}

func (l *cgoLibrary) MeterSetIndicatorStartValue(o Obj, ind MeterIndicator, v int32) {
	C.lv_meter_set_indicator_start_value(cobj(o), cind(ind), C.int32_t(v))
}

func (l *cgoLibrary) MeterSetIndicatorEndValue(o Obj, ind MeterIndicator, v int32) {
	C.lv_meter_set_indicator_end_value(cobj(o), cind(ind), C.int32_t(v))
}

func (l *cgoLibrary) QrcodeUpdate(o Obj, data []byte) error {
	buf := C.CBytes(data)
	defer C.free(buf)
	if C.lv_qrcode_update(cobj(o), buf, C.uint32_t(len(data))) != C.LV_RES_OK {
		return ErrQrcodeUpdate
	}
	return nil
}

// ImgbtnSetSrc leaks the path strings: lv_imgbtn keeps the pointers.
func (l *cgoLibrary) ImgbtnSetSrc(o Obj, state ImgbtnState, left, mid, right string) {
	C.lv_imgbtn_set_src(cobj(o), C.lv_imgbtn_state_t(state), retainedSrc(left), retainedSrc(mid), retainedSrc(right))
}

func retainedSrc(path string) unsafe.Pointer {
	if path == "" {
		return nil
	}
	return unsafe.Pointer(C.CString(path))
}
