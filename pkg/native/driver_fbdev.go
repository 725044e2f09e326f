//go:build lvgl && cgo && !gtk

package native

/*
#include <stdint.h>
#include <stdlib.h>
#include "lvgl.h"
#include "display/fbdev.h"
#include "indev/evdev.h"

static lv_disp_drv_t *lvgl_go_fbdev_register(lv_coord_t w, lv_coord_t h, uint32_t px) {
	lv_color_t *buf = calloc(px, sizeof(lv_color_t));
	if (buf == NULL) {
		return NULL;
	}
	lv_disp_draw_buf_t *draw = calloc(1, sizeof(lv_disp_draw_buf_t));
	lv_disp_draw_buf_init(draw, buf, NULL, px);

	lv_disp_drv_t *drv = calloc(1, sizeof(lv_disp_drv_t));
	lv_disp_drv_init(drv);
	drv->draw_buf = draw;
	drv->flush_cb = fbdev_flush;
	drv->hor_res = w;
	drv->ver_res = h;
	lv_disp_drv_register(drv);
	return drv;
}

static void lvgl_go_evdev_register(void) {
	lv_indev_drv_t *drv = calloc(1, sizeof(lv_indev_drv_t));
	lv_indev_drv_init(drv);
	drv->type = LV_INDEV_TYPE_POINTER;
	drv->read_cb = evdev_read;
	lv_indev_drv_register(drv);
}
*/
import "C"

import (
	"errors"
	"unsafe"
)

const backendName = BackendFbdev

func driverInit() {
	C.fbdev_init()
	C.evdev_init()
}

func driverRegisterDisplay(width, height int16, bufferPixels uint32) error {
	if C.lvgl_go_fbdev_register(C.lv_coord_t(width), C.lv_coord_t(height), C.uint32_t(bufferPixels)) == nil {
		return errors.New("native: cannot allocate draw buffer")
	}
	return nil
}

func driverRegisterPointer(device string) error {
	if device != "" {
		cs := C.CString(device)
		defer C.free(unsafe.Pointer(cs))
		if !bool(C.evdev_set_file(cs)) {
			return errors.New("native: cannot open input device " + device)
		}
	}
	C.lvgl_go_evdev_register()
	return nil
}
