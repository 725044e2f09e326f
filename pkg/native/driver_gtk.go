//go:build lvgl && cgo && gtk

package native

/*
#cgo pkg-config: gtk+-3.0

#include <stdint.h>
#include <stdlib.h>
#include "lvgl.h"
#include "gtkdrv/gtkdrv.h"

static lv_disp_drv_t *lvgl_go_gtk_register(lv_coord_t w, lv_coord_t h, uint32_t px) {
	lv_color_t *buf = calloc(px, sizeof(lv_color_t));
	if (buf == NULL) {
		return NULL;
	}
	lv_disp_draw_buf_t *draw = calloc(1, sizeof(lv_disp_draw_buf_t));
	lv_disp_draw_buf_init(draw, buf, NULL, px);

	lv_disp_drv_t *drv = calloc(1, sizeof(lv_disp_drv_t));
	lv_disp_drv_init(drv);
	drv->draw_buf = draw;
	drv->flush_cb = gtkdrv_flush_cb;
	drv->hor_res = w;
	drv->ver_res = h;
	lv_disp_drv_register(drv);
	return drv;
}

static void lvgl_go_gtk_pointer(void) {
	lv_indev_drv_t *drv = calloc(1, sizeof(lv_indev_drv_t));
	lv_indev_drv_init(drv);
	drv->type = LV_INDEV_TYPE_POINTER;
	drv->read_cb = gtkdrv_mouse_read_cb;
	lv_indev_drv_register(drv);
}
*/
import "C"

import "errors"

const backendName = BackendGTK

func driverInit() {
	C.gtkdrv_init()
}

func driverRegisterDisplay(width, height int16, bufferPixels uint32) error {
	if C.lvgl_go_gtk_register(C.lv_coord_t(width), C.lv_coord_t(height), C.uint32_t(bufferPixels)) == nil {
		return errors.New("native: cannot allocate draw buffer")
	}
	return nil
}

// driverRegisterPointer ignores device; the simulator reads the GTK window.
func driverRegisterPointer(string) error {
	C.lvgl_go_gtk_pointer()
	return nil
}
