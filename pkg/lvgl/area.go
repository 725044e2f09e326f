package lvgl

import "github.com/go-lvgl/lvgl/pkg/native"

// Area is a plain container for grouping widgets.
type Area struct {
	common[*Area]
}

func NewArea(parent Widget, uid string, x, y int16) *Area {
	d, o := newObj(parent, native.KindObj, x, y)
	w := &Area{}
	return w.init(w, d, KindArea, uid, o)
}

// RootUID is the uid of the active screen pseudo-widget.
const RootUID = "Root"

// Root stands for the active screen. It is the parent of top-level widgets.
type Root struct {
	common[*Root]
}

func newRoot(d *Display) *Root {
	w := &Root{}
	return w.init(w, d, KindRoot, RootUID, d.lib.ScreenActive())
}
