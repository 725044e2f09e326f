package lvgl

import "github.com/go-lvgl/lvgl/pkg/native"

// Switch is an on/off toggle. It starts checked.
type Switch struct {
	common[*Switch]
}

func NewSwitch(parent Widget, uid string, x, y int16) *Switch {
	d, o := newObj(parent, native.KindSwitch, x, y)
	d.lib.AddState(o, native.StateChecked)

	w := &Switch{}
	return w.init(w, d, KindSwitch, uid, o)
}

// SetValue checks or unchecks the switch.
func (w *Switch) SetValue(on bool) *Switch {
	if on {
		w.lib().AddState(w.obj, native.StateChecked)
	} else {
		w.lib().ClearState(w.obj, native.StateChecked)
	}
	return w
}

// Value reports whether the switch is checked.
func (w *Switch) Value() bool {
	return w.States().Has(native.StateChecked)
}

// SetLock disables or enables user input.
func (w *Switch) SetLock(lock bool) *Switch {
	return w.SetDisable(lock)
}
