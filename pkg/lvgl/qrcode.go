package lvgl

import (
	"github.com/go-lvgl/lvgl/pkg/errors"
	"github.com/go-lvgl/lvgl/pkg/native"
)

// Qrcode renders data as a QR code.
type Qrcode struct {
	common[*Qrcode]
	data []byte
}

// NewQrcode creates a size by size pixel QR code drawn with dark on light.
func NewQrcode(parent Widget, uid string, dark, light Color, size int16, x, y int16) *Qrcode {
	d := parent.display()
	o := d.lib.CreateQrcode(parent.Handle(), size, dark, light)
	d.lib.Align(o, native.AlignTopLeft, x, y)

	w := &Qrcode{}
	return w.init(w, d, KindQrcode, uid, o)
}

// Update encodes data, returning the native error if the payload does not
// fit a QR code.
func (w *Qrcode) Update(data []byte) error {
	if err := w.update(data); err != nil {
		return err
	}
	return nil
}

// SetValue encodes data. A rejected payload is reported to the error
// handler and the previous code stays on screen.
func (w *Qrcode) SetValue(data []byte) *Qrcode {
	if err := w.update(data); err != nil {
		errors.Report(err)
	}
	return w
}

func (w *Qrcode) update(data []byte) *errors.LvglError {
	if err := w.lib().QrcodeUpdate(w.obj, data); err != nil {
		return &errors.LvglError{Op: "lvgl.Qrcode.Update", Kind: errors.KindNative, Widget: w.uid, Err: err}
	}
	w.data = append(w.data[:0], data...)
	return nil
}

// SetText encodes a string.
func (w *Qrcode) SetText(text string) *Qrcode {
	return w.SetValue([]byte(text))
}

// Value returns the last payload accepted.
func (w *Qrcode) Value() []byte { return append([]byte(nil), w.data...) }
