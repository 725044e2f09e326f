package lvgl

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/go-lvgl/lvgl/pkg/logx"
	"github.com/go-lvgl/lvgl/pkg/native"
)

// driveLetter is the LVGL file system drive the images are read from.
const driveLetter = "L:"

// ImagePath returns path as an LVGL file source.
func ImagePath(path string) string { return driveLetter + path }

// ImageInfo is the header of an image file.
type ImageInfo struct {
	Format string
	Width  int
	Height int
}

// ProbeImage decodes the header of the image at path. LVGL fails silently
// on a missing or unreadable source, so NewImage probes first and warns.
func ProbeImage(path string) (ImageInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImageInfo{}, err
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return ImageInfo{}, fmt.Errorf("lvgl: probe %s: %w", path, err)
	}
	return ImageInfo{Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}

// Pixmap shows a built-in symbol.
type Pixmap struct {
	common[*Pixmap]
}

// NewPixmap creates a symbol image at x, y inside parent.
func NewPixmap(parent Widget, uid string, icon Icon, x, y int16) *Pixmap {
	d := parent.display()
	o := d.lib.Create(native.KindImage, parent.Handle())
	d.lib.ImgSetSrc(o, d.text(icon.src(), placeholderPath, uid))
	d.lib.Align(o, native.AlignTopLeft, x, y)

	w := &Pixmap{}
	return w.init(w, d, KindPixmap, uid, o)
}

// SetValue replaces the symbol.
func (w *Pixmap) SetValue(icon Icon) *Pixmap {
	w.lib().ImgSetSrc(w.obj, w.d.text(icon.src(), placeholderPath, w.uid))
	return w
}

// SetAngle rotates the symbol, in tenths of a degree.
func (w *Pixmap) SetAngle(angle int16) *Pixmap {
	w.lib().ImgSetAngle(w.obj, angle)
	return w
}

// SetZoom scales the symbol; 256 is 100%.
func (w *Pixmap) SetZoom(zoom uint16) *Pixmap {
	w.lib().ImgSetZoom(w.obj, zoom)
	return w
}

// Image shows an image file.
type Image struct {
	common[*Image]
	path string
}

// NewImage creates an image at x, y inside parent showing the file at
// path. A path that cannot be probed is logged and still handed to LVGL.
func NewImage(parent Widget, uid, path string, x, y int16) *Image {
	d := parent.display()
	o := d.lib.Create(native.KindImage, parent.Handle())
	w := &Image{}
	w.init(w, d, KindImage, uid, o)
	w.SetValue(path)
	d.lib.Align(o, native.AlignTopLeft, x, y)
	return w
}

// SetValue replaces the image file.
func (w *Image) SetValue(path string) *Image {
	if _, err := ProbeImage(path); err != nil {
		logx.Warn("image not decodable", w.d, "uid", w.uid, "path", path, "err", err)
	}
	w.path = path
	w.lib().ImgSetSrc(w.obj, w.d.text(ImagePath(path), placeholderPath, w.uid))
	return w
}

// Path returns the file path last set.
func (w *Image) Path() string { return w.path }

// SetAngle rotates the image, in tenths of a degree.
func (w *Image) SetAngle(angle int16) *Image {
	w.lib().ImgSetAngle(w.obj, angle)
	return w
}

// SetZoom scales the image; 256 is 100%.
func (w *Image) SetZoom(zoom uint16) *Image {
	w.lib().ImgSetZoom(w.obj, zoom)
	return w
}
