// Package fbinfo reads the geometry of a Linux framebuffer device.
package fbinfo

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned on systems without a framebuffer ioctl.
var ErrUnsupported = errors.New("fbinfo: framebuffer probing not supported on this system")

// Info is the visible geometry of a framebuffer.
type Info struct {
	Width        int
	Height       int
	BitsPerPixel int
}

func (i Info) String() string {
	return fmt.Sprintf("%dx%d@%dbpp", i.Width, i.Height, i.BitsPerPixel)
}

// varScreenInfo mirrors struct fb_var_screeninfo.
type varScreenInfo struct {
	Xres, Yres                 uint32
	XresVirtual, YresVirtual   uint32
	Xoffset, Yoffset           uint32
	BitsPerPixel               uint32
	Grayscale                  uint32
	Red, Green, Blue, Transp   [3]uint32
	Nonstd                     uint32
	Activate                   uint32
	Height, Width              uint32
	AccelFlags                 uint32
	Pixclock                   uint32
	LeftMargin, RightMargin    uint32
	UpperMargin, LowerMargin   uint32
	HsyncLen, VsyncLen         uint32
	Sync                       uint32
	Vmode                      uint32
	Rotate                     uint32
	Colorspace                 uint32
	Reserved                   [4]uint32
}

func (v *varScreenInfo) info() (Info, error) {
	if v.Xres == 0 || v.Yres == 0 {
		return Info{}, fmt.Errorf("fbinfo: device reports empty resolution %dx%d", v.Xres, v.Yres)
	}
	return Info{Width: int(v.Xres), Height: int(v.Yres), BitsPerPixel: int(v.BitsPerPixel)}, nil
}
