//go:build linux

package fbinfo

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// fbioGetVScreenInfo is FBIOGET_VSCREENINFO.
const fbioGetVScreenInfo = 0x4600

// Probe opens dev read-only and returns its visible resolution.
func Probe(dev string) (Info, error) {
	f, err := os.Open(dev)
	if err != nil {
		return Info{}, fmt.Errorf("fbinfo: %w", err)
	}
	defer f.Close()

	var v varScreenInfo
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, f.Fd(), fbioGetVScreenInfo, uintptr(unsafe.Pointer(&v))); errno != 0 {
		return Info{}, fmt.Errorf("fbinfo: %s: %w", dev, os.NewSyscallError("ioctl", errno))
	}
	return v.info()
}
