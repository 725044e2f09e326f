package fbinfo

import (
	"path/filepath"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarScreenInfoLayout(t *testing.T) {
	// struct fb_var_screeninfo is 40 32-bit words.
	assert.Equal(t, uintptr(160), unsafe.Sizeof(varScreenInfo{}))
}

func TestInfoFromVar(t *testing.T) {
	v := varScreenInfo{Xres: 800, Yres: 480, BitsPerPixel: 32}
	info, err := v.info()
	require.NoError(t, err)
	assert.Equal(t, Info{Width: 800, Height: 480, BitsPerPixel: 32}, info)
	assert.Equal(t, "800x480@32bpp", info.String())

	_, err = (&varScreenInfo{Xres: 800}).info()
	assert.Error(t, err)
}

func TestProbeMissingDevice(t *testing.T) {
	_, err := Probe(filepath.Join(t.TempDir(), "fb9"))
	assert.Error(t, err)
}
