package lvgl_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-lvgl/lvgl/pkg/lvgl"
	"github.com/go-lvgl/lvgl/pkg/lvgltest"
)

func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	path := filepath.Join(t.TempDir(), "tux.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestProbeImage(t *testing.T) {
	path := writePNG(t, 32, 16)
	info, err := lvgl.ProbeImage(path)
	require.NoError(t, err)
	assert.Equal(t, lvgl.ImageInfo{Format: "png", Width: 32, Height: 16}, info)

	_, err = lvgl.ProbeImage(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)

	junk := filepath.Join(t.TempDir(), "junk.png")
	require.NoError(t, os.WriteFile(junk, []byte("not an image"), 0o644))
	_, err = lvgl.ProbeImage(junk)
	assert.Error(t, err)
}

func TestImageSource(t *testing.T) {
	tt := lvgltest.New(t)
	path := writePNG(t, 8, 8)
	img := lvgl.NewImage(tt.Root(), "tux", path, 765, 100).SetAngle(100).SetZoom(128)

	st := tt.Object(img)
	assert.Equal(t, "L:"+path, st.Src)
	assert.Equal(t, int16(765), st.X)
	assert.Equal(t, int16(128), int16(st.Zoom))
	assert.Equal(t, path, img.Path())
	assert.NotContains(t, tt.Logs(), "image not decodable")

	img.SetValue("/nope.png")
	assert.Contains(t, tt.Logs(), "image not decodable")
	assert.Equal(t, "L:/nope.png", tt.Object(img).Src)
}
