package demo

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-lvgl/lvgl/pkg/lvgl"
	"github.com/go-lvgl/lvgl/pkg/lvgltest"
)

func TestEverySceneDraws(t *testing.T) {
	for _, sc := range Scenes() {
		t.Run(sc.Name, func(t *testing.T) {
			tt := lvgltest.New(t)
			s := New(tt.Display, t.TempDir())
			require.NoError(t, s.Draw(sc.Name))
			tt.PumpFrames(2)

			assert.Greater(t, len(tt.Display.Widgets()), 1, "scene adds widgets")
			for _, w := range tt.Display.Widgets() {
				assert.NotZero(t, w.Handle(), w.UID())
			}
		})
	}
}

func TestUnknownScene(t *testing.T) {
	tt := lvgltest.New(t)
	assert.Error(t, New(tt.Display, "").Draw("nope"))
	_, ok := Lookup("nope")
	assert.False(t, ok)
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Len(t, names, 15)
	assert.Equal(t, "arc", names[0])
	assert.Contains(t, names, "panel")
}

func TestPanel(t *testing.T) {
	tt := lvgltest.New(t)
	dir := t.TempDir()
	writeTux(t, dir)

	s := New(tt.Display, dir)
	require.NoError(t, s.Draw("panel"))

	theme := tt.Lib.Theme()
	require.NotNil(t, theme)
	assert.Equal(t, lvgl.PaletteLightBlue.Color(), theme.Primary)
	assert.Equal(t, lvgl.PaletteBlueGrey.Color(), theme.Secondary)

	for _, uid := range []string{"Icon-Area", "Led-Red", "Local-Time", "Switch-1", "Line", "Button-A", "Arc", "Bar-2", "Meter", "Label-1", "tux-evse", "qr-code", "Text-Area"} {
		_, ok := tt.Display.Find(uid)
		assert.True(t, ok, uid)
	}
	assert.NotContains(t, tt.Logs(), "image not decodable")

	w, _ := tt.Display.Find("tux-evse")
	assert.Equal(t, "L:"+filepath.Join(dir, TuxImage), tt.Object(w).Src)
}

func TestSceneHandlersLog(t *testing.T) {
	tt := lvgltest.New(t)
	s := New(tt.Display, "")
	require.NoError(t, s.Draw("button"))
	require.NoError(t, s.Draw("switch"))

	btn, ok := tt.Display.Find("Button-A")
	require.True(t, ok)
	tt.Click(btn)
	assert.Contains(t, tt.Logs(), "app_data=Draw-Button-1")

	sw, ok := tt.Display.Find("Switch-1")
	require.True(t, ok)
	tt.Click(sw)
	assert.Contains(t, tt.Logs(), "widget=Switch-1")
	assert.Contains(t, tt.Logs(), "checked=true")

	locked, ok := tt.Display.Find("Switch-2")
	require.True(t, ok)
	tt.Click(locked)
	assert.NotContains(t, tt.Logs(), "widget=Switch-2")
}

func TestSweep(t *testing.T) {
	var got []int32
	sw := NewSweep(0, 100, 2*time.Second, 1, func(v int32) { got = append(got, v) })

	assert.True(t, sw.Tick(500*time.Millisecond))
	assert.True(t, sw.Tick(500*time.Millisecond))
	assert.False(t, sw.Tick(time.Second))
	require.Len(t, got, 3)
	assert.Equal(t, int32(50), got[0])
	assert.Equal(t, int32(100), got[1])
	assert.Equal(t, int32(0), got[2])
}

func TestSweepBelowZero(t *testing.T) {
	var got []int32
	sw := NewSweep(-100, 0, 2*time.Second, 1, func(v int32) { got = append(got, v) })

	sw.Tick(500 * time.Millisecond)
	sw.Tick(500 * time.Millisecond)
	sw.Tick(time.Second)
	assert.Equal(t, []int32{-50, 0, -100}, got)
}

func TestAnimatedPanel(t *testing.T) {
	tt := lvgltest.New(t)
	s := New(tt.Display, "")
	require.NoError(t, s.Draw("panel"))
	s.animate(1)

	w, ok := tt.Display.Find("Bar-1")
	require.True(t, ok)
	bar := w.(*lvgl.Bar)

	tt.Pump(sweepPeriod * 3 / 4)
	assert.Equal(t, int32(90), bar.Value(), "bar at its peak halfway through its period")

	for range 4 {
		tt.Pump(sweepPeriod)
	}
	assert.Equal(t, int32(10), bar.Value())
}

func writeTux(t *testing.T, dir string) {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, TuxImage))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewGray(image.Rect(0, 0, 4, 4))))
	require.NoError(t, f.Close())
}
