package lvgltest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-lvgl/lvgl/pkg/lvgl"
)

func TestFakeClock(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()
	clk.Advance(100 * time.Millisecond)
	assert.Equal(t, 100*time.Millisecond, clk.Now().Sub(start))

	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	clk.Set(target)
	assert.True(t, clk.Now().Equal(target))
}

func TestTesterPump(t *testing.T) {
	tt := New(t)
	tt.Pump(40 * time.Millisecond)
	tt.PumpFrames(2)

	ms, calls := tt.Lib.Ticks()
	assert.Equal(t, uint64(72), ms)
	assert.Equal(t, uint64(3), calls)
}

func TestTesterRecorder(t *testing.T) {
	tt := New(t)
	btn := lvgl.NewButton(tt.Root(), "btn", lvgl.FontStd14, 0, 0)
	rec := &Recorder{}
	btn.SetCallback(rec)

	tt.Click(btn)
	require.Len(t, rec.Events, 1)
	assert.Equal(t, Recorded{UID: "btn", Event: lvgl.EventPressed}, rec.Events[0])
	assert.Equal(t, []lvgl.Event{lvgl.EventPressed}, rec.Kinds())

	st := tt.Object(btn)
	assert.Len(t, st.Callbacks, 1)
	assert.Contains(t, tt.Logs(), "widget created")
}
