package lvgl_test

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lverrors "github.com/go-lvgl/lvgl/pkg/errors"
	"github.com/go-lvgl/lvgl/pkg/lvgl"
	"github.com/go-lvgl/lvgl/pkg/lvgltest"
)

func TestStepAdvancesTicks(t *testing.T) {
	tt := lvgltest.New(t)
	tt.Lib.NextTimer = 30

	sleep := tt.Pump(10*time.Millisecond + 500*time.Microsecond)
	assert.Equal(t, 30*time.Millisecond, sleep)
	ms, calls := tt.Lib.Ticks()
	assert.Equal(t, uint64(10), ms)
	assert.Equal(t, uint64(1), calls)

	// The sub-millisecond remainder carries into the next step.
	tt.Pump(500 * time.Microsecond)
	ms, _ = tt.Lib.Ticks()
	assert.Equal(t, uint64(11), ms)
}

func TestStepSleepCapped(t *testing.T) {
	tt := lvgltest.New(t)
	tt.Lib.NextTimer = 1000
	assert.Equal(t, lvgl.DefaultMaxSleep, tt.Display.Step())

	tt.Display.AddTicker(func(time.Duration) bool { return true })
	assert.Equal(t, 16*time.Millisecond, tt.Display.Step())
}

func TestPostRunsOnStep(t *testing.T) {
	tt := lvgltest.New(t)
	lbl := lvgl.NewLabel(tt.Root(), "lbl", lvgl.FontStd14, 0, 0)

	done := make(chan struct{})
	go func() {
		defer close(done)
		tt.Display.Post(func() { lbl.SetValue("from goroutine") })
	}()
	<-done
	assert.Empty(t, lbl.Value(), "posted closures wait for the loop")

	tt.Display.Step()
	assert.Equal(t, "from goroutine", lbl.Value())
	assert.False(t, tt.Display.Post(nil))
}

func TestPostDuringStepReturnsZeroSleep(t *testing.T) {
	tt := lvgltest.New(t)
	var order []int
	tt.Display.Post(func() {
		order = append(order, 1)
		tt.Display.Post(func() { order = append(order, 2) })
	})

	assert.Zero(t, tt.Display.Step(), "pending work skips the sleep")
	assert.Equal(t, []int{1}, order)
	tt.Display.Step()
	assert.Equal(t, []int{1, 2}, order)
}

func TestPostPanicRecovered(t *testing.T) {
	lverrors.SetHandler(&silentHandler{})
	defer lverrors.SetHandler(nil)

	tt := lvgltest.New(t)
	ran := false
	tt.Display.Post(func() { panic("posted bug") })
	tt.Display.Post(func() { ran = true })

	assert.NotPanics(t, func() { tt.Display.Step() })
	assert.True(t, ran)
}

func TestTickers(t *testing.T) {
	tt := lvgltest.New(t)
	var dts []time.Duration
	tt.Display.AddTicker(func(dt time.Duration) bool {
		dts = append(dts, dt)
		return len(dts) < 3
	})
	keep := 0
	tt.Display.AddTicker(func(time.Duration) bool {
		keep++
		return true
	})

	for range 5 {
		tt.Pump(20 * time.Millisecond)
	}
	assert.Equal(t, []time.Duration{20 * time.Millisecond, 20 * time.Millisecond, 20 * time.Millisecond}, dts)
	assert.Equal(t, 5, keep)
}

func TestTickersSeeExactElapsed(t *testing.T) {
	tt := lvgltest.New(t)
	var total time.Duration
	tt.Display.AddTicker(func(dt time.Duration) bool {
		total += dt
		return true
	})

	for range 10 {
		tt.Pump(1500 * time.Microsecond)
	}
	assert.Equal(t, 15*time.Millisecond, total)
	ms, _ := tt.Lib.Ticks()
	assert.Equal(t, uint64(15), ms)
}

func TestTickerPanicUnregisters(t *testing.T) {
	lverrors.SetHandler(&silentHandler{})
	defer lverrors.SetHandler(nil)

	tt := lvgltest.New(t)
	calls := 0
	tt.Display.AddTicker(func(time.Duration) bool {
		calls++
		panic("ticker bug")
	})
	tt.PumpFrames(3)
	assert.Equal(t, 1, calls)
}

func TestIterationMetric(t *testing.T) {
	tt := lvgltest.New(t)
	tt.Display.Post(func() {})
	tt.PumpFrames(4)

	expected := `
# HELP lvgl_loop_iterations_total Owner loop iterations, each ending in one timer handler call.
# TYPE lvgl_loop_iterations_total counter
lvgl_loop_iterations_total 4
# HELP lvgl_posted_calls_total Closures run on the owner loop through Post.
# TYPE lvgl_posted_calls_total counter
lvgl_posted_calls_total 1
`
	assert.NoError(t, testutil.GatherAndCompare(tt.Registry, strings.NewReader(expected),
		"lvgl_loop_iterations_total", "lvgl_posted_calls_total"))
}

func TestRun(t *testing.T) {
	tt := lvgltest.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var hits atomic.Int32
	errc := tt.Display.Start(ctx)
	require.Eventually(t, tt.Display.Running, time.Second, time.Millisecond)

	tt.Display.Post(func() { hits.Add(1) })
	require.Eventually(t, func() bool { return hits.Load() == 1 }, time.Second, time.Millisecond)

	assert.ErrorIs(t, tt.Display.Run(ctx), lvgl.ErrLoopRunning)

	cancel()
	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}
	assert.False(t, tt.Display.Running())
}

type silentHandler struct{}

func (silentHandler) HandleError(*lverrors.LvglError) {}
func (silentHandler) HandlePanic(*lverrors.PanicError) {}
