// Package lvgltest runs displays on the headless native library.
//
// A Tester owns a fresh [native.Headless] tree, a fake clock and a private
// prometheus registry, so tests never share the process-wide display of
// the default library:
//
//	func TestToggle(t *testing.T) {
//	    tt := lvgltest.New(t)
//	    sw := lvgl.NewSwitch(tt.Root(), "sw", 10, 10)
//	    tt.Click(sw)
//	    tt.Pump(16 * time.Millisecond)
//	}
package lvgltest

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/go-lvgl/lvgl/pkg/lvgl"
	"github.com/go-lvgl/lvgl/pkg/native"
)

// Tester drives one headless display.
type Tester struct {
	T        testing.TB
	Display  *lvgl.Display
	Lib      *native.Headless
	Clock    *FakeClock
	Registry *prometheus.Registry

	logs *bytes.Buffer
}

// New initializes a 1024x600 headless display with debug logging captured
// in memory.
func New(t testing.TB) *Tester {
	t.Helper()
	return NewWithConfig(t, lvgl.Config{Width: lvgl.DefaultWidth, Height: lvgl.DefaultHeight})
}

// NewWithConfig is New with an explicit display config.
func NewWithConfig(t testing.TB, cfg lvgl.Config) *Tester {
	t.Helper()
	tt := &Tester{
		T:        t,
		Lib:      native.NewHeadless(),
		Clock:    NewFakeClock(),
		Registry: prometheus.NewRegistry(),
		logs:     &bytes.Buffer{},
	}
	logger := slog.New(slog.NewTextHandler(tt.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	d, err := lvgl.Init(cfg,
		lvgl.WithLibrary(tt.Lib),
		lvgl.WithClock(tt.Clock),
		lvgl.WithLogger(logger),
		lvgl.WithRegisterer(tt.Registry),
	)
	if err != nil {
		t.Fatalf("lvgl.Init: %v", err)
	}
	tt.Display = d
	return tt
}

// Root returns the active screen pseudo-widget.
func (tt *Tester) Root() *lvgl.Root { return tt.Display.Root() }

// Logs returns everything the display logged so far.
func (tt *Tester) Logs() string { return tt.logs.String() }

// Pump advances the clock by dt and runs one loop iteration.
func (tt *Tester) Pump(dt time.Duration) time.Duration {
	tt.Clock.Advance(dt)
	return tt.Display.Step()
}

// PumpFrames runs n iterations of one frame each.
func (tt *Tester) PumpFrames(n int) {
	for range n {
		tt.Pump(16 * time.Millisecond)
	}
}

// Object returns the headless state of w.
func (tt *Tester) Object(w lvgl.Widget) native.ObjectState {
	tt.T.Helper()
	st, ok := tt.Lib.Object(w.Handle())
	if !ok {
		tt.T.Fatalf("no native object for widget %q", w.UID())
	}
	return st
}

// Emit delivers ev to w as the native library would.
func (tt *Tester) Emit(w lvgl.Widget, ev lvgl.Event) {
	tt.Lib.Emit(w.Handle(), ev.Code())
}

// EmitCode delivers a raw native event code to w.
func (tt *Tester) EmitCode(w lvgl.Widget, code native.EventCode) {
	tt.Lib.Emit(w.Handle(), code)
}

// Click simulates a pointer click on w.
func (tt *Tester) Click(w lvgl.Widget) {
	tt.Lib.Click(w.Handle())
}

// Recorder collects forwarded events.
type Recorder struct {
	Events []Recorded
}

// Recorded is one forwarded event.
type Recorded struct {
	UID   string
	Event lvgl.Event
}

func (r *Recorder) HandleEvent(_ lvgl.Widget, uid string, ev lvgl.Event) {
	r.Events = append(r.Events, Recorded{UID: uid, Event: ev})
}

// Kinds returns the recorded event kinds in order.
func (r *Recorder) Kinds() []lvgl.Event {
	out := make([]lvgl.Event, len(r.Events))
	for i, e := range r.Events {
		out[i] = e.Event
	}
	return out
}
