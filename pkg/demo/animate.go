package demo

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/go-lvgl/lvgl/pkg/logx"
	"github.com/go-lvgl/lvgl/pkg/lvgl"
)

// sweepPeriod is one full low-high-low cycle of an animated gauge.
const sweepPeriod = 4 * time.Second

// Sweep moves a value from lo to hi and back with an ease-in-out curve.
type Sweep struct {
	seq   *gween.Sequence
	apply func(v int32)
}

// NewSweep returns a sweep calling apply with each new value. cycles <= 0
// repeats forever.
func NewSweep(lo, hi int32, period time.Duration, cycles int, apply func(v int32)) *Sweep {
	half := float32(period.Seconds() / 2)
	seq := gween.NewSequence(
		gween.New(float32(lo), float32(hi), half, ease.InOutQuad),
		gween.New(float32(hi), float32(lo), half, ease.InOutQuad),
	)
	if cycles <= 0 {
		cycles = -1
	}
	seq.SetLoop(cycles)
	return &Sweep{seq: seq, apply: apply}
}

// Tick advances the sweep by dt. It has the signature of a display ticker
// and returns false once the last cycle completes.
func (s *Sweep) Tick(dt time.Duration) bool {
	v, _, done := s.seq.Update(float32(dt.Seconds()))
	s.apply(int32(math.Round(float64(v))))
	return !done
}

// animate registers sweeps for the panel gauges. cycles <= 0 runs them
// until the process exits.
func (s *Showcase) animate(cycles int) {
	d := s.Display
	var n int
	if w, ok := d.Find("Meter"); ok {
		m := w.(*lvgl.Meter)
		d.AddTicker(NewSweep(0, 100, sweepPeriod, cycles, func(v int32) { m.SetValue(v) }).Tick)
		n++
	}
	if w, ok := d.Find("Bar-1"); ok {
		b := w.(*lvgl.Bar)
		d.AddTicker(NewSweep(10, 90, sweepPeriod*3/2, cycles, func(v int32) { b.SetValue(v) }).Tick)
		n++
	}
	if w, ok := d.Find("Arc"); ok {
		a := w.(*lvgl.Arc)
		d.AddTicker(NewSweep(0, 100, sweepPeriod/2, cycles, func(v int32) { a.SetValue(v) }).Tick)
		n++
	}
	logx.Debug("gauges animated", s, "tickers", n)
}
