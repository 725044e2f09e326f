package lvgl

import (
	"context"
	"runtime"
	"slices"
	"time"

	lverrors "github.com/go-lvgl/lvgl/pkg/errors"
	"github.com/go-lvgl/lvgl/pkg/logx"
)

// Post queues fn to run on the loop goroutine before the next timer handler
// call. It is the only way for other goroutines to touch widgets once the
// loop runs. Post never blocks.
func (d *Display) Post(fn func()) bool {
	if fn == nil {
		return false
	}
	d.mu.Lock()
	d.posted = append(d.posted, fn)
	d.mu.Unlock()
	d.notify()
	return true
}

// AddTicker registers fn to run once per loop iteration with the time since
// its previous call. Returning false unregisters it. While any ticker is
// registered the loop wakes at least once per frame.
func (d *Display) AddTicker(fn func(dt time.Duration) bool) {
	if fn == nil {
		return
	}
	d.mu.Lock()
	d.tickers = append(d.tickers, fn)
	d.mu.Unlock()
	d.notify()
}

func (d *Display) notify() {
	select {
	case d.wake <- struct{}{}:
	default:
	}
}

// Step runs one loop iteration and returns how long the loop may sleep
// before the next one. It must be called from the goroutine that owns the
// display.
func (d *Display) Step() time.Duration {
	d.mu.Lock()
	posted := d.posted
	d.posted = nil
	tickers := slices.Clone(d.tickers)
	d.mu.Unlock()

	for _, fn := range posted {
		d.runPosted(fn)
	}

	now := d.clock.Now()
	elapsed := max(now.Sub(d.last), 0)
	ms := elapsed / time.Millisecond
	d.last = d.last.Add(ms * time.Millisecond)

	dt := max(now.Sub(d.lastTick), 0)
	d.lastTick = now
	if len(tickers) > 0 {
		var done []int
		for i, fn := range tickers {
			if !d.runTicker(fn, dt) {
				done = append(done, i)
			}
		}
		if len(done) > 0 {
			d.removeTickers(tickers, done)
		}
	}

	d.lib.TickInc(uint32(ms))
	next := time.Duration(d.lib.TimerHandler()) * time.Millisecond
	d.metrics.iterations.Inc()

	d.mu.Lock()
	pending := len(d.posted) > 0
	ticking := len(d.tickers) > 0
	d.mu.Unlock()

	if pending {
		return 0
	}
	sleep := min(next, d.cfg.MaxSleep)
	if ticking {
		sleep = min(sleep, frameInterval)
	}
	return sleep
}

func (d *Display) runPosted(fn func()) {
	defer lverrors.Recover("lvgl.post")
	d.metrics.posted.Inc()
	fn()
}

// runTicker reports whether the ticker stays registered. A panicking ticker
// is dropped.
func (d *Display) runTicker(fn func(time.Duration) bool, dt time.Duration) (keep bool) {
	defer lverrors.RecoverWithCallback("lvgl.ticker", func(any) { keep = false })
	return fn(dt)
}

// removeTickers drops the tickers at the given indexes of snapshot. Tickers
// added while the snapshot ran are kept.
func (d *Display) removeTickers(snapshot []func(time.Duration) bool, done []int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	kept := d.tickers[:0:0]
	for i, fn := range d.tickers {
		if i < len(snapshot) && slices.Contains(done, i) {
			continue
		}
		kept = append(kept, fn)
	}
	d.tickers = kept
	logx.Debug("tickers removed", d, "count", len(done), "remaining", len(kept))
}

// Run makes the calling goroutine the display owner and drives the timer
// handler until ctx is done. The goroutine is locked to its OS thread for
// the duration.
func (d *Display) Run(ctx context.Context) error {
	if !d.running.CompareAndSwap(false, true) {
		return ErrLoopRunning
	}
	defer d.running.Store(false)

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	logx.Debug("display loop started", d)
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		if err := ctx.Err(); err != nil {
			logx.Debug("display loop stopped", d, "err", err)
			return err
		}
		sleep := d.Step()
		if sleep <= 0 {
			continue
		}
		timer.Reset(sleep)
		select {
		case <-ctx.Done():
			timer.Stop()
		case <-d.wake:
			timer.Stop()
		case <-timer.C:
		}
	}
}

// Start runs the loop on a new goroutine. The channel receives Run's
// result and is then closed.
func (d *Display) Start(ctx context.Context) <-chan error {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		errc <- d.Run(ctx)
	}()
	return errc
}

// Running reports whether a goroutine owns the loop.
func (d *Display) Running() bool { return d.running.Load() }
