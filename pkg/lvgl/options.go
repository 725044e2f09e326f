package lvgl

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/go-lvgl/lvgl/pkg/native"
)

// Option customizes Init.
type Option func(*options)

type options struct {
	lib    native.Library
	logger *slog.Logger
	clock  Clock
	reg    prometheus.Registerer
}

// WithLibrary selects the native library. The default is native.Default().
func WithLibrary(lib native.Library) Option {
	return func(o *options) { o.lib = lib }
}

// WithLogger sets the display logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithClock sets the clock the owner loop measures ticks with.
func WithClock(clock Clock) Option {
	return func(o *options) { o.clock = clock }
}

// WithRegisterer registers the display metrics with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) { o.reg = reg }
}
