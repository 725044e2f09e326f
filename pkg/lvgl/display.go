package lvgl

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-lvgl/lvgl/internal/fbinfo"
	lverrors "github.com/go-lvgl/lvgl/pkg/errors"
	"github.com/go-lvgl/lvgl/pkg/logx"
	"github.com/go-lvgl/lvgl/pkg/native"
)

var (
	// ErrAlreadyInitialized is returned by Init when the library already
	// has a display, or when an earlier Init failed after the native
	// library was initialized. LVGL cannot be torn down, so a display lives
	// for the process.
	ErrAlreadyInitialized = errors.New("lvgl: library already initialized")
	// ErrLoopRunning is returned by Run when another goroutine owns the loop.
	ErrLoopRunning = errors.New("lvgl: display loop already running")
)

// probeFramebuffer is replaced in tests.
var probeFramebuffer = fbinfo.Probe

var (
	displaysMu sync.Mutex
	displays   = map[native.Library]*Display{}
)

// Display is an initialized LVGL library with its registered display and
// pointer drivers. It owns every widget created on it.
type Display struct {
	lib     native.Library
	cfg     Config
	logger  *slog.Logger
	clock   Clock
	metrics *metrics
	arena   *arena
	root    *Root

	width, height int16

	mu      sync.Mutex
	posted  []func()
	tickers []func(time.Duration) bool
	wake    chan struct{}
	running atomic.Bool

	// last advances by whole milliseconds for TickInc; lastTick is the
	// exact time of the previous ticker pass.
	last     time.Time
	lastTick time.Time
}

// Init initializes the native library, registers the display and pointer
// drivers and installs the event sink. It must be called once per library.
func Init(cfg Config, opts ...Option) (*Display, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.lib == nil {
		o.lib = native.Default()
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.clock == nil {
		o.clock = SystemClock()
	}

	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, lverrors.New("lvgl.Init", lverrors.KindConfig, err)
	}

	displaysMu.Lock()
	defer displaysMu.Unlock()
	if _, ok := displays[o.lib]; ok {
		return nil, ErrAlreadyInitialized
	}

	d := &Display{
		lib:     o.lib,
		cfg:     cfg,
		logger:  o.logger,
		clock:   o.clock,
		metrics: newMetrics(o.reg),
		arena:   newArena(),
		wake:    make(chan struct{}, 1),
	}

	d.lib.Init()
	// From here on the library is taken even if Init fails: drivers must
	// not be registered twice.
	fail := func(kind lverrors.ErrorKind, err error) error {
		displays[d.lib] = nil
		return lverrors.New("lvgl.Init", kind, err)
	}

	d.width, d.height = d.resolution()
	buf := uint32(d.width) * uint32(d.height) / cfg.DrawRatio
	if err := d.lib.RegisterDisplay(d.width, d.height, buf); err != nil {
		return nil, fail(lverrors.KindInit, err)
	}
	if err := d.lib.RegisterPointer(cfg.InputDevice); err != nil {
		return nil, fail(lverrors.KindInit, err)
	}
	d.lib.SetEventSink(d.onNative)

	if cfg.Theme != nil {
		theme, err := cfg.Theme.Resolve()
		if err != nil {
			return nil, fail(lverrors.KindConfig, err)
		}
		d.SetTheme(theme)
	}

	d.root = newRoot(d)
	d.last = d.clock.Now()
	d.lastTick = d.last
	displays[d.lib] = d
	logx.Info("display initialized", d,
		"backend", d.lib.Backend(),
		"width", d.width,
		"height", d.height,
		"buffer_px", buf)
	return d, nil
}

// Default returns the display initialized on native.Default(), or nil.
func Default() *Display {
	displaysMu.Lock()
	defer displaysMu.Unlock()
	return displays[native.Default()]
}

func (d *Display) resolution() (int16, int16) {
	if d.cfg.Width > 0 && d.cfg.Height > 0 {
		return d.cfg.Width, d.cfg.Height
	}
	if d.lib.Backend() == native.BackendFbdev {
		info, err := probeFramebuffer(d.cfg.FramebufferDevice)
		if err == nil && info.Width > 0 && info.Height > 0 {
			logx.Debug("framebuffer probed", d, "device", d.cfg.FramebufferDevice, "info", info.String())
			return int16(info.Width), int16(info.Height)
		}
		logx.Warn("framebuffer probe failed, using default resolution", d,
			"device", d.cfg.FramebufferDevice, "err", err)
	}
	return DefaultWidth, DefaultHeight
}

// Backend names the compiled driver backend.
func (d *Display) Backend() string { return d.lib.Backend() }

// Root returns the pseudo-widget for the active screen.
func (d *Display) Root() *Root { return d.root }

// Library returns the native library the display drives.
func (d *Display) Library() native.Library { return d.lib }

// Config returns the configuration the display was initialized with,
// defaults applied.
func (d *Display) Config() Config { return d.cfg }

// Resolution returns the registered resolution.
func (d *Display) Resolution() (width, height int16) { return d.width, d.height }

func (d *Display) Logger() *slog.Logger { return d.logger }

// Widgets returns every widget in creation order, Root first.
func (d *Display) Widgets() []Widget { return d.arena.all() }

// Lookup resolves an event token.
func (d *Display) Lookup(id uintptr) (Widget, bool) { return d.arena.lookup(id) }

// Find returns the first widget created with uid.
func (d *Display) Find(uid string) (Widget, bool) { return d.arena.find(uid) }

// StyleCount returns the number of style blocks allocated by the display.
func (d *Display) StyleCount() int { return d.arena.styleCount() }

// SetTheme installs the default theme and the grey half-transparent display
// background.
func (d *Display) SetTheme(t Theme) {
	d.lib.SetTheme(t.Primary, t.Secondary, t.Dark, native.Font(t.Font))
	d.lib.SetDisplayBackground(RGB(100, 100, 100), 128)
	logx.Debug("theme set", d,
		"primary", fmt.Sprintf("#%06x", uint32(t.Primary)),
		"secondary", fmt.Sprintf("#%06x", uint32(t.Secondary)),
		"dark", t.Dark,
		"font", t.Font.String())
}

func (d *Display) newStyle() native.Style {
	s := d.lib.NewStyle()
	d.arena.addStyle(s)
	return s
}

// onNative is the event sink. It runs on the loop goroutine, inside the
// native timer handler.
func (d *Display) onNative(token uintptr, code native.EventCode) {
	ev := EventFromCode(code)
	defer lverrors.RecoverWithCallback("lvgl.dispatch", func(any) {
		d.metrics.event(ev, outcomePanic)
	})
	w, ok := d.arena.lookup(token)
	if !ok {
		d.metrics.event(ev, outcomeOrphan)
		logx.Debug("event for unknown widget", d, "token", token, "code", code)
		return
	}
	w.dispatch(ev)
}
