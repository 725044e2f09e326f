package lvgl

import (
	"fmt"
	"time"
)

const (
	// DefaultWidth and DefaultHeight are used when the resolution is not
	// configured and cannot be probed.
	DefaultWidth  = 1024
	DefaultHeight = 600
	// DefaultDrawRatio sizes the draw buffer at a tenth of the screen.
	DefaultDrawRatio = 10
	// DefaultMaxSleep caps how long the owner loop sleeps between timer
	// handler calls.
	DefaultMaxSleep = 50 * time.Millisecond
	// DefaultFramebuffer is probed for the resolution on the fbdev backend.
	DefaultFramebuffer = "/dev/fb0"
)

// frameInterval is the loop period while tickers are registered.
const frameInterval = 16 * time.Millisecond

// Config describes the display and its drivers.
type Config struct {
	// Width and Height are the resolution in pixels. Zero asks the
	// framebuffer backend to probe the device, others fall back to
	// DefaultWidth x DefaultHeight.
	Width  int16 `yaml:"width"`
	Height int16 `yaml:"height"`
	// DrawRatio divides the screen pixel count to size the draw buffer.
	DrawRatio uint32 `yaml:"draw_ratio"`
	// InputDevice overrides the evdev pointer device.
	InputDevice string `yaml:"input_device"`
	// FramebufferDevice is the device probed for the resolution.
	FramebufferDevice string `yaml:"framebuffer_device"`
	// MaxSleep caps the owner loop sleep.
	MaxSleep time.Duration `yaml:"max_sleep"`
	// Theme is installed at Init when set.
	Theme *ThemeConfig `yaml:"theme,omitempty"`
}

// ThemeConfig selects the default theme colors and font.
type ThemeConfig struct {
	// Primary and Secondary are palette names or #rrggbb.
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Dark      bool   `yaml:"dark"`
	// Font is a built-in font point size.
	Font int `yaml:"font"`
}

// Theme is a resolved theme.
type Theme struct {
	Primary   Color
	Secondary Color
	Dark      bool
	Font      Font
}

// DefaultConfig returns a config with every default filled in and the
// resolution left to probing.
func DefaultConfig() Config {
	return Config{
		DrawRatio:         DefaultDrawRatio,
		FramebufferDevice: DefaultFramebuffer,
		MaxSleep:          DefaultMaxSleep,
	}
}

// WithDefaults returns c with zero fields replaced by defaults.
func (c Config) WithDefaults() Config {
	def := DefaultConfig()
	if c.DrawRatio == 0 {
		c.DrawRatio = def.DrawRatio
	}
	if c.FramebufferDevice == "" {
		c.FramebufferDevice = def.FramebufferDevice
	}
	if c.MaxSleep <= 0 {
		c.MaxSleep = def.MaxSleep
	}
	return c
}

// Validate checks the fields that defaults cannot fix.
func (c Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("lvgl: negative resolution %dx%d", c.Width, c.Height)
	}
	if (c.Width == 0) != (c.Height == 0) {
		return fmt.Errorf("lvgl: resolution %dx%d: set both or neither", c.Width, c.Height)
	}
	if c.DrawRatio != 0 && c.Width > 0 && uint32(c.Width)*uint32(c.Height) < c.DrawRatio {
		return fmt.Errorf("lvgl: draw ratio %d leaves an empty buffer", c.DrawRatio)
	}
	if c.Theme != nil {
		if _, err := c.Theme.Resolve(); err != nil {
			return err
		}
	}
	return nil
}

// Resolve parses the theme colors and font.
func (t ThemeConfig) Resolve() (Theme, error) {
	primary, err := ParseColor(t.Primary)
	if err != nil {
		return Theme{}, fmt.Errorf("theme primary: %w", err)
	}
	secondary, err := ParseColor(t.Secondary)
	if err != nil {
		return Theme{}, fmt.Errorf("theme secondary: %w", err)
	}
	font := FontStd14
	if t.Font != 0 {
		if font, err = FontOfSize(t.Font); err != nil {
			return Theme{}, fmt.Errorf("theme font: %w", err)
		}
	}
	return Theme{Primary: primary, Secondary: secondary, Dark: t.Dark, Font: font}, nil
}
