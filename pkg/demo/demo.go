// Package demo draws the widget showcase used by cmd/lvgl-demo.
package demo

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"sort"

	"github.com/go-lvgl/lvgl/pkg/logx"
	"github.com/go-lvgl/lvgl/pkg/lvgl"
)

// TuxImage is the mascot image looked up in the asset directory.
const TuxImage = "tux-evsex250.png"

// Showcase draws scenes on one display.
type Showcase struct {
	Display *lvgl.Display
	// AssetDir holds TuxImage.
	AssetDir string
	// Animate sweeps the gauges of the panel scene.
	Animate bool

	logger *slog.Logger
}

// New returns a showcase drawing on d and logging through d's logger.
func New(d *lvgl.Display, assetDir string) *Showcase {
	return &Showcase{Display: d, AssetDir: assetDir, logger: d.Logger()}
}

func (s *Showcase) Logger() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return s.Display.Logger()
}

// Scene is one named demo.
type Scene struct {
	Name  string
	Short string
	// X and Y place the scene when it is drawn on its own.
	X, Y int16
	draw func(s *Showcase, root lvgl.Widget, x, y int16)
}

var scenes = []Scene{
	{Name: "date", Short: "label with the local time", X: 100, Y: 100, draw: (*Showcase).drawDate},
	{Name: "label", Short: "bordered label with a title", X: 100, Y: 100, draw: (*Showcase).drawLabel},
	{Name: "icon", Short: "symbol pixmaps in an area", X: 900, Y: 10, draw: (*Showcase).drawIcon},
	{Name: "led", Short: "red and green LEDs", X: 100, Y: 100, draw: (*Showcase).drawLed},
	{Name: "switch", Short: "unlocked and locked switches", X: 100, Y: 100, draw: (*Showcase).drawSwitch},
	{Name: "text", Short: "one-line text area", X: 100, Y: 100, draw: (*Showcase).drawText},
	{Name: "line", Short: "rounded polyline", X: 100, Y: 100, draw: (*Showcase).drawLine},
	{Name: "button", Short: "text and symbol buttons", X: 100, Y: 100, draw: (*Showcase).drawButton},
	{Name: "arc", Short: "arc gauge", X: 100, Y: 100, draw: (*Showcase).drawArc},
	{Name: "tux", Short: "mascot image", X: 100, Y: 100, draw: (*Showcase).drawTux},
	{Name: "qrcode", Short: "QR code", X: 100, Y: 100, draw: (*Showcase).drawQrcode},
	{Name: "bar", Short: "gradient bars", X: 100, Y: 100, draw: (*Showcase).drawBar},
	{Name: "meter", Short: "meter with zones", X: 100, Y: 100, draw: (*Showcase).drawMeter},
	{Name: "area", Short: "bar and arc inside an area", X: 100, Y: 100, draw: (*Showcase).drawArea},
	{Name: "panel", Short: "every scene on one themed screen", draw: (*Showcase).drawPanel},
}

// Scenes lists the scenes in display order.
func Scenes() []Scene { return slices.Clone(scenes) }

// Names lists the scene names, sorted.
func Names() []string {
	names := make([]string, len(scenes))
	for i, sc := range scenes {
		names[i] = sc.Name
	}
	sort.Strings(names)
	return names
}

// Lookup finds a scene by name.
func Lookup(name string) (Scene, bool) {
	for _, sc := range scenes {
		if sc.Name == name {
			return sc, true
		}
	}
	return Scene{}, false
}

// Draw draws the named scene on the display root.
func (s *Showcase) Draw(name string) error {
	sc, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("demo: unknown scene %q", name)
	}
	logx.Info("drawing scene", s, "scene", sc.Name)
	sc.draw(s, s.Display.Root(), sc.X, sc.Y)
	return nil
}

func (s *Showcase) tuxPath() string {
	return filepath.Join(s.AssetDir, TuxImage)
}
