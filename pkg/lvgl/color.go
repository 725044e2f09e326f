package lvgl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-lvgl/lvgl/pkg/native"
)

// Color is a 24-bit RGB color.
type Color = native.Color

// RGB builds a color from its components.
func RGB(r, g, b uint8) Color { return native.MakeColor(r, g, b) }

// Palette indexes the material design main colors built into LVGL.
type Palette uint8

const (
	PaletteRed Palette = iota
	PalettePink
	PalettePurple
	PaletteDeepPurple
	PaletteIndigo
	PaletteBlue
	PaletteLightBlue
	PaletteCyan
	PaletteTeal
	PaletteGreen
	PaletteLightGreen
	PaletteLime
	PaletteYellow
	PaletteAmber
	PaletteOrange
	PaletteDeepOrange
	PaletteBrown
	PaletteBlueGrey
	PaletteGrey
	PaletteLast
	PaletteNone Palette = 0xff
)

var paletteMain = [...]struct {
	name  string
	color Color
}{
	PaletteRed:        {"red", 0xF44336},
	PalettePink:       {"pink", 0xE91E63},
	PalettePurple:     {"purple", 0x9C27B0},
	PaletteDeepPurple: {"deep_purple", 0x673AB7},
	PaletteIndigo:     {"indigo", 0x3F51B5},
	PaletteBlue:       {"blue", 0x2196F3},
	PaletteLightBlue:  {"light_blue", 0x03A9F4},
	PaletteCyan:       {"cyan", 0x00BCD4},
	PaletteTeal:       {"teal", 0x009688},
	PaletteGreen:      {"green", 0x4CAF50},
	PaletteLightGreen: {"light_green", 0x8BC34A},
	PaletteLime:       {"lime", 0xCDDC39},
	PaletteYellow:     {"yellow", 0xFFEB3B},
	PaletteAmber:      {"amber", 0xFFC107},
	PaletteOrange:     {"orange", 0xFF9800},
	PaletteDeepOrange: {"deep_orange", 0xFF5722},
	PaletteBrown:      {"brown", 0x795548},
	PaletteBlueGrey:   {"blue_grey", 0x607D8B},
	PaletteGrey:       {"grey", 0x9E9E9E},
}

// Color returns the main shade of p. PaletteLast, PaletteNone and out of
// range values are black, as lv_palette_main returns for them.
func (p Palette) Color() Color {
	if int(p) < len(paletteMain) {
		return paletteMain[p].color
	}
	return 0
}

func (p Palette) String() string {
	switch {
	case int(p) < len(paletteMain):
		return paletteMain[p].name
	case p == PaletteLast:
		return "last"
	case p == PaletteNone:
		return "none"
	default:
		return "palette(" + strconv.Itoa(int(p)) + ")"
	}
}

// ParseColor accepts a palette name ("deep_orange", "Light-Blue", case
// insensitive), "none"/"last", or a "#rrggbb" hex triplet.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) != 6 {
			return 0, fmt.Errorf("lvgl: color %q: want #rrggbb", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("lvgl: color %q: %w", s, err)
		}
		return Color(v), nil
	}
	name := strings.ToLower(strings.ReplaceAll(s, "-", "_"))
	switch name {
	case "none", "last":
		return 0, nil
	}
	for _, p := range paletteMain {
		if p.name == name {
			return p.color, nil
		}
	}
	return 0, fmt.Errorf("lvgl: unknown color %q", s)
}
