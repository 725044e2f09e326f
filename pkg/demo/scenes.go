package demo

import (
	"log/slog"

	"github.com/go-lvgl/lvgl/pkg/logx"
	"github.com/go-lvgl/lvgl/pkg/lvgl"
)

// logEvent prints button and pixmap events.
func (s *Showcase) logEvent(appData string) lvgl.HandlerFunc {
	return func(w lvgl.Widget, uid string, ev lvgl.Event) {
		logx.Info("widget event", s, "app_data", appData, "widget", uid, "event", ev.String())
	}
}

// logSwitch prints switch events with the checked state.
func (s *Showcase) logSwitch(appData string) lvgl.HandlerFunc {
	return func(w lvgl.Widget, uid string, ev lvgl.Event) {
		sw, ok := w.(*lvgl.Switch)
		if !ok {
			return
		}
		logx.Info("switch event", s, "app_data", appData, "widget", uid, "event", ev.String(), "checked", sw.Value())
	}
}

func (s *Showcase) drawDate(root lvgl.Widget, x, y int16) {
	date, err := lvgl.FormatTime("%D %H:%M")
	if logx.IsErr(err, s, slog.LevelWarn, "scene", "date") {
		date = "--/--/-- --:--"
	}
	lvgl.NewLabel(root, "Local-Time", lvgl.FontStd14, x, y).SetValue(date)
}

func (s *Showcase) drawLabel(root lvgl.Widget, x, y int16) {
	lvgl.NewLabel(root, "Label-1", lvgl.FontStd22, x, y).
		SetValue("Demo Label widget").
		SetTitle("Label widget", 100, 75, lvgl.FontStd10).
		SetSize(300, 100).
		SetColor(lvgl.RGB(0, 0, 0)).
		SetBackground(lvgl.RGB(0xff, 0xff, 0xff)).
		SetBorder(3, lvgl.RGB(0, 0xff, 0))
}

func (s *Showcase) drawIcon(root lvgl.Widget, x, y int16) {
	area := lvgl.NewArea(root, "Icon-Area", x, y).
		SetSize(80, 40).
		SetPadding(5, 2, 5, 5).
		SetTitle("icon area", 3, 5, lvgl.FontStd10)

	lvgl.NewPixmap(area, "Icon-wifi", lvgl.IconWifi, 10, 0).SetInfo("Demo Wifi Icon")
	lvgl.NewPixmap(area, "Icon-Nfc", lvgl.IconSDCard, 35, 0).SetColor(lvgl.RGB(255, 0, 0))
	lvgl.NewPixmap(root, "Icon-Battery", lvgl.IconBattery2, 50, 0)
}

func (s *Showcase) drawLed(root lvgl.Widget, x, y int16) {
	area := lvgl.NewArea(root, "Led-Area", x, y).
		SetSize(70, 40).
		SetPadding(10, 2, 5, 5).
		SetTitle("led area", 7, 7, lvgl.FontStd10)

	lvgl.NewLed(area, "Led-Red", 10, 0).
		SetInfo("red led").
		SetColor(lvgl.PaletteRed.Color()).
		SetSize(10, 10).
		SetOn(true)

	lvgl.NewLed(area, "Led-Green", 35, 0).
		SetColor(lvgl.RGB(0, 255, 0)).
		SetInfo("green led").
		SetBrightness(255).
		SetSize(10, 10).
		SetOn(true)
}

func (s *Showcase) drawSwitch(root lvgl.Widget, x, y int16) {
	area := lvgl.NewArea(root, "Switch-Area", x, y).
		SetSize(150, 50).
		SetPadding(5, 2, 5, 10).
		SetTitle("switch area", 35, 5, lvgl.FontStd10)

	lvgl.NewSwitch(area, "Switch-1", 0, 0).
		SetTitle("Unlock", 3, 5, lvgl.FontStd10).
		SetDisable(false).
		SetValue(false).
		SetCallback(s.logSwitch("Draw-Switch-1")).
		SetHeight(20)

	lvgl.NewSwitch(area, "Switch-2", 75, 0).
		SetTitle("Locked", 3, 5, lvgl.FontStd10).
		SetDisable(true).
		SetValue(true).
		SetCallback(s.logSwitch("Draw-Switch-2")).
		SetHeight(20)
}

func (s *Showcase) drawText(root lvgl.Widget, x, y int16) {
	lvgl.NewTextArea(root, "Text-Area", x, y).
		SetInfo("Demo Text area Zone").
		SetWidth(600).
		SetValue("display message zone")
}

func (s *Showcase) drawLine(root lvgl.Widget, x, y int16) {
	lvgl.NewLine(root, "Line", x, y).
		SetColor(lvgl.PaletteRed.Color()).
		SetWidth(8).
		SetRounded(true).
		SetPoints([]lvgl.Point{
			{X: 5, Y: 5},
			{X: 70, Y: 70},
			{X: 120, Y: 10},
			{X: 180, Y: 60},
			{X: 240, Y: 10},
		})
}

func (s *Showcase) drawButton(root lvgl.Widget, x, y int16) {
	lvgl.NewButton(root, "Button-A", lvgl.FontStd18, x, y).
		SetValue("Test-1").
		SetSize(180, 100).
		SetBorder(3, lvgl.PaletteDeepOrange.Color()).
		SetCallback(s.logEvent("Draw-Button-1"))

	lvgl.NewButton(root, "Button-B", lvgl.FontStd14, x+50, y+110).
		SetValue("Test-2").
		SetCallback(s.logEvent("Draw-Button-2"))

	lvgl.NewPixButton(root, "Button-Img", x+50, y-60).
		SetValue(lvgl.IconHome).
		SetBackground(lvgl.PaletteBlueGrey.Color()).
		SetTitle("Clickable", -13, 25, lvgl.FontStd10).
		SetBorder(3, lvgl.PaletteDeepPurple.Color()).
		SetCallback(s.logEvent("Draw-PixButton"))
}

func (s *Showcase) drawArc(root lvgl.Widget, x, y int16) {
	lvgl.NewArc(root, "Arc", 0, 300, x, y).
		SetInfo("Arc widget").
		SetValue(180)
}

func (s *Showcase) drawTux(root lvgl.Widget, x, y int16) {
	lvgl.NewImage(root, "tux-evse", s.tuxPath(), x, y).
		SetTitle("tux-evse mascot", 65, 0, lvgl.FontStd14)
}

func (s *Showcase) drawQrcode(root lvgl.Widget, x, y int16) {
	lvgl.NewQrcode(root, "qr-code", lvgl.PaletteLightBlue.Color(), lvgl.PaletteDeepPurple.Color(), 150, x, y).
		SetText("https://github.com/tux-evse").
		SetTitle("tux-evse@github", 15, 15, lvgl.FontStd14)
}

func (s *Showcase) drawBar(root lvgl.Widget, x, y int16) {
	lvgl.NewBar(root, "Bar-1", 10, 90, x, y).
		SetInfo("variable bar").
		SetSize(10, 250).
		SetGradient(true, lvgl.PaletteGreen.Color(), lvgl.PaletteYellow.Color()).
		SetValue(60)

	lvgl.NewBar(root, "Bar-2", 10, 90, x, y-30).
		SetInfo("variable bar").
		SetSize(250, 10).
		SetGradient(false, lvgl.PaletteGreen.Color(), lvgl.PaletteYellow.Color()).
		SetValue(40)
}

func (s *Showcase) drawMeter(root lvgl.Widget, x, y int16) {
	lvgl.NewMeter(root, "Meter", 4, -10, lvgl.PaletteIndigo.Color(), x, y).
		SetSize(200, 200).
		SetTicks(3, 10, 41, 10, 8, lvgl.PaletteBlueGrey.Color(), lvgl.PaletteGrey.Color()).
		SetZone(0, 20, 4, lvgl.PaletteRed.Color()).
		SetZone(80, 100, 4, lvgl.PaletteGreen.Color()).
		SetBorder(4, lvgl.PaletteLightBlue.Color()).
		SetBackground(lvgl.PalettePink.Color()).
		SetValue(50)
}

func (s *Showcase) drawArea(root lvgl.Widget, x, y int16) {
	area := lvgl.NewArea(root, "Area", x, y).SetSize(200, 200)

	lvgl.NewBar(area, "Bar-1", 10, 90, 10, 10).
		SetInfo("variable bar").
		SetSize(10, 250).
		SetGradient(true, lvgl.PaletteGreen.Color(), lvgl.PaletteYellow.Color()).
		SetValue(60)

	lvgl.NewArc(area, "Arc", 0, 300, 100, 100).
		SetInfo("Arc widget").
		SetValue(180)
}

// PanelTheme is the theme of the panel scene.
var PanelTheme = lvgl.Theme{
	Primary:   lvgl.PaletteLightBlue.Color(),
	Secondary: lvgl.PaletteBlueGrey.Color(),
	Font:      lvgl.FontStd14,
}

func (s *Showcase) drawPanel(root lvgl.Widget, _, _ int16) {
	s.Display.SetTheme(PanelTheme)
	s.drawIcon(root, 875, 5)
	s.drawLed(root, 805, 5)
	s.drawDate(root, 540, 12)
	s.drawSwitch(root, 805, 50)
	s.drawLine(root, 400, 70)
	s.drawButton(root, 450, 200)
	s.drawArc(root, 100, 30)
	s.drawBar(root, 100, 250)
	s.drawMeter(root, 800, 350)
	s.drawLabel(root, 240, 400)
	s.drawTux(root, 765, 100)
	s.drawQrcode(root, 600, 370)
	s.drawText(root, 50, 550)
	if s.Animate {
		s.animate(0)
	}
}
