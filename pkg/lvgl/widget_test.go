package lvgl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-lvgl/lvgl/pkg/lvgl"
	"github.com/go-lvgl/lvgl/pkg/lvgltest"
	"github.com/go-lvgl/lvgl/pkg/native"
)

// build creates one widget of kind on the tester's screen.
func build(tt *lvgltest.Tester, kind lvgl.Kind) lvgl.Widget {
	root := tt.Root()
	uid := kind.String()
	switch kind {
	case lvgl.KindLabel:
		return lvgl.NewLabel(root, uid, lvgl.FontStd14, 1, 2)
	case lvgl.KindButton:
		return lvgl.NewButton(root, uid, lvgl.FontStd14, 1, 2)
	case lvgl.KindPixButton:
		return lvgl.NewPixButton(root, uid, 1, 2)
	case lvgl.KindPixmap:
		return lvgl.NewPixmap(root, uid, lvgl.IconWifi, 1, 2)
	case lvgl.KindImage:
		return lvgl.NewImage(root, uid, "missing.png", 1, 2)
	case lvgl.KindTextArea:
		return lvgl.NewTextArea(root, uid, 1, 2)
	case lvgl.KindLed:
		return lvgl.NewLed(root, uid, 1, 2)
	case lvgl.KindLine:
		return lvgl.NewLine(root, uid, 1, 2)
	case lvgl.KindArc:
		return lvgl.NewArc(root, uid, 135, 45, 1, 2)
	case lvgl.KindSwitch:
		return lvgl.NewSwitch(root, uid, 1, 2)
	case lvgl.KindBar:
		return lvgl.NewBar(root, uid, 0, 100, 1, 2)
	case lvgl.KindMeter:
		return lvgl.NewMeter(root, uid, 4, -10, lvgl.PaletteGrey.Color(), 1, 2)
	case lvgl.KindQrcode:
		return lvgl.NewQrcode(root, uid, lvgl.RGB(0, 0, 0), lvgl.RGB(255, 255, 255), 100, 1, 2)
	case lvgl.KindArea:
		return lvgl.NewArea(root, uid, 1, 2)
	case lvgl.KindImgButton:
		return lvgl.NewImgButton(root, uid, "go", 1, 2, lvgl.PaletteBlue.Color(), 100, 0)
	case lvgl.KindRoot:
		return root
	}
	tt.T.Fatalf("no builder for %v", kind)
	return nil
}

func TestConstructorsYieldHandles(t *testing.T) {
	tt := lvgltest.New(t)
	for _, kind := range lvgl.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			w := build(tt, kind)
			require.NotNil(t, w)
			assert.NotZero(t, w.Handle())
			assert.NotZero(t, w.ID())
			assert.Equal(t, kind, w.Kind())
			st := tt.Object(w)
			assert.NotEmpty(t, st.Styles, "widget style attached")
		})
	}
}

func TestConstructorPlacement(t *testing.T) {
	tt := lvgltest.New(t)
	lbl := lvgl.NewLabel(tt.Root(), "lbl", lvgl.FontStd22, 240, 400)

	st := tt.Object(lbl)
	assert.Equal(t, native.KindLabel, st.Kind)
	assert.Equal(t, tt.Root().Handle(), st.Parent)
	assert.Equal(t, native.AlignTopLeft, st.Align)
	assert.Equal(t, int16(240), st.X)
	assert.Equal(t, int16(400), st.Y)
	assert.False(t, st.Recolor)
	assert.Equal(t, int32(native.TextAlignCenter), st.Local[native.PropTextAlign])

	require.Len(t, st.Styles, 2)
	font, ok := tt.Lib.StyleOf(st.Styles[0])
	require.True(t, ok)
	assert.Equal(t, native.Font(lvgl.FontStd22), font.Props[native.PropTextFont])
}

func TestEventFiltering(t *testing.T) {
	want := map[lvgl.Kind][]lvgl.Event{
		lvgl.KindButton:    {lvgl.EventPressed},
		lvgl.KindPixButton: {lvgl.EventPressed},
		lvgl.KindImgButton: {lvgl.EventPressed},
		lvgl.KindLed:       {lvgl.EventPressed},
		lvgl.KindSwitch:    {lvgl.EventValueChanged},
		lvgl.KindBar:       {lvgl.EventValueChanged},
	}
	for _, kind := range lvgl.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			tt := lvgltest.New(t)
			w := build(tt, kind)
			rec := &lvgltest.Recorder{}
			setCallback(w, rec)

			for _, ev := range lvgl.Events() {
				tt.Emit(w, ev)
			}

			expected := want[kind]
			if expected == nil {
				assert.Empty(t, rec.Events)
			} else {
				assert.Equal(t, expected, rec.Kinds())
			}
			for _, ev := range lvgl.Events() {
				assert.Equal(t, contains(expected, ev), kind.Forwards(ev), "%v forwards %v", kind, ev)
			}
		})
	}
}

func contains(events []lvgl.Event, ev lvgl.Event) bool {
	for _, e := range events {
		if e == ev {
			return true
		}
	}
	return false
}

// setCallback installs h through the concrete wrapper type.
func setCallback(w lvgl.Widget, h lvgl.Handler) {
	switch w := w.(type) {
	case *lvgl.Label:
		w.SetCallback(h)
	case *lvgl.Button:
		w.SetCallback(h)
	case *lvgl.PixButton:
		w.SetCallback(h)
	case *lvgl.Pixmap:
		w.SetCallback(h)
	case *lvgl.Image:
		w.SetCallback(h)
	case *lvgl.TextArea:
		w.SetCallback(h)
	case *lvgl.Led:
		w.SetCallback(h)
	case *lvgl.Line:
		w.SetCallback(h)
	case *lvgl.Arc:
		w.SetCallback(h)
	case *lvgl.Switch:
		w.SetCallback(h)
	case *lvgl.Bar:
		w.SetCallback(h)
	case *lvgl.Meter:
		w.SetCallback(h)
	case *lvgl.Qrcode:
		w.SetCallback(h)
	case *lvgl.Area:
		w.SetCallback(h)
	case *lvgl.ImgButton:
		w.SetCallback(h)
	case *lvgl.Root:
		w.SetCallback(h)
	}
}

func TestSetCallbackIdempotent(t *testing.T) {
	tt := lvgltest.New(t)
	btn := lvgl.NewButton(tt.Root(), "btn", lvgl.FontStd14, 0, 0)

	first := &lvgltest.Recorder{}
	second := &lvgltest.Recorder{}
	btn.SetCallback(first).SetCallback(second).SetCallback(nil)

	assert.Len(t, tt.Object(btn).Callbacks, 1, "one native subscription")
	tt.Emit(btn, lvgl.EventPressed)
	assert.Len(t, first.Events, 1)
	assert.Empty(t, second.Events)

	h, ok := btn.Callback()
	assert.True(t, ok)
	assert.Same(t, first, h)
}

func TestHandlerReceivesWidget(t *testing.T) {
	tt := lvgltest.New(t)
	sw := lvgl.NewSwitch(tt.Root(), "sw", 0, 0)

	var got lvgl.Widget
	var checked bool
	sw.SetCallbackFunc(func(w lvgl.Widget, uid string, ev lvgl.Event) {
		got = w
		checked = w.(*lvgl.Switch).Value()
	})
	tt.Click(sw)

	assert.Same(t, sw, got)
	assert.False(t, checked, "click toggles the initially checked switch")
}

func TestInvalidTextPlaceholder(t *testing.T) {
	tt := lvgltest.New(t)
	bad := "bad\xff"

	lbl := lvgl.NewLabel(tt.Root(), "lbl", lvgl.FontStd14, 0, 0).SetValue(bad)
	assert.Equal(t, "Non UTF8 label", lbl.Value())

	btn := lvgl.NewButton(tt.Root(), "btn", lvgl.FontStd14, 0, 0).SetValue("nul\x00")
	assert.Equal(t, "Non UTF8 label", btn.Value())

	ta := lvgl.NewTextArea(tt.Root(), "ta", 0, 0).SetValue(bad)
	assert.Equal(t, "Non UTF8 text", ta.Value())
	ta.SetValue("ok").Insert(bad)
	assert.Equal(t, "okNon UTF8 text", ta.Value())

	img := lvgl.NewImage(tt.Root(), "img", bad, 0, 0)
	assert.Equal(t, "Non UTF8 path", tt.Object(img).Src)

	assert.Contains(t, tt.Logs(), "text replaced by placeholder")
}

func TestValidateText(t *testing.T) {
	assert.NoError(t, lvgl.ValidateText("héllo"))
	assert.ErrorIs(t, lvgl.ValidateText("a\xffb"), lvgl.ErrInvalidText)
	assert.ErrorIs(t, lvgl.ValidateText("a\x00b"), lvgl.ErrInvalidText)
}

func TestSwitchValue(t *testing.T) {
	tt := lvgltest.New(t)
	sw := lvgl.NewSwitch(tt.Root(), "sw", 0, 0)
	assert.True(t, sw.Value())

	sw.SetValue(false)
	assert.False(t, sw.States().Has(native.StateChecked))
	sw.SetValue(true)
	assert.True(t, sw.States().Has(native.StateChecked))

	sw.SetLock(true)
	assert.True(t, sw.States().Has(native.StateDisabled))
	rec := &lvgltest.Recorder{}
	sw.SetCallback(rec)
	tt.Click(sw)
	assert.Empty(t, rec.Events, "locked switch ignores clicks")
	assert.True(t, sw.Value())

	sw.SetLock(false)
	tt.Click(sw)
	assert.Equal(t, []lvgl.Event{lvgl.EventValueChanged}, rec.Kinds())
	assert.False(t, sw.Value())
	assert.Equal(t, []string{"ON", "OFF"}, sw.Actions())
}

func TestCommonSetters(t *testing.T) {
	tt := lvgltest.New(t)
	area := lvgl.NewArea(tt.Root(), "area", 10, 20).
		SetInfo("group").
		SetSize(200, 100).
		SetBorder(2, lvgl.PaletteRed.Color()).
		SetPadding(1, 2, 3, 4).
		SetColor(lvgl.PaletteBlue.Color()).
		SetBackground(lvgl.PaletteGrey.Color()).
		SetRadius()

	assert.Equal(t, "group", area.Info())
	st := tt.Object(area)
	assert.Equal(t, int16(200), st.Width)
	assert.Equal(t, int16(100), st.Height)
	assert.Equal(t, native.RadiusCircle, st.Local[native.PropRadius])

	style, ok := tt.Lib.StyleOf(area.Style())
	require.True(t, ok)
	assert.Equal(t, int32(2), style.Props[native.PropBorderWidth])
	assert.Equal(t, lvgl.PaletteRed.Color(), style.Props[native.PropBorderColor])
	assert.Equal(t, int32(1), style.Props[native.PropPadTop])
	assert.Equal(t, int32(2), style.Props[native.PropPadBottom])
	assert.Equal(t, int32(3), style.Props[native.PropPadRight])
	assert.Equal(t, int32(4), style.Props[native.PropPadLeft])
	assert.Equal(t, lvgl.PaletteBlue.Color(), style.Props[native.PropTextColor])
	assert.Equal(t, lvgl.PaletteGrey.Color(), style.Props[native.PropBgColor])
	assert.Equal(t, int32(native.Opa50), style.Props[native.PropBgOpa])

	area.SetDisable(true)
	assert.True(t, area.States().Has(native.StateDisabled))
	area.SetDisable(false)
	assert.False(t, area.States().Has(native.StateDisabled))
}

func TestSetTitle(t *testing.T) {
	tt := lvgltest.New(t)
	before := tt.Lib.ObjectCount()
	led := lvgl.NewLed(tt.Root(), "led", 805, 5).SetTitle("Led", 0, 5, lvgl.FontStd12)

	assert.Equal(t, before+2, tt.Lib.ObjectCount(), "led and caption")
	screen, ok := tt.Lib.Object(tt.Root().Handle())
	require.True(t, ok)
	caption, ok := tt.Lib.Object(screen.Children[len(screen.Children)-1])
	require.True(t, ok)
	assert.Equal(t, "Led", caption.Text)
	assert.Equal(t, led.Handle(), caption.AlignBase)
	assert.Equal(t, native.AlignBottomLeft, caption.Align)
	assert.Equal(t, int16(5), caption.Y)
}

func TestLed(t *testing.T) {
	tt := lvgltest.New(t)
	led := lvgl.NewLed(tt.Root(), "led", 0, 0)
	assert.False(t, tt.Object(led).LedOn)

	led.SetOn(true).SetColor(lvgl.PaletteGreen.Color()).SetBrightness(120)
	st := tt.Object(led)
	assert.True(t, st.LedOn)
	assert.Equal(t, lvgl.PaletteGreen.Color(), st.LedColor)
	assert.Equal(t, uint8(120), led.Brightness())
}

func TestLineArcBar(t *testing.T) {
	tt := lvgltest.New(t)

	pts := []lvgl.Point{{X: 5, Y: 5}, {X: 70, Y: 70}, {X: 120, Y: 10}}
	line := lvgl.NewLine(tt.Root(), "line", 0, 0).SetPoints(pts).SetWidth(8).SetRounded(true)
	pts[0].X = 99
	assert.Equal(t, int16(5), line.Points()[0].X, "points are copied")
	assert.Equal(t, int16(5), tt.Object(line).Points[0].X)
	style, _ := tt.Lib.StyleOf(line.Style())
	assert.Equal(t, int32(8), style.Props[native.PropLineWidth])
	assert.Equal(t, int32(1), style.Props[native.PropLineRounded])

	arc := lvgl.NewArc(tt.Root(), "arc", 135, 45, 0, 0).SetRange(0, 200).SetRotation(90).SetValue(150)
	assert.Equal(t, int32(150), arc.Value())
	arc.SetValue(1 << 20)
	assert.Equal(t, int32(200), arc.Value(), "saturated then clamped to range")
	st := tt.Object(arc)
	assert.Equal(t, uint16(135), st.BgStart)
	assert.Equal(t, uint16(45), st.BgEnd)
	assert.Equal(t, uint16(90), st.Rotation)
	assert.Zero(t, st.Flags&native.FlagClickable)
	arc.RemoveKnob()
	assert.Empty(t, tt.Object(arc).Styles)

	bar := lvgl.NewBar(tt.Root(), "bar", -10, 10, 0, 0).SetValue(5)
	assert.Equal(t, int32(5), bar.Value())
	bar.SetValueAnimated(50)
	assert.Equal(t, int32(10), bar.Value())
	bar.SetGradient(true, lvgl.PaletteRed.Color(), lvgl.PaletteGrey.Color())
	style, _ = tt.Lib.StyleOf(bar.Style())
	assert.Equal(t, int32(native.GradVer), style.Props[native.PropBgGradDir])
}

func TestMeter(t *testing.T) {
	tt := lvgltest.New(t)
	m := lvgl.NewMeter(tt.Root(), "meter", 4, -10, lvgl.PaletteGrey.Color(), 0, 0).
		SetTicks(2, 10, 41, 10, 8, lvgl.PaletteGrey.Color(), lvgl.RGB(0, 0, 0)).
		SetZone(0, 20, 3, lvgl.PaletteBlue.Color()).
		SetZone(80, 100, 3, lvgl.PaletteRed.Color()).
		SetValue(42)

	v, _, _ := tt.Lib.IndicatorValue(m.Needle())
	assert.Equal(t, int32(42), v)
	zones := m.Zones()
	require.Len(t, zones, 4)
	_, start, end := tt.Lib.IndicatorValue(zones[2])
	assert.Equal(t, int32(80), start)
	assert.Equal(t, int32(100), end)
}

func TestQrcode(t *testing.T) {
	tt := lvgltest.New(t)
	qr := lvgl.NewQrcode(tt.Root(), "qr", lvgl.RGB(0, 0, 0), lvgl.RGB(255, 255, 255), 100, 0, 0).
		SetText("https://lvgl.io")
	assert.Equal(t, []byte("https://lvgl.io"), qr.Value())
	assert.Equal(t, int16(100), tt.Object(qr).QrSize)

	tt.Lib.QrcodeLimit = 4
	err := qr.Update([]byte("too long"))
	require.Error(t, err)
	assert.ErrorIs(t, err, native.ErrQrcodeUpdate)
	assert.Contains(t, err.Error(), "widget=qr")
	assert.Equal(t, []byte("https://lvgl.io"), qr.Value(), "previous payload kept")

	assert.NoError(t, qr.Update([]byte("ok")))
}

func TestImgButton(t *testing.T) {
	tt := lvgltest.New(t)
	btn := lvgl.NewImgButton(tt.Root(), "ib", "Go", 0, 0, lvgl.PaletteBlue.Color(), 200, 50).
		SetSources("left.png", "mid.png", "")

	st := tt.Object(btn)
	want := [3]string{"L:left.png", "L:mid.png", ""}
	assert.Equal(t, want, st.ImgbtnSrcs[native.ImgbtnReleased])
	assert.Equal(t, want, st.ImgbtnSrcs[native.ImgbtnPressed])
	require.Len(t, st.Children, 1)
	label, _ := tt.Lib.Object(st.Children[0])
	assert.Equal(t, "Go", label.Text)

	rec := &lvgltest.Recorder{}
	btn.SetCallback(rec)
	tt.Click(btn)
	assert.Equal(t, []lvgl.Event{lvgl.EventPressed}, rec.Kinds())
}

func TestPixmapAndPixButton(t *testing.T) {
	tt := lvgltest.New(t)
	pm := lvgl.NewPixmap(tt.Root(), "pm", lvgl.IconWifi, 0, 0).SetAngle(450).SetZoom(512)
	st := tt.Object(pm)
	assert.Equal(t, string(lvgl.IconWifi), st.Src)
	assert.Equal(t, int16(450), st.Angle)
	assert.Equal(t, uint16(512), st.Zoom)

	pb := lvgl.NewPixButton(tt.Root(), "pb", 0, 0).SetValue(lvgl.IconBell)
	img, ok := tt.Lib.Object(pb.ImageHandle())
	require.True(t, ok)
	assert.Equal(t, string(lvgl.IconBell), img.Src)
}

func TestKindActions(t *testing.T) {
	assert.Equal(t, []string{"ON", "OFF"}, lvgl.KindLed.Actions())
	assert.Nil(t, lvgl.KindLabel.Actions())
	assert.Equal(t, "ImgButton", lvgl.KindImgButton.String())
	assert.Equal(t, "Unknown", lvgl.Kind(200).String())
}
