package lvgl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-lvgl/lvgl/pkg/lvgl"
	"github.com/go-lvgl/lvgl/pkg/native"
)

func TestEventFromCode(t *testing.T) {
	known := map[native.EventCode]lvgl.Event{
		1:  lvgl.EventPressed,
		2:  lvgl.EventPressing,
		3:  lvgl.EventPressLost,
		4:  lvgl.EventShortClicked,
		5:  lvgl.EventLongPressed,
		6:  lvgl.EventLongPressedRepeat,
		7:  lvgl.EventClicked,
		8:  lvgl.EventReleased,
		14: lvgl.EventFocused,
		15: lvgl.EventDefocused,
		16: lvgl.EventLeave,
		28: lvgl.EventValueChanged,
	}
	for code := native.EventCode(0); code < 64; code++ {
		want, ok := known[code]
		if !ok {
			want = lvgl.EventUnknown
		}
		assert.Equal(t, want, lvgl.EventFromCode(code), "code %d", code)
	}
	assert.Equal(t, lvgl.EventUnknown, lvgl.EventFromCode(0xFFFF))
}

func TestEventCodeRoundTrip(t *testing.T) {
	for _, ev := range lvgl.Events() {
		if ev == lvgl.EventUnknown {
			assert.Zero(t, ev.Code())
			continue
		}
		assert.Equal(t, ev, lvgl.EventFromCode(ev.Code()), ev.String())
	}
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "pressed", lvgl.EventPressed.String())
	assert.Equal(t, "value_changed", lvgl.EventValueChanged.String())
	assert.Equal(t, "unknown", lvgl.Event(99).String())
	assert.Len(t, lvgl.Events(), 13)
}
