package native

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadlessClick(t *testing.T) {
	press := []EventCode{1, 8, 4, 7}
	tests := []struct {
		name        string
		kind        Kind
		disabled    bool
		wantCodes   []EventCode
		wantChecked bool
	}{
		{name: "button", kind: KindButton, wantCodes: press},
		{name: "switch toggles", kind: KindSwitch, wantCodes: append(press[:4:4], 28), wantChecked: true},
		{name: "disabled button", kind: KindButton, disabled: true},
		{name: "disabled switch", kind: KindSwitch, disabled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHeadless()
			h.Init()
			var got []EventCode
			h.SetEventSink(func(token uintptr, code EventCode) {
				assert.Equal(t, uintptr(7), token)
				got = append(got, code)
			})

			o := h.Create(tt.kind, h.ScreenActive())
			h.AddEventCallback(o, 7)
			if tt.disabled {
				h.AddState(o, StateDisabled)
			}

			h.Click(o)
			assert.Equal(t, tt.wantCodes, got)
			assert.Equal(t, tt.wantChecked, h.State(o).Has(StateChecked))
		})
	}
}

func TestHeadlessClickTogglesBack(t *testing.T) {
	h := NewHeadless()
	h.Init()
	o := h.Create(KindSwitch, h.ScreenActive())

	h.Click(o)
	require.True(t, h.State(o).Has(StateChecked))
	h.Click(o)
	assert.False(t, h.State(o).Has(StateChecked))
}

func TestHeadlessEmitWithoutSink(t *testing.T) {
	h := NewHeadless()
	h.Init()
	o := h.Create(KindButton, h.ScreenActive())
	h.AddEventCallback(o, 1)

	assert.NotPanics(t, func() {
		h.Emit(o, 1)
		h.Click(o)
		h.Emit(Obj(0xdead), 1)
	})
}
