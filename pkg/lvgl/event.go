package lvgl

import "github.com/go-lvgl/lvgl/pkg/native"

// Event is the semantic kind of a native input event.
type Event uint8

const (
	EventUnknown Event = iota
	EventPressed
	EventPressing
	EventPressLost
	EventShortClicked
	EventLongPressed
	EventLongPressedRepeat
	EventClicked
	EventReleased
	EventFocused
	EventDefocused
	EventLeave
	EventValueChanged
)

// Events lists every semantic event kind, EventUnknown included.
func Events() []Event {
	return []Event{
		EventUnknown,
		EventPressed,
		EventPressing,
		EventPressLost,
		EventShortClicked,
		EventLongPressed,
		EventLongPressedRepeat,
		EventClicked,
		EventReleased,
		EventFocused,
		EventDefocused,
		EventLeave,
		EventValueChanged,
	}
}

// Native event codes of LVGL v8.
const (
	codePressed           native.EventCode = 1
	codePressing          native.EventCode = 2
	codePressLost         native.EventCode = 3
	codeShortClicked      native.EventCode = 4
	codeLongPressed       native.EventCode = 5
	codeLongPressedRepeat native.EventCode = 6
	codeClicked           native.EventCode = 7
	codeReleased          native.EventCode = 8
	codeFocused           native.EventCode = 14
	codeDefocused         native.EventCode = 15
	codeLeave             native.EventCode = 16
	codeValueChanged      native.EventCode = 28
)

// EventFromCode maps a native event code. Every code not listed maps to
// EventUnknown.
func EventFromCode(code native.EventCode) Event {
	switch code {
	case codePressed:
		return EventPressed
	case codePressing:
		return EventPressing
	case codePressLost:
		return EventPressLost
	case codeShortClicked:
		return EventShortClicked
	case codeLongPressed:
		return EventLongPressed
	case codeLongPressedRepeat:
		return EventLongPressedRepeat
	case codeClicked:
		return EventClicked
	case codeReleased:
		return EventReleased
	case codeFocused:
		return EventFocused
	case codeDefocused:
		return EventDefocused
	case codeLeave:
		return EventLeave
	case codeValueChanged:
		return EventValueChanged
	default:
		return EventUnknown
	}
}

// Code returns the native code for e, or 0 for EventUnknown.
func (e Event) Code() native.EventCode {
	switch e {
	case EventPressed:
		return codePressed
	case EventPressing:
		return codePressing
	case EventPressLost:
		return codePressLost
	case EventShortClicked:
		return codeShortClicked
	case EventLongPressed:
		return codeLongPressed
	case EventLongPressedRepeat:
		return codeLongPressedRepeat
	case EventClicked:
		return codeClicked
	case EventReleased:
		return codeReleased
	case EventFocused:
		return codeFocused
	case EventDefocused:
		return codeDefocused
	case EventLeave:
		return codeLeave
	case EventValueChanged:
		return codeValueChanged
	default:
		return 0
	}
}

func (e Event) String() string {
	switch e {
	case EventPressed:
		return "pressed"
	case EventPressing:
		return "pressing"
	case EventPressLost:
		return "press_lost"
	case EventShortClicked:
		return "short_clicked"
	case EventLongPressed:
		return "long_pressed"
	case EventLongPressedRepeat:
		return "long_pressed_repeat"
	case EventClicked:
		return "clicked"
	case EventReleased:
		return "released"
	case EventFocused:
		return "focused"
	case EventDefocused:
		return "defocused"
	case EventLeave:
		return "leave"
	case EventValueChanged:
		return "value_changed"
	default:
		return "unknown"
	}
}

// eventSet is a bitmask over Event.
type eventSet uint32

func eventsOf(events ...Event) eventSet {
	var s eventSet
	for _, e := range events {
		s |= 1 << e
	}
	return s
}

func (s eventSet) has(e Event) bool { return s&(1<<e) != 0 }

// Handler receives the events a widget forwards after filtering.
type Handler interface {
	HandleEvent(w Widget, uid string, ev Event)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(w Widget, uid string, ev Event)

func (f HandlerFunc) HandleEvent(w Widget, uid string, ev Event) { f(w, uid, ev) }
