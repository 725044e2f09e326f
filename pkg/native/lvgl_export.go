//go:build lvgl && cgo

package native

/*
#include <stdint.h>
*/
import "C"

// lvglGoEvent is reached from the C event trampoline. It runs on the thread
// calling lv_timer_handler and must never let a panic unwind into C; the
// sink installed by the lvgl package recovers.
//
//export lvglGoEvent
func lvglGoEvent(token C.uintptr_t, code C.uint32_t) {
	dispatchNative(uintptr(token), EventCode(code))
}
