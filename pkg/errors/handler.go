package errors

import (
	"strings"
	"sync"
	"time"

	goerrors "github.com/go-errors/errors"
)

var (
	// DefaultHandler receives everything passed to Report and ReportPanic.
	// Replace it with SetHandler.
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler installs h as the process-wide handler. A nil h reinstalls a
// LogHandler on slog.Default.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	DefaultHandler = h
	handlerMu.Unlock()
}

func currentHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report hands err to the installed handler, stamping it first when it
// carries no timestamp. A nil err is ignored.
func Report(err *LvglError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := currentHandler(); h != nil {
		h.HandleError(err)
	}
}

// ReportPanic hands a recovered panic to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := currentHandler(); h != nil {
		h.HandlePanic(err)
	}
}

// Recover reports a panic in progress and stops it. It must be deferred
// directly:
//
//	defer errors.Recover("lvgl.dispatch")
func Recover(op string) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
	}
}

// RecoverWithCallback is Recover followed by fn(r) when a panic was
// stopped. fn may be nil.
func RecoverWithCallback(op string, fn func(r any)) {
	r := recover()
	if r == nil {
		return
	}
	reportRecovered(op, r)
	if fn != nil {
		fn(r)
	}
}

func reportRecovered(op string, r any) {
	ReportPanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: panicStack(r),
		Timestamp:  time.Now(),
	})
}

// CaptureStack returns the caller's stack as a string.
func CaptureStack() string {
	return string(goerrors.Wrap("stack", 1).Stack())
}

// panicStack skips reportRecovered, the deferred Recover frame and the
// runtime panic frame.
func panicStack(r any) string {
	return strings.TrimSpace(string(goerrors.Wrap(r, 4).Stack()))
}
