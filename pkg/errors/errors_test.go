package errors

import (
	"bytes"
	stderrors "errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestLvglErrorString(t *testing.T) {
	err := &LvglError{
		Op:   "lvgl.Init",
		Kind: KindInit,
		Err:  stderrors.New("no framebuffer"),
	}
	want := "lvgl.Init [init]: no framebuffer"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestLvglErrorWithWidget(t *testing.T) {
	err := &LvglError{
		Op:     "lvgl.Qrcode.Update",
		Kind:   KindNative,
		Widget: "qr-1",
		Err:    stderrors.New("payload too large"),
	}
	got := err.Error()
	if !strings.Contains(got, "widget=qr-1") {
		t.Errorf("error string %q should contain widget uid", got)
	}
}

func TestLvglErrorUnwrap(t *testing.T) {
	cause := stderrors.New("cause")
	err := New("op", KindConfig, cause)
	if !stderrors.Is(err, cause) {
		t.Errorf("errors.Is(%v, cause) = false", err)
	}
	var le *LvglError
	if !stderrors.As(err, &le) || le.Kind != KindConfig {
		t.Errorf("errors.As did not yield a config LvglError: %#v", err)
	}
	if New("op", KindConfig, nil) != nil {
		t.Error("New with nil error should return nil")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindNative, "native"},
		{KindInit, "init"},
		{KindConfig, "config"},
		{KindText, "text"},
		{KindTime, "time"},
		{KindEvent, "event"},
		{KindPanic, "panic"},
		{ErrorKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "boom"}
	if got, want := err.Error(), "panic: boom"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
	err.Op = "lvgl.dispatch"
	if got, want := err.Error(), "panic in lvgl.dispatch: boom"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *LvglError
	SetHandler(&testHandler{onError: func(err *LvglError) { captured = err }})
	defer SetHandler(nil)

	Report(&LvglError{Op: "test.op", Kind: KindText, Err: stderrors.New("bad")})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
	Report(nil)
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(nil)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
	if captured.StackTrace == "" {
		t.Error("expected a stack trace")
	}
}

func TestRecoverWithCallback(t *testing.T) {
	SetHandler(&testHandler{})
	defer SetHandler(nil)

	var got any
	func() {
		defer RecoverWithCallback("test.callback", func(r any) { got = r })
		panic(42)
	}()
	if got != 42 {
		t.Errorf("callback value = %v, want 42", got)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if !strings.Contains(stack, "TestCaptureStack") {
		t.Errorf("stack trace should contain the calling test, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Logger: slog.New(slog.NewTextHandler(&buf, nil)), Verbose: true}

	h.HandleError(&LvglError{
		Op:         "lvgl.Init",
		Kind:       KindInit,
		Widget:     "root",
		Err:        stderrors.New("no display"),
		StackTrace: "frame",
		Timestamp:  time.Now(),
	})
	h.HandlePanic(&PanicError{Op: "lvgl.dispatch", Value: "boom"})
	h.HandleError(nil)
	h.HandlePanic(nil)

	out := buf.String()
	for _, want := range []string{"lvgl error", "op=lvgl.Init", "kind=init", "widget=root", "stack=frame", "lvgl panic", "value=boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q should contain %q", out, want)
		}
	}
}

type testHandler struct {
	onError func(*LvglError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *LvglError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
