// Package lvgl exposes the LVGL v8 widget toolkit to Go.
//
// A program initializes one [Display], builds widgets on its [Root] and
// hands the calling goroutine to the display loop:
//
//	d, err := lvgl.Init(lvgl.Config{})
//	if err != nil {
//	    return err
//	}
//	btn := lvgl.NewButton(d.Root(), "ok", lvgl.FontStd22, 450, 200).
//	    SetValue("OK").
//	    SetSize(160, 60)
//	btn.SetCallbackFunc(func(w lvgl.Widget, uid string, ev lvgl.Event) {
//	    log.Printf("%s %s", uid, ev)
//	})
//	return d.Run(ctx)
//
// # Widgets
//
// Every wrapper embeds the same set of chainable setters (size, colors,
// border, padding, title, background, callback) and adds its own. Widgets
// live for the life of the process: LVGL objects, styles and the Go
// wrappers are never freed, and the token each wrapper is registered under
// is never reused.
//
// # Events
//
// Native events are mapped to [Event] values and filtered per widget kind
// before they reach a [Handler]. Buttons and LEDs forward [EventPressed],
// switches and bars forward [EventValueChanged], other kinds forward
// nothing. A widget accepts one handler; later SetCallback calls are
// ignored.
//
// # Threads
//
// LVGL is single threaded. The goroutine running [Display.Run] owns the
// display; handlers and tickers run on it. Other goroutines submit work
// with [Display.Post].
//
// # Backends
//
// Without build tags the package runs on [native.Headless]. Build with
// "-tags lvgl" to link liblvgl with the framebuffer and evdev drivers, or
// "-tags lvgl,gtk" for the GTK simulator.
package lvgl
