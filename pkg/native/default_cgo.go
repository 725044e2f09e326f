//go:build lvgl && cgo

package native

// Default returns the library linked into this binary.
func Default() Library { return Linked() }
