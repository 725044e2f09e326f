//go:build !lvgl || !cgo

package native

import "sync"

var (
	defaultOnce     sync.Once
	defaultHeadless *Headless
)

// Default returns the library linked into this binary. Without the "lvgl"
// build tag that is a process-wide Headless tree.
func Default() Library {
	defaultOnce.Do(func() { defaultHeadless = NewHeadless() })
	return defaultHeadless
}
