package lvgl

import (
	"sync"

	"github.com/go-lvgl/lvgl/pkg/native"
)

// arena owns every wrapper and style block for the process lifetime. The
// token it hands out is the native event user data, so tokens are never
// reused.
type arena struct {
	mu      sync.RWMutex
	next    uintptr
	widgets map[uintptr]Widget
	order   []Widget
	styles  []native.Style
}

func newArena() *arena {
	return &arena{next: 1, widgets: make(map[uintptr]Widget)}
}

func (a *arena) add(w Widget) uintptr {
	a.mu.Lock()
	defer a.mu.Unlock()
	id := a.next
	a.next++
	a.widgets[id] = w
	a.order = append(a.order, w)
	return id
}

func (a *arena) lookup(id uintptr) (Widget, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	w, ok := a.widgets[id]
	return w, ok
}

func (a *arena) addStyle(s native.Style) {
	a.mu.Lock()
	a.styles = append(a.styles, s)
	a.mu.Unlock()
}

func (a *arena) all() []Widget {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]Widget, len(a.order))
	copy(out, a.order)
	return out
}

func (a *arena) styleCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.styles)
}

func (a *arena) find(uid string) (Widget, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, w := range a.order {
		if w.UID() == uid {
			return w, true
		}
	}
	return nil, false
}
