package page

import "sync"

// Lifecycle runs page-hide hooks exactly once
type Lifecycle struct {
	mu     sync.Mutex
	hooks  []func()
	hidden bool
}

// OnPageHide registers fn; hooks added after hide run immediately
func (l *Lifecycle) OnPageHide(fn func()) {
	l.mu.Lock()
	if l.hidden {
		l.mu.Unlock()
		fn()
		return
	}
	l.hooks = append(l.hooks, fn)
	l.mu.Unlock()
}

// PageHide runs every hook in registration order; later calls do nothing
func (l *Lifecycle) PageHide() {
	l.mu.Lock()
	if l.hidden {
		l.mu.Unlock()
		return
	}
	l.hidden = true
	hooks := l.hooks
	l.hooks = nil
	l.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
}

// Hidden reports whether PageHide has run
func (l *Lifecycle) Hidden() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.hidden
}
