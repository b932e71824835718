package font

import "sync"

// Handle identifies a font in a Library. The zero Handle never refers to a font.
type Handle uint32

// Source looks fonts up by handle. A missing handle is not an error:
// elements using it are skipped for the cycle.
type Source interface {
	Font(h Handle) (*Font, bool)
}

// Library is a handle-indexed font store.
//
// Library is safe for concurrent use.
type Library struct {
	mu    sync.RWMutex
	fonts map[Handle]*Font
	next  Handle
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{
		fonts: make(map[Handle]*Font),
	}
}

// Add stores f and returns its handle. Handles are never reused.
func (l *Library) Add(f *Font) Handle {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.next++
	l.fonts[l.next] = f
	return l.next
}

// Remove deletes the font with the given handle.
// It reports whether the handle was present.
func (l *Library) Remove(h Handle) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.fonts[h]; !ok {
		return false
	}
	delete(l.fonts, h)
	return true
}

// Font implements Source.
func (l *Library) Font(h Handle) (*Font, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	f, ok := l.fonts[h]
	return f, ok
}

// Len returns the number of stored fonts.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.fonts)
}
