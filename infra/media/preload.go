package media

import (
	"sync"

	"github.com/reelfeed/reelfeed/player"
)

// PreloadLoader opens detached, muted, non-visual surfaces that buffer
// a URL without mounting playback. It implements player.Loader.
type PreloadLoader struct {
	mu     sync.Mutex
	policy AutoplayPolicy
	opened int
	active int
}

func NewPreloadLoader(policy AutoplayPolicy) *PreloadLoader {
	return &PreloadLoader{policy: policy}
}

// Open creates a preload handle for url. The handle starts buffering
// immediately and holds its bytes until released.
func (l *PreloadLoader) Open(url string) (player.Handle, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.opened++
	l.active++
	s := NewSurface(url, l.policy, 0)
	s.BeginLoad()
	return &preloadHandle{loader: l, surface: s}, nil
}

// ActiveCount reports currently open preload handles.
func (l *PreloadLoader) ActiveCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active
}

type preloadHandle struct {
	loader  *PreloadLoader
	surface *Surface
	once    sync.Once
}

// Release stops loading, clears the source, and discards the buffer.
func (h *preloadHandle) Release() {
	h.once.Do(func() {
		h.surface.CancelLoad()
		h.surface.ClearSource()
		h.loader.mu.Lock()
		h.loader.active--
		h.loader.mu.Unlock()
	})
}
