package player

// Handle is one detached, muted, non-visual buffering handle opened by
// a Loader. Release stops loading and discards the buffer.
type Handle interface {
	Release()
}

// Loader opens preload handles for media URLs.
type Loader interface {
	Open(url string) (Handle, error)
}

// Pool prefetches video bytes ahead of display without mounting
// playback. At most one handle is open per URL; handles are released as
// soon as their item leaves the preload radius. The preloaded flag is a
// cache hint only and never gates playback.
type Pool struct {
	loader Loader
	open   map[string]Handle
	loaded map[string]bool
}

// NewPool creates an empty pool over the given loader.
func NewPool(loader Loader) *Pool {
	return &Pool{
		loader: loader,
		open:   make(map[string]Handle),
		loaded: make(map[string]bool),
	}
}

// Ensure reconciles the pool with the desired preload state for url.
// Turning want on opens a handle unless one is already in flight;
// turning it off releases the handle and drops its buffer.
func (p *Pool) Ensure(url string, want bool) {
	if url == "" {
		return
	}
	if !want {
		p.release(url)
		return
	}
	if _, ok := p.open[url]; ok {
		return
	}
	h, err := p.loader.Open(url)
	if err != nil {
		// Preloading is best effort: the item stays playable on demand.
		return
	}
	p.open[url] = h
}

// MarkLoaded records first data arrival for url. Arrival after the
// handle was released is dropped.
func (p *Pool) MarkLoaded(url string) {
	if _, ok := p.open[url]; !ok {
		return
	}
	p.loaded[url] = true
}

// Preloaded reports whether url's bytes have arrived. Advisory only.
func (p *Pool) Preloaded(url string) bool { return p.loaded[url] }

// InFlight reports whether a handle is currently open for url.
func (p *Pool) InFlight(url string) bool {
	_, ok := p.open[url]
	return ok
}

// OpenCount returns the number of open handles.
func (p *Pool) OpenCount() int { return len(p.open) }

// Close releases every open handle, for owner teardown.
func (p *Pool) Close() {
	for url := range p.open {
		p.release(url)
	}
}

func (p *Pool) release(url string) {
	h, ok := p.open[url]
	if !ok {
		return
	}
	h.Release()
	delete(p.open, url)
	delete(p.loaded, url)
}
