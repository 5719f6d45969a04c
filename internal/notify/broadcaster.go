package notify

import "sync"

// Broadcaster fans change signals out to any number of subscribers,
// typically one per open dashboard stream. Signals carry no payload:
// every subscriber reacts by re-reading everything.
type Broadcaster struct {
	mu   sync.Mutex
	subs map[chan struct{}]struct{}
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subs: make(map[chan struct{}]struct{}),
	}
}

// Subscribe returns a signal channel and a cancel func that must be
// called on teardown.
func (b *Broadcaster) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		delete(b.subs, ch)
		b.mu.Unlock()
	}
	return ch, cancel
}

// Notify signals every subscriber. A subscriber that already has a
// pending signal is not signalled twice; it will recompute anyway.
func (b *Broadcaster) Notify() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
