package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBroadcasterFanOut(t *testing.T) {
	b := NewBroadcaster()

	first, cancelFirst := b.Subscribe()
	second, cancelSecond := b.Subscribe()
	defer cancelFirst()
	defer cancelSecond()

	b.Notify()

	assert.Len(t, first, 1)
	assert.Len(t, second, 1)
}

func TestBroadcasterCoalescesSignals(t *testing.T) {
	b := NewBroadcaster()

	ch, cancel := b.Subscribe()
	defer cancel()

	b.Notify()
	b.Notify()
	b.Notify()

	// A pending signal is never stacked; one drain covers any burst.
	assert.Len(t, ch, 1)
	<-ch
	assert.Len(t, ch, 0)

	b.Notify()
	assert.Len(t, ch, 1)
}

func TestBroadcasterCancelRemovesSubscriber(t *testing.T) {
	b := NewBroadcaster()

	gone, cancelGone := b.Subscribe()
	kept, cancelKept := b.Subscribe()
	defer cancelKept()

	cancelGone()
	b.Notify()

	assert.Len(t, gone, 0)
	assert.Len(t, kept, 1)
}

func TestBroadcasterNotifyWithoutSubscribers(t *testing.T) {
	b := NewBroadcaster()

	assert.NotPanics(t, func() {
		b.Notify()
	})
}
