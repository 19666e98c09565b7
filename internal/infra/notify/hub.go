package notify

import (
	"sync"

	"github.com/google/uuid"
)

// Event describes a data change on a wishlist or one of its rows.
type Event struct {
	WishlistID uuid.UUID `json:"wishlist_id"`
	Table      string    `json:"table"`
	Op         string    `json:"op"`
}

// Hub fans database change events out to per-wishlist subscribers. Slow
// subscribers are skipped rather than blocking the listener loop.
type Hub struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[uuid.UUID]map[chan Event]struct{}),
	}
}

const subscriberBuffer = 8

// Subscribe registers interest in one wishlist. The returned cancel func must
// be called when the subscriber goes away.
func (h *Hub) Subscribe(wishlistID uuid.UUID) (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	set, ok := h.subs[wishlistID]
	if !ok {
		set = make(map[chan Event]struct{})
		h.subs[wishlistID] = set
	}
	set[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if set, ok := h.subs[wishlistID]; ok {
			delete(set, ch)
			if len(set) == 0 {
				delete(h.subs, wishlistID)
			}
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

func (h *Hub) Publish(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs[ev.WishlistID] {
		select {
		case ch <- ev:
		default:
			// Buffer full, drop for this subscriber.
		}
	}
}

// SubscriberCount reports the number of active subscribers for a wishlist.
func (h *Hub) SubscriberCount(wishlistID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[wishlistID])
}
