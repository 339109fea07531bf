package platform

// Hub fans viewport-level events out to subscribers. Subscriptions are
// scoped: the cancel func returned by Subscribe must be called once the
// subscriber no longer wants events. Like the rest of the UI state it is
// driven from the single event loop and is not safe for concurrent use.
type Hub struct {
	nextID uint64
	subs   []subscription
}

type Handler func(Event)

type subscription struct {
	id      uint64
	typ     EventType
	handler Handler
}

func NewHub() *Hub { return &Hub{} }

func (h *Hub) Subscribe(typ EventType, fn Handler) (cancel func()) {
	h.nextID++
	id := h.nextID
	h.subs = append(h.subs, subscription{id: id, typ: typ, handler: fn})
	return func() { h.remove(id) }
}

// Dispatch delivers ev to the subscribers registered for its type at the time
// of the call. A handler may cancel its own or other subscriptions.
func (h *Hub) Dispatch(ev Event) int {
	targets := make([]subscription, 0, len(h.subs))
	for _, s := range h.subs {
		if s.typ == ev.Type {
			targets = append(targets, s)
		}
	}
	delivered := 0
	for _, s := range targets {
		if !h.active(s.id) {
			continue
		}
		s.handler(ev)
		delivered++
	}
	return delivered
}

// Len is the number of live subscriptions.
func (h *Hub) Len() int { return len(h.subs) }

func (h *Hub) active(id uint64) bool {
	for _, s := range h.subs {
		if s.id == id {
			return true
		}
	}
	return false
}

func (h *Hub) remove(id uint64) {
	for i, s := range h.subs {
		if s.id == id {
			h.subs = append(h.subs[:i], h.subs[i+1:]...)
			return
		}
	}
}
