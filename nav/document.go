package nav

import (
	"sort"
	"sync"
)

// EventType identifies the kind of browser event forwarded to a Document
type EventType string

const (
	EventScroll     EventType = "scroll"
	EventResize     EventType = "resize"
	EventClick      EventType = "click"
	EventKeyDown    EventType = "keydown"
	EventMouseLeave EventType = "mouseleave"
)

// Valid reports whether t is an event type the navigation listens for
func (t EventType) Valid() bool {
	switch t {
	case EventScroll, EventResize, EventClick, EventKeyDown, EventMouseLeave:
		return true
	}
	return false
}

// Key names as reported by KeyboardEvent.key
const (
	KeyEscape = "Escape"
	KeyTab    = "Tab"
)

// Event is a single forwarded DOM event.
// Target is the id of the region the event happened in ("" means the page body).
type Event struct {
	Type    EventType `json:"type" msgpack:"type"`
	Key     string    `json:"key,omitempty" msgpack:"key,omitempty"`
	Shift   bool      `json:"shift,omitempty" msgpack:"shift,omitempty"`
	Target  string    `json:"target,omitempty" msgpack:"target,omitempty"`
	ScrollY int       `json:"scroll_y,omitempty" msgpack:"scroll_y,omitempty"`
	Width   int       `json:"width,omitempty" msgpack:"width,omitempty"`
}

// Listener handles a dispatched event
type Listener func(Event)

// Document stands in for the browser document of one visitor.
// It owns the event listeners, root attributes, keyboard focus and the scroll lock.
type Document struct {
	mu        sync.Mutex
	listeners map[EventType]map[int]Listener
	nextID    int
	attrs     map[string]string
	focused   string
	lock      *ScrollLock
}

// NewDocument returns an empty document with an unlocked scroll lock
func NewDocument() *Document {
	return &Document{
		listeners: make(map[EventType]map[int]Listener),
		attrs:     make(map[string]string),
		lock:      &ScrollLock{},
	}
}

// AddListener registers l for events of type t.
// The returned func detaches it; calling it more than once is harmless.
func (d *Document) AddListener(t EventType, l Listener) (remove func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := d.nextID
	d.nextID++
	if d.listeners[t] == nil {
		d.listeners[t] = make(map[int]Listener)
	}
	d.listeners[t][id] = l

	var once sync.Once
	return func() {
		once.Do(func() {
			d.mu.Lock()
			defer d.mu.Unlock()
			delete(d.listeners[t], id)
		})
	}
}

// ListenerCount returns the number of attached listeners across all event types
func (d *Document) ListenerCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := 0
	for _, ls := range d.listeners {
		n += len(ls)
	}
	return n
}

// Dispatch delivers e to the listeners registered for its type, in registration order.
// Listeners run outside the document lock so they may add or remove listeners.
func (d *Document) Dispatch(e Event) {
	d.mu.Lock()
	ids := make([]int, 0, len(d.listeners[e.Type]))
	for id := range d.listeners[e.Type] {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	ls := make([]Listener, 0, len(ids))
	for _, id := range ids {
		ls = append(ls, d.listeners[e.Type][id])
	}
	d.mu.Unlock()

	for _, l := range ls {
		l(e)
	}
}

// SetAttribute sets a root-level attribute such as data-theme
func (d *Document) SetAttribute(name, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.attrs[name] = value
}

// Attribute returns a root-level attribute, "" when unset
func (d *Document) Attribute(name string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.attrs[name]
}

// Focus moves keyboard focus to the element with the given id
func (d *Document) Focus(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.focused = id
}

// Focused returns the id of the focused element
func (d *Document) Focused() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.focused
}

// ScrollLock returns the document's shared scroll lock
func (d *Document) ScrollLock() *ScrollLock {
	return d.lock
}
