package ecs

// Event is a window or device event delivered through the world's
// EventChannel.
type Event interface {
	isEvent()
}

// DeviceMotion is a raw pointer delta in device units. It is reported
// independently of the cursor position and keeps arriving while the cursor
// is grabbed.
type DeviceMotion struct {
	DX float64
	DY float64
}

// WindowFocusChanged reports that the window gained or lost input focus.
type WindowFocusChanged struct {
	Focused bool
}

func (DeviceMotion) isEvent()       {}
func (WindowFocusChanged) isEvent() {}

// ReaderID is a read position into an EventChannel. Each reader sees every
// event written after it was registered exactly once.
type ReaderID struct {
	slot int
}

// EventChannel is an append-only broadcast log. Readers advance their own
// positions; events are dropped once every registered reader has seen them.
type EventChannel[E any] struct {
	events  []E
	base    uint64
	readers []uint64
	active  []bool
}

func NewEventChannel[E any]() *EventChannel[E] {
	return &EventChannel[E]{}
}

// RegisterReader returns a reader positioned at the end of the log.
func (c *EventChannel[E]) RegisterReader() *ReaderID {
	pos := c.end()
	for i, ok := range c.active {
		if !ok {
			c.active[i] = true
			c.readers[i] = pos
			return &ReaderID{slot: i}
		}
	}
	c.readers = append(c.readers, pos)
	c.active = append(c.active, true)
	return &ReaderID{slot: len(c.readers) - 1}
}

// RemoveReader releases r so the log no longer retains events for it.
func (c *EventChannel[E]) RemoveReader(r *ReaderID) {
	if !c.owns(r) {
		return
	}
	c.active[r.slot] = false
	r.slot = -1
	c.compact()
}

// Write appends events to the log. With no registered readers they are
// discarded.
func (c *EventChannel[E]) Write(events ...E) {
	if c.readerCount() == 0 {
		c.base += uint64(len(events))
		return
	}
	c.events = append(c.events, events...)
}

// Read returns the events r has not seen yet, in write order, and advances
// r past them.
func (c *EventChannel[E]) Read(r *ReaderID) []E {
	if !c.owns(r) {
		return nil
	}
	start := int(c.readers[r.slot] - c.base)
	if start >= len(c.events) {
		return nil
	}
	out := make([]E, len(c.events)-start)
	copy(out, c.events[start:])
	c.readers[r.slot] = c.end()
	c.compact()
	return out
}

// Pending returns how many events r has not read yet.
func (c *EventChannel[E]) Pending(r *ReaderID) int {
	if !c.owns(r) {
		return 0
	}
	return int(c.end() - c.readers[r.slot])
}

// Len returns the number of events still retained.
func (c *EventChannel[E]) Len() int {
	return len(c.events)
}

func (c *EventChannel[E]) end() uint64 {
	return c.base + uint64(len(c.events))
}

func (c *EventChannel[E]) owns(r *ReaderID) bool {
	return c != nil && r != nil && r.slot >= 0 && r.slot < len(c.readers) && c.active[r.slot]
}

func (c *EventChannel[E]) readerCount() int {
	n := 0
	for _, ok := range c.active {
		if ok {
			n++
		}
	}
	return n
}

func (c *EventChannel[E]) compact() {
	low := c.end()
	for i, ok := range c.active {
		if ok && c.readers[i] < low {
			low = c.readers[i]
		}
	}
	drop := int(low - c.base)
	if drop <= 0 {
		return
	}
	n := copy(c.events, c.events[drop:])
	clear(c.events[n:])
	c.events = c.events[:n]
	c.base = low
}
