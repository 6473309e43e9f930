// Package events is a small synchronous notification hub. Unlike a
// goroutine-backed bus, handlers run in registration order on the
// publisher's stack: the whole widget model is owned by one dispatch loop
// and observers must see state that is already settled.
package events

// Stream fans a single event type out to its subscribers.
type Stream[T any] struct {
	nextID int
	subs   []subscriber[T]
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// Subscribe registers a handler and returns its remove function.
func (s *Stream[T]) Subscribe(fn func(T)) (remove func()) {
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber[T]{id: id, fn: fn})
	return func() {
		for i := range s.subs {
			if s.subs[i].id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers v to every subscriber, synchronously.
func (s *Stream[T]) Publish(v T) {
	// Iterate over a snapshot so handlers may unsubscribe themselves.
	subs := make([]subscriber[T], len(s.subs))
	copy(subs, s.subs)
	for _, sub := range subs {
		sub.fn(v)
	}
}

// Len returns the number of subscribers.
func (s *Stream[T]) Len() int {
	return len(s.subs)
}
