package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishInRegistrationOrder(t *testing.T) {
	var s Stream[int]
	var order []string

	s.Subscribe(func(v int) { order = append(order, "first") })
	s.Subscribe(func(v int) { order = append(order, "second") })

	s.Publish(1)
	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, 2, s.Len())
}

func TestRemoveStopsDelivery(t *testing.T) {
	var s Stream[string]
	var got []string

	remove := s.Subscribe(func(v string) { got = append(got, "a:"+v) })
	s.Subscribe(func(v string) { got = append(got, "b:"+v) })

	s.Publish("one")
	remove()
	remove() // second call is a no-op
	s.Publish("two")

	assert.Equal(t, []string{"a:one", "b:one", "b:two"}, got)
	assert.Equal(t, 1, s.Len())
}

func TestHandlerMayUnsubscribeItself(t *testing.T) {
	var s Stream[int]
	var calls int

	var remove func()
	remove = s.Subscribe(func(v int) {
		calls++
		remove()
	})

	s.Publish(1)
	s.Publish(2)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, s.Len())
}

func TestPublishWithNoSubscribers(t *testing.T) {
	var s Stream[[]any]
	assert.NotPanics(t, func() { s.Publish(nil) })
}
