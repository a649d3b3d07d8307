package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherInvokesSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var seen []Event
	dispatcher.Subscribe(EventTypeUserRegistered, func(_ context.Context, e Event) error {
		seen = append(seen, e)
		return nil
	})

	event := NewEvent(EventTypeUserRegistered, 7, "alice")
	require.NoError(t, dispatcher.Publish(context.Background(), event))

	require.Len(t, seen, 1)
	assert.Equal(t, int64(7), seen[0].UserID)
	assert.Equal(t, "alice", seen[0].Username)
	assert.False(t, seen[0].OccurredAt.IsZero())
}

func TestDispatcherIgnoresUnsubscribedTypes(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	called := false
	dispatcher.Subscribe(EventTypeUserRegistered, func(context.Context, Event) error {
		called = true
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), NewEvent(EventTypeUserLoggedIn, 1, "bob")))
	assert.False(t, called)
}

func TestDispatcherContinuesPastHandlerErrors(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var order []string
	dispatcher.Subscribe(EventTypeUserLoggedIn, func(context.Context, Event) error {
		order = append(order, "first")
		return errors.New("boom")
	})
	dispatcher.Subscribe(EventTypeUserLoggedIn, func(context.Context, Event) error {
		order = append(order, "second")
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), NewEvent(EventTypeUserLoggedIn, 1, "bob")))
	assert.Equal(t, []string{"first", "second"}, order)
}
