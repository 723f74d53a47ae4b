package sse

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesTopicSubscribers(t *testing.T) {
	h := NewHub()

	admin, cancelAdmin := h.Subscribe(TopicAdmin)
	defer cancelAdmin()
	other, cancelOther := h.Subscribe("employee:7")
	defer cancelOther()

	h.Publish(TopicAdmin, Event{Event: "attendance", Data: "hello"})

	select {
	case ev := <-admin:
		assert.Equal(t, TopicAdmin, ev.Topic)
		assert.Equal(t, "attendance", ev.Event)
		assert.Equal(t, "hello", ev.Data)
	default:
		t.Fatal("expected event on admin topic")
	}

	select {
	case <-other:
		t.Fatal("unexpected event on unrelated topic")
	default:
	}
}

func TestHub_CleanupIsIdempotent(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe(TopicAdmin)
	require.Equal(t, 1, h.SubscriberCount(TopicAdmin))

	cancel()
	cancel()

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, h.SubscriberCount(TopicAdmin))
}

func TestHub_FullSubscriberDoesNotBlock(t *testing.T) {
	h := NewHub()
	_, cancel := h.Subscribe(TopicAdmin)
	defer cancel()

	for i := 0; i < 100; i++ {
		h.Publish(TopicAdmin, Event{Event: "tick", Data: i})
	}
}

func TestHub_ConcurrentPublishAndSubscribe(t *testing.T) {
	h := NewHub()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, cancel := h.Subscribe(TopicAdmin)
			cancel()
		}()
		go func() {
			defer wg.Done()
			h.Publish(TopicAdmin, Event{Event: "tick"})
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, h.SubscriberCount(TopicAdmin))
}
