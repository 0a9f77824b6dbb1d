package previewserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSubscribePublishDelivers(t *testing.T) {
	hub := NewHub()
	ch, unsubscribe := hub.Subscribe("run-1")
	defer unsubscribe()

	hub.Publish(Update{RunID: "run-1", Step: 1, Label: "enter", Width: 10, Height: 20})

	select {
	case u := <-ch:
		require.Equal(t, "run-1", u.RunID)
		require.Equal(t, 1, u.Step)
		require.Equal(t, "enter", u.Label)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for published update")
	}
}

func TestPublishToUnrelatedRunIsNotDelivered(t *testing.T) {
	hub := NewHub()
	ch, unsubscribe := hub.Subscribe("run-1")
	defer unsubscribe()

	hub.Publish(Update{RunID: "run-2", Step: 1})

	select {
	case u := <-ch:
		t.Fatalf("unexpected delivery for a different run: %+v", u)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	hub := NewHub()
	ch, unsubscribe := hub.Subscribe("run-1")
	unsubscribe()

	hub.Publish(Update{RunID: "run-1", Step: 1})

	_, ok := <-ch
	require.False(t, ok, "channel should be closed after unsubscribe")
}

func TestPublishDropsWhenSubscriberChannelIsFull(t *testing.T) {
	hub := NewHub()
	ch, unsubscribe := hub.Subscribe("run-1")
	defer unsubscribe()

	for i := 0; i < 64; i++ {
		hub.Publish(Update{RunID: "run-1", Step: i})
	}

	require.NotEmpty(t, ch, "at least the first updates should have been buffered")
}

func TestConcurrentPublishAndUnsubscribeDoesNotPanic(t *testing.T) {
	hub := NewHub()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			hub.Publish(Update{RunID: "run-1", Step: i})
		}
	}()

	for i := 0; i < 200; i++ {
		_, unsubscribe := hub.Subscribe("run-1")
		unsubscribe()
	}

	<-done
}
