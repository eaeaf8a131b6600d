package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seasonEvent(seriesID int64, season int, monitored bool) *SeasonMonitorChanged {
	return &SeasonMonitorChanged{
		BaseEvent:    NewBaseEvent(EventSeasonMonitorChanged, EntitySeries, seriesID),
		SeasonNumber: season,
		Monitored:    monitored,
	}
}

func receive(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
		return nil
	}
}

func TestBus_PublishSubscribe(t *testing.T) {
	db := setupTestDB(t)
	log := NewEventLog(db)
	bus := NewBus(log, nil)
	defer bus.Close()

	ch := bus.subscribeTypes(10, EventSeasonMonitorChanged)

	err := bus.Publish(context.Background(), seasonEvent(7, 2, true))
	require.NoError(t, err)

	received := receive(t, ch)
	assert.Equal(t, EventSeasonMonitorChanged, received.EventType())
	sc, ok := received.(*SeasonMonitorChanged)
	require.True(t, ok)
	assert.Equal(t, 2, sc.SeasonNumber)

	// Persisted as well
	rows, err := log.ForEntity(context.Background(), EntitySeries, 7)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestBus_SubscribeFiltersByType(t *testing.T) {
	bus := NewBus(nil, nil)
	defer bus.Close()

	ch := bus.subscribeTypes(10, EventQueueRefreshed, EventDownloadCanceled)

	_ = bus.Publish(context.Background(), seasonEvent(1, 1, true))
	_ = bus.Publish(context.Background(), &QueueRefreshed{BaseEvent: NewBaseEvent(EventQueueRefreshed, EntityLibrary, 0), Count: 2})

	e := receive(t, ch)
	assert.Equal(t, EventQueueRefreshed, e.EventType())
	select {
	case extra := <-ch:
		t.Fatalf("unexpected event %s", extra.EventType())
	default:
	}
}

func TestBus_SubscribeAll(t *testing.T) {
	bus := NewBus(nil, nil)
	defer bus.Close()

	ch := bus.SubscribeAll(10)

	require.NoError(t, bus.Publish(context.Background(), seasonEvent(1, 1, true)))
	require.NoError(t, bus.Publish(context.Background(), &SessionDisconnected{BaseEvent: NewBaseEvent(EventSessionDisconnected, EntitySession, 0)}))

	assert.Equal(t, EventSeasonMonitorChanged, receive(t, ch).EventType())
	assert.Equal(t, EventSessionDisconnected, receive(t, ch).EventType())
}

func TestBus_SubscribeEntity(t *testing.T) {
	bus := NewBus(nil, nil)
	defer bus.Close()

	ch := bus.subscribeEntity(EntitySeries, 7, 10)

	_ = bus.Publish(context.Background(), seasonEvent(8, 1, true))
	_ = bus.Publish(context.Background(), seasonEvent(7, 3, false))

	e := receive(t, ch)
	assert.Equal(t, int64(7), e.EntityID())
	select {
	case extra := <-ch:
		t.Fatalf("unexpected event for entity %d", extra.EntityID())
	default:
	}
}

func TestBus_FullSubscriberDoesNotBlock(t *testing.T) {
	bus := NewBus(nil, nil)
	defer bus.Close()

	ch := bus.SubscribeAll(1)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 5; i++ {
			_ = bus.Publish(context.Background(), seasonEvent(1, i, true))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}
	assert.Len(t, ch, 1)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus(nil, nil)
	defer bus.Close()

	ch := bus.subscribeTypes(10, EventSeasonMonitorChanged)
	bus.Unsubscribe(ch)

	require.NoError(t, bus.Publish(context.Background(), seasonEvent(1, 1, true)))

	_, ok := <-ch
	assert.False(t, ok, "channel should be closed")
}

func TestBus_Close(t *testing.T) {
	bus := NewBus(nil, nil)
	ch := bus.SubscribeAll(10)

	require.NoError(t, bus.Close())
	require.NoError(t, bus.Close(), "second close is a no-op")

	_, ok := <-ch
	assert.False(t, ok)

	assert.NoError(t, bus.Publish(context.Background(), seasonEvent(1, 1, true)))

	late := bus.SubscribeAll(1)
	_, ok = <-late
	assert.False(t, ok, "subscribing to a closed bus yields a closed channel")
}

func TestBus_ConcurrentPublish(t *testing.T) {
	bus := NewBus(nil, nil)
	defer bus.Close()

	ch := bus.SubscribeAll(100)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = bus.Publish(context.Background(), seasonEvent(int64(n), 1, true))
		}(i)
	}
	wg.Wait()

	assert.Len(t, ch, 10)
}
