package eventbus

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/vibescope/vibescope/internal/domain"
)

// TestNewSyncEventBus tests event bus creation.
func TestNewSyncEventBus(t *testing.T) {
	bus := NewSyncEventBus()

	if bus == nil {
		t.Fatal("NewSyncEventBus returned nil")
	}

	if bus.SubscriberCount() != 0 {
		t.Errorf("Expected 0 subscribers, got %d", bus.SubscriberCount())
	}

	if bus.closed {
		t.Error("New event bus should not be closed")
	}
}

// TestPublishSubscribe tests basic publish/subscribe functionality.
func TestPublishSubscribe(t *testing.T) {
	bus := NewSyncEventBus()
	defer bus.Close()

	var received domain.Event
	var callCount int

	subID := bus.Subscribe(domain.EventPatternChanged, func(event domain.Event) {
		received = event
		callCount++
	})

	if subID == "" {
		t.Fatal("Subscribe returned empty subscription ID")
	}

	bus.Publish(domain.NewPatternChangedEvent("rays", "fractal"))

	if callCount != 1 {
		t.Errorf("Expected handler to be called once, got %d", callCount)
	}

	if received == nil {
		t.Fatal("Handler did not receive event")
	}

	if received.Type() != domain.EventPatternChanged {
		t.Errorf("Expected EventPatternChanged, got %s", received.Type())
	}

	event := received.(domain.PatternChangedEvent)
	if event.Pattern != "rays" || event.Previous != "fractal" {
		t.Errorf("Unexpected event payload: %+v", event)
	}
}

// TestDeliveryOrder tests that handlers run in subscription order.
func TestDeliveryOrder(t *testing.T) {
	bus := NewSyncEventBus()
	defer bus.Close()

	var order []int
	for i := 0; i < 3; i++ {
		i := i
		bus.Subscribe(domain.EventTransitionStarted, func(domain.Event) {
			order = append(order, i)
		})
	}

	bus.Publish(domain.NewTransitionStartedEvent("fractal", "rays"))

	if len(order) != 3 {
		t.Fatalf("Expected 3 handler calls, got %d", len(order))
	}
	for i, got := range order {
		if got != i {
			t.Errorf("Handler %d ran at position %d", got, i)
		}
	}
}

// TestUnsubscribe tests that removed handlers stop receiving events.
func TestUnsubscribe(t *testing.T) {
	bus := NewSyncEventBus()
	defer bus.Close()

	var callCount int32
	subID := bus.Subscribe(domain.EventPatternChanged, func(domain.Event) {
		atomic.AddInt32(&callCount, 1)
	})

	bus.Publish(domain.NewPatternChangedEvent("rays", "fractal"))
	bus.Unsubscribe(subID)
	bus.Publish(domain.NewPatternChangedEvent("tunnel", "rays"))

	if atomic.LoadInt32(&callCount) != 1 {
		t.Errorf("Expected 1 call, got %d", callCount)
	}

	// Unsubscribing twice is a no-op.
	bus.Unsubscribe(subID)
}

// TestSubscribeAll tests wildcard subscriptions.
func TestSubscribeAll(t *testing.T) {
	bus := NewSyncEventBus()
	defer bus.Close()

	var callCount int32
	bus.SubscribeAll(func(domain.Event) {
		atomic.AddInt32(&callCount, 1)
	})

	bus.Publish(domain.NewPatternChangedEvent("rays", "fractal"))
	bus.Publish(domain.NewTransitionCompletedEvent("rays"))
	bus.Publish(domain.NewSourceStoppedEvent("shutdown"))

	if atomic.LoadInt32(&callCount) != 3 {
		t.Errorf("Expected 3 calls, got %d", callCount)
	}
}

// TestHandlerPanicRecovered tests that a panicking handler does not
// stop delivery to the remaining handlers.
func TestHandlerPanicRecovered(t *testing.T) {
	bus := NewSyncEventBus()
	defer bus.Close()

	var survived bool
	bus.Subscribe(domain.EventPatternChanged, func(domain.Event) {
		panic("handler exploded")
	})
	bus.Subscribe(domain.EventPatternChanged, func(domain.Event) {
		survived = true
	})

	bus.Publish(domain.NewPatternChangedEvent("rays", "fractal"))

	if !survived {
		t.Error("Second handler did not run after first panicked")
	}
}

// TestHasSubscribers tests subscriber presence checks.
func TestHasSubscribers(t *testing.T) {
	bus := NewSyncEventBus()
	defer bus.Close()

	if bus.HasSubscribers(domain.EventPatternChanged) {
		t.Error("Fresh bus should have no subscribers")
	}

	id := bus.Subscribe(domain.EventPatternChanged, func(domain.Event) {})
	if !bus.HasSubscribers(domain.EventPatternChanged) {
		t.Error("Expected subscribers after Subscribe")
	}
	if bus.HasSubscribers(domain.EventTransitionStarted) {
		t.Error("Unrelated type should have no subscribers")
	}

	bus.Unsubscribe(id)
	bus.SubscribeAll(func(domain.Event) {})
	if !bus.HasSubscribers(domain.EventTransitionStarted) {
		t.Error("Wildcard subscription should count for any type")
	}
}

// TestClose tests that a closed bus drops publishes and rejects reuse.
func TestClose(t *testing.T) {
	bus := NewSyncEventBus()

	var callCount int32
	bus.Subscribe(domain.EventPatternChanged, func(domain.Event) {
		atomic.AddInt32(&callCount, 1)
	})

	if err := bus.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	bus.Publish(domain.NewPatternChangedEvent("rays", "fractal"))
	if atomic.LoadInt32(&callCount) != 0 {
		t.Error("Publish after Close must be dropped")
	}

	if err := bus.Close(); err == nil {
		t.Error("Second Close should return an error")
	}
}

// TestConcurrentPublish tests thread safety under concurrent load.
func TestConcurrentPublish(t *testing.T) {
	bus := NewSyncEventBus()
	defer bus.Close()

	var callCount int32
	bus.Subscribe(domain.EventPatternChanged, func(domain.Event) {
		atomic.AddInt32(&callCount, 1)
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				bus.Publish(domain.NewPatternChangedEvent("rays", "fractal"))
			}
		}()
	}
	wg.Wait()

	if atomic.LoadInt32(&callCount) != 1000 {
		t.Errorf("Expected 1000 calls, got %d", callCount)
	}
}
