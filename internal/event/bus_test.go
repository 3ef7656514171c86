package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus_PublishDelivery(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	var got []Event
	bus.Subscribe(CredentialsChanged, func(e Event) {
		got = append(got, e)
	})

	bus.Publish(Event{Type: CredentialsChanged})
	bus.Publish(Event{Type: CredentialsReset}) // different type, not delivered

	assert.Len(t, got, 1)
	assert.Equal(t, CredentialsChanged, got[0].Type)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	calls := 0
	unsub := bus.Subscribe(CredentialsReset, func(Event) { calls++ })

	bus.Publish(Event{Type: CredentialsReset})
	unsub()
	bus.Publish(Event{Type: CredentialsReset})

	assert.Equal(t, 1, calls)
}

func TestBus_ClosedBusDropsEvents(t *testing.T) {
	bus := NewBus()

	calls := 0
	bus.Subscribe(CredentialsChanged, func(Event) { calls++ })

	assert.NoError(t, bus.Close())
	bus.Publish(Event{Type: CredentialsChanged})

	assert.Equal(t, 0, calls)
}
