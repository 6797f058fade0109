package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastDelivers(t *testing.T) {
	hub := NewWebSocketHub()
	go hub.Run()

	client := &WSClient{hub: hub, send: make(chan []byte, 16)}
	hub.register <- client

	hub.Broadcast(Event{Type: "week_results", SaveID: 3})

	select {
	case raw := <-client.send:
		var ev Event
		require.NoError(t, json.Unmarshal(raw, &ev))
		assert.Equal(t, "week_results", ev.Type)
		assert.Equal(t, uint(3), ev.SaveID)
	case <-time.After(time.Second):
		t.Fatal("broadcast never reached the client")
	}

	hub.unregister <- client
}

func TestBroadcastNeverBlocks(t *testing.T) {
	hub := NewWebSocketHub()
	// Run loop intentionally not started: the buffer fills and overflow
	// events must be dropped rather than wedging the caller.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			hub.Broadcast(Event{Type: "spam"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Broadcast blocked on a full buffer")
	}
}
