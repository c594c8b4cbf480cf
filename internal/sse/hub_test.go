package sse

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() int64 { return 1_700_000_000_000 }

func startHub(t *testing.T) *Hub {
	t.Helper()
	h := NewHub(fixedNow)
	h.Start()
	t.Cleanup(h.Stop)
	return h
}

func waitForClients(t *testing.T, h *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return h.ClientCount() == n }, time.Second, 5*time.Millisecond)
}

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case e := <-c.EventChannel:
		return e
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestHub_BroadcastReachesClients(t *testing.T) {
	h := startHub(t)
	a := h.Register(nil)
	b := h.Register(nil)
	waitForClients(t, h, 2)

	h.Broadcast("plant:added", map[string]int{"plotId": 0})

	for _, c := range []*Client{a, b} {
		e := receive(t, c)
		assert.Equal(t, "plant:added", e.Type)
		assert.Equal(t, fixedNow(), e.Timestamp)
		assert.NotEmpty(t, e.ID)
	}
}

func TestHub_FilterSkipsOtherTypes(t *testing.T) {
	h := startHub(t)
	c := h.Register([]string{"money:changed"})
	waitForClients(t, h, 1)

	h.Broadcast("game:tick", nil)
	h.Broadcast("money:changed", 5)

	e := receive(t, c)
	assert.Equal(t, "money:changed", e.Type)
	assert.Equal(t, 5, e.Payload)
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	h := startHub(t)
	c := h.Register(nil)
	waitForClients(t, h, 1)

	h.Unregister(c.ID)
	waitForClients(t, h, 0)

	_, ok := <-c.EventChannel
	assert.False(t, ok)
}

func TestHub_StopClosesClientsAndRejectsNew(t *testing.T) {
	h := NewHub(fixedNow)
	h.Start()
	c := h.Register(nil)
	waitForClients(t, h, 1)

	h.Stop()
	h.Stop()

	_, ok := <-c.EventChannel
	assert.False(t, ok)
	assert.Nil(t, h.Register(nil))
}

func TestHub_RegisterAfterStopNeverReturnsClient(t *testing.T) {
	for i := 0; i < 200; i++ {
		h := NewHub(fixedNow)
		h.Start()
		h.Stop()
		require.Nil(t, h.Register(nil), "iteration %d", i)
	}
}

func TestHub_RegisterRacingStopIsAlwaysClosed(t *testing.T) {
	for i := 0; i < 50; i++ {
		h := NewHub(fixedNow)
		h.Start()

		got := make(chan *Client, 1)
		go func() { got <- h.Register(nil) }()
		h.Stop()

		c := <-got
		if c == nil {
			continue
		}
		select {
		case _, ok := <-c.EventChannel:
			assert.False(t, ok)
		case <-time.After(time.Second):
			t.Fatalf("iteration %d: client registered during stop was never closed", i)
		}
	}
}

func TestHub_DoneClosedByStop(t *testing.T) {
	h := NewHub(fixedNow)
	h.Start()

	select {
	case <-h.Done():
		t.Fatal("done before stop")
	default:
	}

	h.Stop()
	select {
	case <-h.Done():
	case <-time.After(time.Second):
		t.Fatal("done not closed after stop")
	}
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "abc", Type: "game:saved", Timestamp: 42, Payload: map[string]int{"timestamp": 42}})
	require.NoError(t, err)

	s := string(msg)
	assert.True(t, strings.HasPrefix(s, "id: abc\nevent: game:saved\ndata: {"))
	assert.True(t, strings.HasSuffix(s, "\n\n"))
	assert.Contains(t, s, `"timestamp":42`)
}
