package realtime

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/logging"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Serve(conn)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func TestHubBroadcastsToAllClients(t *testing.T) {
	hub := NewHub(time.Minute, logging.NewNop())
	srv := newTestServer(t, hub)

	a := dial(t, srv)
	defer a.Close()
	b := dial(t, srv)
	defer b.Close()
	require.Eventually(t, func() bool { return hub.Count() == 2 }, time.Second, 10*time.Millisecond)

	w := &domain.Workout{ID: 42, Name: "Leg Day", Day: domain.Monday}
	hub.Publish(domain.WorkoutEvent{Type: domain.WorkoutCreated, WorkoutID: 42, Workout: w, At: time.Now()})

	for _, conn := range []*websocket.Conn{a, b} {
		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, msg, err := conn.ReadMessage()
		require.NoError(t, err)
		var got domain.WorkoutEvent
		require.NoError(t, json.Unmarshal(msg, &got))
		assert.Equal(t, domain.WorkoutCreated, got.Type)
		assert.Equal(t, int64(42), got.WorkoutID)
		require.NotNil(t, got.Workout)
		assert.Equal(t, "Leg Day", got.Workout.Name)
	}
}

func TestHubUnregistersOnDisconnect(t *testing.T) {
	hub := NewHub(time.Minute, logging.NewNop())
	srv := newTestServer(t, hub)

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.Count() == 0 }, time.Second, 10*time.Millisecond)

	// Publishing with nobody listening is fine.
	hub.Publish(domain.WorkoutEvent{Type: domain.WorkoutDeleted, WorkoutID: 1})
}

func TestHubCloseDisconnectsClients(t *testing.T) {
	hub := NewHub(time.Minute, logging.NewNop())
	srv := newTestServer(t, hub)

	conn := dial(t, srv)
	defer conn.Close()
	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 10*time.Millisecond)

	hub.Close()
	assert.Equal(t, 0, hub.Count())
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}

func TestHubDropsClientThatStopsReading(t *testing.T) {
	hub := NewHub(time.Minute, logging.NewNop())
	served := make(chan struct{})
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Serve(conn)
		close(served)
	}))
	defer srv.Close()

	conn := dial(t, srv) // never read from
	defer conn.Close()
	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 10*time.Millisecond)

	// Large frames fill the socket buffers, then the client's queue.
	big := &domain.Workout{ID: 1, Name: strings.Repeat("x", 256<<10), Day: domain.Monday}
	start := time.Now()
	for i := 0; i < 400 && hub.Count() > 0; i++ {
		hub.Publish(domain.WorkoutEvent{Type: domain.WorkoutUpdated, WorkoutID: 1, Workout: big})
	}
	require.Eventually(t, func() bool { return hub.Count() == 0 }, 5*time.Second, 10*time.Millisecond)

	select {
	case <-served:
	case <-time.After(5 * time.Second):
		t.Fatal("server side of a dropped client did not shut down")
	}
	assert.Less(t, time.Since(start), 10*time.Second)
}
