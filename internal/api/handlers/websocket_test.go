package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gilson1254/catalogo-de-filmes/internal/testutil"
	"github.com/gilson1254/catalogo-de-filmes/internal/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebSocketHandler_RoomEvents(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
	room := createRoom(t, ts, token, "Sala")

	client := testutil.NewWSClient(t, ts.WebSocketURL(token, room.ID))
	// Give the hub a moment to process the subscription
	time.Sleep(50 * time.Millisecond)

	resp := testutil.DoRequest(t, http.MethodPost, ts.APIURL("/rooms/"+room.ID+"/items"), map[string]any{
		"itemId":   603,
		"itemType": "movie",
		"status":   "want_to_watch",
	}, token)
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	event := client.WaitForEvent(websocket.EventListUpdated, 2*time.Second)
	require.NotNil(t, event)
	assert.Equal(t, room.ID, event.RoomID.String())
}

func TestWebSocketHandler_EventsScopedToRoom(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	roomA := createRoom(t, ts, token, "Sala A")
	roomB := createRoom(t, ts, token, "Sala B")

	clientB := testutil.NewWSClient(t, ts.WebSocketURL(token, roomB.ID))
	time.Sleep(50 * time.Millisecond)

	// A mutation in room A must not reach room B's subscribers
	resp := testutil.DoRequest(t, http.MethodPost, ts.APIURL("/rooms/"+roomA.ID+"/notes"), map[string]any{
		"itemId":   603,
		"itemType": "movie",
		"note":     "só para a sala A",
	}, token)
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	resp = testutil.DoRequest(t, http.MethodPost, ts.APIURL("/rooms/"+roomB.ID+"/notes"), map[string]any{
		"itemId":   604,
		"itemType": "movie",
		"note":     "para a sala B",
	}, token)
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	event := clientB.WaitForEvent(websocket.EventNoteAdded, 2*time.Second)
	require.NotNil(t, event)
	assert.Equal(t, roomB.ID, event.RoomID.String())
}

func TestWebSocketHandler_RejectsBadCredentials(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
	room := createRoom(t, ts, token, "Sala")

	tests := []struct {
		name string
		url  string
	}{
		{name: "missing token", url: ts.WebSocketURL("", room.ID)},
		{name: "garbage token", url: ts.WebSocketURL("not-a-token", room.ID)},
		{name: "bad room id", url: ts.WebSocketURL(token, "not-a-room")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpURL := "http" + tt.url[2:]
			resp, err := http.Get(httpURL)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.GreaterOrEqual(t, resp.StatusCode, http.StatusBadRequest)
		})
	}
}
