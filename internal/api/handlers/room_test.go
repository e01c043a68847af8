package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gilson1254/catalogo-de-filmes/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roomResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	CreatedBy string `json:"createdBy"`
}

func createRoom(t *testing.T, ts *testutil.TestServer, token, name string) roomResponse {
	t.Helper()

	resp := testutil.DoRequest(t, http.MethodPost, ts.APIURL("/rooms"), map[string]string{"name": name}, token)
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var room roomResponse
	testutil.AssertJSONResponse(t, resp, &room)
	return room
}

func TestRoomHandler_Create(t *testing.T) {
	ts := testutil.NewTestServer(t)
	user, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	room := createRoom(t, ts, token, "Sexta de filme")
	assert.Equal(t, "Sexta de filme", room.Name)
	assert.Equal(t, user.ID.String(), room.CreatedBy)
	assert.Len(t, room.Code, 8)

	t.Run("requires a name", func(t *testing.T) {
		resp := testutil.DoRequest(t, http.MethodPost, ts.APIURL("/rooms"), map[string]string{}, token)
		testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
	})

	t.Run("requires auth", func(t *testing.T) {
		resp := testutil.DoRequest(t, http.MethodPost, ts.APIURL("/rooms"), map[string]string{"name": "x"}, "")
		testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
	})
}

func TestRoomHandler_Get(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
	room := createRoom(t, ts, token, "Maratona")

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{name: "by id", path: "/rooms/" + room.ID, expectedStatus: http.StatusOK},
		{name: "by code", path: "/rooms/" + room.Code, expectedStatus: http.StatusOK},
		{name: "by lowercase code", path: "/rooms/" + strings.ToLower(room.Code), expectedStatus: http.StatusOK},
		{name: "unknown", path: "/rooms/XXXXXXXX", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := testutil.DoRequest(t, http.MethodGet, ts.APIURL(tt.path), nil, token)
			testutil.AssertStatusCode(t, resp, tt.expectedStatus)

			if tt.expectedStatus == http.StatusOK {
				var got roomResponse
				testutil.AssertJSONResponse(t, resp, &got)
				assert.Equal(t, room.ID, got.ID)
			}
		})
	}
}

func TestRoomHandler_Join(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, ownerToken := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
	_, joinerToken := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	room := createRoom(t, ts, ownerToken, "Maratona")

	resp := testutil.DoRequest(t, http.MethodPost, ts.APIURL("/rooms/join"),
		map[string]string{"code": strings.ToLower(room.Code)}, joinerToken)
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var joined roomResponse
	testutil.AssertJSONResponse(t, resp, &joined)
	assert.Equal(t, room.ID, joined.ID)

	// The joiner now sees the room among their own
	resp = testutil.DoRequest(t, http.MethodGet, ts.APIURL("/users/me/rooms"), nil, joinerToken)
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var rooms []roomResponse
	testutil.AssertJSONResponse(t, resp, &rooms)
	require.Len(t, rooms, 1)
	assert.Equal(t, room.ID, rooms[0].ID)

	t.Run("unknown code", func(t *testing.T) {
		resp := testutil.DoRequest(t, http.MethodPost, ts.APIURL("/rooms/join"),
			map[string]string{"code": "NOPE1234"}, joinerToken)
		testutil.AssertStatusCode(t, resp, http.StatusNotFound)
	})
}
