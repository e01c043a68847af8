package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gilson1254/catalogo-de-filmes/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionHandler_Lifecycle(t *testing.T) {
	ts := testutil.NewTestServer(t)
	ts.TMDB.AddMovie(603, "Matrix")

	_, token := testutil.NewUserBuilder().WithUsername("maria").BuildAndAuthenticate(t, ts)
	room := createRoom(t, ts, token, "Sala")

	sessionsURL := ts.APIURL("/rooms/" + room.ID + "/sessions")

	resp := testutil.DoRequest(t, http.MethodPost, sessionsURL, map[string]any{
		"itemId":       603,
		"itemType":     "movie",
		"scheduledFor": time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339),
		"notes":        "com pipoca",
	}, token)
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var session struct {
		ID        string `json:"id"`
		Completed bool   `json:"completed"`
	}
	testutil.AssertJSONResponse(t, resp, &session)
	assert.False(t, session.Completed)

	t.Run("list joins catalog detail", func(t *testing.T) {
		resp := testutil.DoRequest(t, http.MethodGet, sessionsURL, nil, token)
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var views []struct {
			ItemID   int64  `json:"itemId"`
			Username string `json:"username"`
			Notes    string `json:"notes"`
			Item     struct {
				Title string `json:"title"`
			} `json:"item"`
		}
		testutil.AssertJSONResponse(t, resp, &views)
		require.Len(t, views, 1)
		assert.Equal(t, int64(603), views[0].ItemID)
		assert.Equal(t, "Matrix", views[0].Item.Title)
		assert.Equal(t, "maria", views[0].Username)
		assert.Equal(t, "com pipoca", views[0].Notes)
	})

	t.Run("complete", func(t *testing.T) {
		resp := testutil.DoRequest(t, http.MethodPut, sessionsURL+"/"+session.ID+"/complete", nil, token)
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var completed struct {
			Completed   bool    `json:"completed"`
			CompletedAt *string `json:"completedAt"`
		}
		testutil.AssertJSONResponse(t, resp, &completed)
		assert.True(t, completed.Completed)
		assert.NotNil(t, completed.CompletedAt)
	})

	t.Run("complete unknown session", func(t *testing.T) {
		resp := testutil.DoRequest(t, http.MethodPut, sessionsURL+"/"+uuid.NewString()+"/complete", nil, token)
		testutil.AssertStatusCode(t, resp, http.StatusNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		var success struct {
			Success bool `json:"success"`
		}

		resp := testutil.DoRequest(t, http.MethodDelete, sessionsURL+"/"+session.ID, nil, token)
		testutil.AssertStatusCode(t, resp, http.StatusOK)
		testutil.AssertJSONResponse(t, resp, &success)
		assert.True(t, success.Success)

		// Unknown ids still report success
		resp = testutil.DoRequest(t, http.MethodDelete, sessionsURL+"/"+uuid.NewString(), nil, token)
		testutil.AssertStatusCode(t, resp, http.StatusOK)
	})

	t.Run("missing scheduled time", func(t *testing.T) {
		resp := testutil.DoRequest(t, http.MethodPost, sessionsURL, map[string]any{
			"itemId":   603,
			"itemType": "movie",
		}, token)
		testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
	})
}
