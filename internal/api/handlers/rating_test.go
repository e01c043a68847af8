package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gilson1254/catalogo-de-filmes/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rate(t *testing.T, ts *testutil.TestServer, token, roomID string, itemID int64, score int) {
	t.Helper()

	resp := testutil.DoRequest(t, http.MethodPost, ts.APIURL("/rooms/"+roomID+"/ratings"), map[string]any{
		"itemId":   itemID,
		"itemType": "movie",
		"rating":   score,
	}, token)
	testutil.AssertStatusCode(t, resp, http.StatusOK)
}

func TestRatingHandler_RateAndGet(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
	room := createRoom(t, ts, token, "Sala")

	var rating struct {
		Rating int `json:"rating"`
	}

	// Before rating, the item reads back as zero
	resp := testutil.DoRequest(t, http.MethodGet, ts.APIURL("/rooms/"+room.ID+"/ratings/603/movie"), nil, token)
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	testutil.AssertJSONResponse(t, resp, &rating)
	assert.Equal(t, 0, rating.Rating)

	rate(t, ts, token, room.ID, 603, 3)
	rate(t, ts, token, room.ID, 603, 5)

	resp = testutil.DoRequest(t, http.MethodGet, ts.APIURL("/rooms/"+room.ID+"/ratings/603/movie"), nil, token)
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	testutil.AssertJSONResponse(t, resp, &rating)
	assert.Equal(t, 5, rating.Rating)
}

func TestRatingHandler_Matches(t *testing.T) {
	ts := testutil.NewTestServer(t)
	ts.TMDB.AddMovie(603, "Matrix")
	ts.TMDB.AddMovie(604, "Matrix Reloaded")

	_, aliceToken := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
	_, bobToken := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
	room := createRoom(t, ts, aliceToken, "Sala do casal")

	resp := testutil.DoRequest(t, http.MethodPost, ts.APIURL("/rooms/join"),
		map[string]string{"code": room.Code}, bobToken)
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	// 603 is loved by both, 604 splits the room
	rate(t, ts, aliceToken, room.ID, 603, 5)
	rate(t, ts, bobToken, room.ID, 603, 4)
	rate(t, ts, aliceToken, room.ID, 604, 5)
	rate(t, ts, bobToken, room.ID, 604, 2)

	resp = testutil.DoRequest(t, http.MethodGet, ts.APIURL("/rooms/"+room.ID+"/matches"), nil, aliceToken)
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var result struct {
		Matches []struct {
			ItemID int64 `json:"itemId"`
			Item   struct {
				Title string `json:"title"`
			} `json:"item"`
			Ratings []struct {
				Rating int `json:"rating"`
			} `json:"ratings"`
		} `json:"matches"`
	}
	testutil.AssertJSONResponse(t, resp, &result)

	require.Len(t, result.Matches, 1)
	assert.Equal(t, int64(603), result.Matches[0].ItemID)
	assert.Equal(t, "Matrix", result.Matches[0].Item.Title)
	assert.Len(t, result.Matches[0].Ratings, 2)
}
