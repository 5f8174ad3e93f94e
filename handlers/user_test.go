package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"socialword/database"
)

func TestSearchUsersSubstringMatch(t *testing.T) {
	r := setupServer(t)
	_, token := seedUser(t, "alice", false)
	seedUser(t, "malice", false)
	seedUser(t, "bob", false)

	w := doRequest(t, r, "GET", "/api/users/search?q=lic", token, nil)
	requireStatus(t, w, http.StatusOK)

	var users []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 2)
}

func TestSearchUsersEscapesLikeWildcards(t *testing.T) {
	r := setupServer(t)
	_, token := seedUser(t, "alice", false)
	seedUser(t, "bob", false)

	// %% is two characters so it passes the length check, but it must
	// match literally, not as a wildcard that returns everyone.
	w := doRequest(t, r, "GET", "/api/users/search?q=%25%25", token, nil)
	requireStatus(t, w, http.StatusOK)

	var users []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.Empty(t, users)

	// Same for _ which would otherwise match any character.
	w = doRequest(t, r, "GET", "/api/users/search?q=b_b", token, nil)
	requireStatus(t, w, http.StatusOK)
	users = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.Empty(t, users)
}

func TestSearchUsersQueryTooShort(t *testing.T) {
	r := setupServer(t)
	_, token := seedUser(t, "alice", false)

	w := doRequest(t, r, "GET", "/api/users/search?q=a", token, nil)
	requireStatus(t, w, http.StatusBadRequest)
}

func TestDatabaseFailureSurfacesAsInternalError(t *testing.T) {
	r := setupServer(t)
	_, token := seedUser(t, "alice", false)

	require.NoError(t, database.DB.Close())

	w := doRequest(t, r, "GET", "/api/posts", "", nil)
	requireStatus(t, w, http.StatusInternalServerError)

	w = doRequest(t, r, "GET", "/api/users/search?q=al", token, nil)
	requireStatus(t, w, http.StatusInternalServerError)

	w = doRequest(t, r, "GET", "/api/likes", token, nil)
	requireStatus(t, w, http.StatusInternalServerError)
}
