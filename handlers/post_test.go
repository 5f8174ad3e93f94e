package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPost(t *testing.T, r *gin.Engine, token, content string) string {
	t.Helper()

	w := doRequest(t, r, "POST", "/api/posts", token, gin.H{"content": content})
	requireStatus(t, w, http.StatusCreated)
	id := decodeBody(t, w)["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func TestCreateAndListPosts(t *testing.T) {
	r := setupServer(t)
	_, aliceToken := seedUser(t, "alice", false)

	createTestPost(t, r, aliceToken, "first post")
	createTestPost(t, r, aliceToken, "second post")

	// The feed is public and newest first.
	w := doRequest(t, r, "GET", "/api/posts", "", nil)
	requireStatus(t, w, http.StatusOK)

	var posts []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	require.Len(t, posts, 2)
	assert.Equal(t, "second post", posts[0]["content"])
	author := posts[0]["author"].(map[string]interface{})
	assert.Equal(t, "alice", author["username"])
}

func TestCreatePostRequiresAuth(t *testing.T) {
	r := setupServer(t)

	w := doRequest(t, r, "POST", "/api/posts", "", gin.H{"content": "anonymous"})
	requireStatus(t, w, http.StatusUnauthorized)
}

func TestCommentsFlow(t *testing.T) {
	r := setupServer(t)
	_, aliceToken := seedUser(t, "alice", false)
	_, bobToken := seedUser(t, "bob", false)
	postID := createTestPost(t, r, aliceToken, "talk to me")

	w := doRequest(t, r, "POST", "/api/posts/"+postID+"/comments", bobToken, gin.H{"content": "nice one"})
	requireStatus(t, w, http.StatusCreated)

	w = doRequest(t, r, "GET", "/api/posts/"+postID+"/comments", "", nil)
	requireStatus(t, w, http.StatusOK)

	var comments []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comments))
	require.Len(t, comments, 1)
	assert.Equal(t, "nice one", comments[0]["content"])
}

func TestCommentOnMissingPost(t *testing.T) {
	r := setupServer(t)
	_, aliceToken := seedUser(t, "alice", false)

	w := doRequest(t, r, "POST", "/api/posts/missing/comments", aliceToken, gin.H{"content": "hello?"})
	requireStatus(t, w, http.StatusNotFound)
}

func TestEmptyCommentRejected(t *testing.T) {
	r := setupServer(t)
	_, aliceToken := seedUser(t, "alice", false)
	postID := createTestPost(t, r, aliceToken, "post")

	w := doRequest(t, r, "POST", "/api/posts/"+postID+"/comments", aliceToken, gin.H{"content": "   "})
	requireStatus(t, w, http.StatusBadRequest)
}

func TestLikeUnlikeFlow(t *testing.T) {
	r := setupServer(t)
	_, aliceToken := seedUser(t, "alice", false)
	_, bobToken := seedUser(t, "bob", false)
	postID := createTestPost(t, r, aliceToken, "like me")

	w := doRequest(t, r, "POST", "/api/likes/"+postID, bobToken, nil)
	requireStatus(t, w, http.StatusCreated)

	// Liking twice is a client error.
	w = doRequest(t, r, "POST", "/api/likes/"+postID, bobToken, nil)
	requireStatus(t, w, http.StatusBadRequest)

	w = doRequest(t, r, "GET", "/api/likes", bobToken, nil)
	requireStatus(t, w, http.StatusOK)
	liked := decodeBody(t, w)["liked_post_ids"].([]interface{})
	require.Len(t, liked, 1)
	assert.Equal(t, postID, liked[0])

	w = doRequest(t, r, "DELETE", "/api/likes/"+postID, bobToken, nil)
	requireStatus(t, w, http.StatusOK)

	// Unlike is idempotent.
	w = doRequest(t, r, "DELETE", "/api/likes/"+postID, bobToken, nil)
	requireStatus(t, w, http.StatusOK)
}
