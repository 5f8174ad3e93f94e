package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
	"socialword/config"
	"socialword/database"
	"socialword/middleware"
	"socialword/social"
	"socialword/utils"
)

var testSchema = []string{
	`CREATE TABLE users (
		id          TEXT PRIMARY KEY,
		email       TEXT NOT NULL UNIQUE,
		username    TEXT NOT NULL UNIQUE,
		password    TEXT NOT NULL,
		bio         TEXT NOT NULL DEFAULT '',
		avatar_url  TEXT NOT NULL DEFAULT '',
		is_private  BOOLEAN NOT NULL DEFAULT 0,
		is_verified BOOLEAN NOT NULL DEFAULT 0,
		created_at  TIMESTAMP,
		updated_at  TIMESTAMP
	)`,
	`CREATE TABLE verification_codes (
		id         TEXT PRIMARY KEY,
		email      TEXT NOT NULL,
		code       TEXT NOT NULL,
		expires_at BIGINT NOT NULL,
		created_at TIMESTAMP
	)`,
	`CREATE TABLE posts (
		id         TEXT PRIMARY KEY,
		author_id  TEXT NOT NULL,
		content    TEXT NOT NULL,
		media_url  TEXT,
		created_at TIMESTAMP
	)`,
	`CREATE TABLE comments (
		id         TEXT PRIMARY KEY,
		post_id    TEXT NOT NULL,
		author_id  TEXT NOT NULL,
		content    TEXT NOT NULL,
		created_at TIMESTAMP
	)`,
	`CREATE TABLE likes (
		id         TEXT PRIMARY KEY,
		post_id    TEXT NOT NULL,
		user_id    TEXT NOT NULL,
		created_at TIMESTAMP,
		UNIQUE (post_id, user_id)
	)`,
	`CREATE TABLE media (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		url        TEXT NOT NULL,
		type       TEXT NOT NULL,
		created_at TIMESTAMP
	)`,
	`CREATE TABLE follow_edges (
		id           TEXT PRIMARY KEY,
		follower_id  TEXT NOT NULL,
		following_id TEXT NOT NULL,
		created_at   BIGINT NOT NULL,
		UNIQUE (follower_id, following_id)
	)`,
	`CREATE TABLE friend_requests (
		id          TEXT PRIMARY KEY,
		sender_id   TEXT NOT NULL,
		receiver_id TEXT NOT NULL,
		status      TEXT NOT NULL DEFAULT 'pending',
		pending_key TEXT UNIQUE,
		created_at  BIGINT NOT NULL
	)`,
	`CREATE TABLE messages (
		id          TEXT PRIMARY KEY,
		sender_id   TEXT NOT NULL,
		receiver_id TEXT NOT NULL,
		content     TEXT NOT NULL,
		created_at  BIGINT NOT NULL
	)`,
}

// setupServer wires the handlers against an in-memory SQLite database
// and returns a router mirroring the route table in main.
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	require.NoError(t, config.Load())

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	for _, stmt := range testSchema {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	database.DB = db
	Social = social.NewStore(db)
	t.Cleanup(func() {
		db.Close()
		database.DB = nil
		Social = nil
	})

	r := gin.New()

	r.POST("/api/register", Register)
	r.POST("/api/verify", Verify)
	r.POST("/api/login", Login)

	r.GET("/api/posts", GetPosts)
	r.POST("/api/posts", middleware.AuthMiddleware(), CreatePost)
	r.GET("/api/posts/:post_id/comments", GetComments)
	r.POST("/api/posts/:post_id/comments", middleware.AuthMiddleware(), CreateComment)

	likes := r.Group("/api/likes", middleware.AuthMiddleware())
	likes.GET("", GetLikes)
	likes.POST("/:post_id", LikePost)
	likes.DELETE("/:post_id", UnlikePost)

	authed := r.Group("/api", middleware.AuthMiddleware())
	authed.GET("/me", GetCurrentUser)
	authed.GET("/users/search", SearchUsers)

	user := r.Group("/api/user", middleware.AuthMiddleware())
	user.PUT("/update", UpdateCurrentUser)
	user.POST("/media/add", AddMedia)
	user.GET("/user/:username", GetProfile)
	user.POST("/friends/request", SendFriendRequest)
	user.GET("/friends/requests", GetFriendRequests)
	user.POST("/friends/respond", RespondFriendRequest)
	user.GET("/friends/list", GetFriends)

	messages := r.Group("/api/messages", middleware.AuthMiddleware())
	messages.GET("/conversations", GetConversations)
	messages.POST("/send", SendMessage)
	messages.GET("/:user_id", GetMessages)

	follow := r.Group("/api/follow", middleware.AuthMiddleware())
	follow.POST("", Follow)
	follow.DELETE("", Unfollow)
	follow.GET("/status/:target_user_id", FollowStatus)

	return r
}

// seedUser inserts a verified user and returns its id and bearer token.
func seedUser(t *testing.T, username string, private bool) (string, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	id := utils.GenerateUUID()
	_, err = database.DB.Exec(
		"INSERT INTO users (id, email, username, password, bio, avatar_url, is_private, is_verified, created_at, updated_at) VALUES (?, ?, ?, ?, '', '', ?, 1, ?, ?)",
		id, username+"@example.com", username, string(hashed), private, time.Now(), time.Now(),
	)
	require.NoError(t, err)

	token, err := utils.GenerateToken(id, username)
	require.NoError(t, err)
	return id, token
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "unexpected status, body: %s", w.Body.String())
}
