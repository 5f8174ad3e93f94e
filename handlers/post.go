package handlers

import (
	"database/sql"
	"time"

	"github.com/gin-gonic/gin"
	"socialword/database"
	"socialword/middleware"
	"socialword/models"
	"socialword/utils"
)

type CreatePostRequest struct {
	Content  string `json:"content" binding:"required"`
	MediaURL string `json:"media_url"`
}

func GetPosts(c *gin.Context) {
	rows, err := database.DB.Query(`
		SELECT p.id, p.content, p.media_url, p.created_at, u.username, u.avatar_url,
		       (SELECT COUNT(*) FROM comments cm WHERE cm.post_id = p.id),
		       (SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id)
		FROM posts p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.created_at DESC
	`)
	if err != nil {
		utils.InternalError(c, "database error")
		return
	}
	defer rows.Close()

	posts := []models.PostResponse{}
	for rows.Next() {
		var p models.PostResponse
		var mediaURL sql.NullString
		if err := rows.Scan(
			&p.ID, &p.Content, &mediaURL, &p.CreatedAt,
			&p.Author.Username, &p.Author.AvatarURL,
			&p.CommentsCount, &p.LikesCount,
		); err != nil {
			utils.InternalError(c, "database error")
			return
		}
		p.MediaURL = mediaURL.String
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		utils.InternalError(c, "database error")
		return
	}

	utils.Success(c, posts)
}

func CreatePost(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	id := utils.GenerateUUID()
	now := time.Now()
	_, err := database.DB.Exec(
		"INSERT INTO posts (id, author_id, content, media_url, created_at) VALUES (?, ?, ?, ?, ?)",
		id, userID, req.Content, sql.NullString{String: req.MediaURL, Valid: req.MediaURL != ""}, now,
	)
	if err != nil {
		utils.InternalError(c, "failed to create post")
		return
	}

	var author models.AuthorInfo
	database.DB.QueryRow("SELECT username, avatar_url FROM users WHERE id = ?", userID).
		Scan(&author.Username, &author.AvatarURL)

	utils.Created(c, models.PostResponse{
		ID:        id,
		Content:   req.Content,
		MediaURL:  req.MediaURL,
		Author:    author,
		CreatedAt: now,
	})
}
