package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"socialword/database"
	"socialword/middleware"
	"socialword/models"
	"socialword/utils"
)

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

func GetComments(c *gin.Context) {
	postID := c.Param("post_id")

	rows, err := database.DB.Query(`
		SELECT cm.id, cm.post_id, cm.author_id, cm.content, cm.created_at, u.username, u.avatar_url
		FROM comments cm
		JOIN users u ON u.id = cm.author_id
		WHERE cm.post_id = ?
		ORDER BY cm.created_at ASC
	`, postID)
	if err != nil {
		utils.InternalError(c, "database error")
		return
	}
	defer rows.Close()

	comments := []models.CommentResponse{}
	for rows.Next() {
		var cm models.CommentResponse
		if err := rows.Scan(
			&cm.ID, &cm.PostID, &cm.AuthorID, &cm.Content, &cm.CreatedAt,
			&cm.Author.Username, &cm.Author.AvatarURL,
		); err != nil {
			utils.InternalError(c, "database error")
			return
		}
		comments = append(comments, cm)
	}
	if err := rows.Err(); err != nil {
		utils.InternalError(c, "database error")
		return
	}

	utils.Success(c, comments)
}

func CreateComment(c *gin.Context) {
	userID := middleware.GetUserID(c)
	postID := c.Param("post_id")

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		utils.BadRequest(c, "comment is empty")
		return
	}

	var postExists bool
	if err := database.DB.QueryRow("SELECT EXISTS(SELECT 1 FROM posts WHERE id = ?)", postID).Scan(&postExists); err != nil {
		utils.InternalError(c, "database error")
		return
	}
	if !postExists {
		utils.NotFound(c, "post not found")
		return
	}

	comment := models.CommentResponse{
		Comment: models.Comment{
			ID:        utils.GenerateUUID(),
			PostID:    postID,
			AuthorID:  userID,
			Content:   req.Content,
			CreatedAt: time.Now(),
		},
	}
	_, err := database.DB.Exec(
		"INSERT INTO comments (id, post_id, author_id, content, created_at) VALUES (?, ?, ?, ?, ?)",
		comment.ID, comment.PostID, comment.AuthorID, comment.Content, comment.CreatedAt,
	)
	if err != nil {
		utils.InternalError(c, "failed to create comment")
		return
	}

	database.DB.QueryRow("SELECT username, avatar_url FROM users WHERE id = ?", userID).
		Scan(&comment.Author.Username, &comment.Author.AvatarURL)

	utils.Created(c, comment)
}
