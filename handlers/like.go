package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"socialword/database"
	"socialword/middleware"
	"socialword/utils"
)

func LikePost(c *gin.Context) {
	userID := middleware.GetUserID(c)
	postID := c.Param("post_id")

	var postExists bool
	if err := database.DB.QueryRow("SELECT EXISTS(SELECT 1 FROM posts WHERE id = ?)", postID).Scan(&postExists); err != nil {
		utils.InternalError(c, "database error")
		return
	}
	if !postExists {
		utils.NotFound(c, "post not found")
		return
	}

	var liked bool
	if err := database.DB.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM likes WHERE post_id = ? AND user_id = ?)",
		postID, userID,
	).Scan(&liked); err != nil {
		utils.InternalError(c, "database error")
		return
	}
	if liked {
		utils.BadRequest(c, "already liked")
		return
	}

	_, err := database.DB.Exec(
		"INSERT INTO likes (id, post_id, user_id, created_at) VALUES (?, ?, ?, ?)",
		utils.GenerateUUID(), postID, userID, time.Now(),
	)
	if err != nil {
		utils.InternalError(c, "failed to like post")
		return
	}

	count, err := likesCount(postID)
	if err != nil {
		utils.InternalError(c, "database error")
		return
	}
	utils.Created(c, gin.H{"id": postID, "likes_count": count})
}

func UnlikePost(c *gin.Context) {
	userID := middleware.GetUserID(c)
	postID := c.Param("post_id")

	_, err := database.DB.Exec(
		"DELETE FROM likes WHERE post_id = ? AND user_id = ?",
		postID, userID,
	)
	if err != nil {
		utils.InternalError(c, "failed to unlike post")
		return
	}

	count, err := likesCount(postID)
	if err != nil {
		utils.InternalError(c, "database error")
		return
	}
	utils.Success(c, gin.H{"id": postID, "likes_count": count})
}

func GetLikes(c *gin.Context) {
	userID := middleware.GetUserID(c)

	rows, err := database.DB.Query("SELECT post_id FROM likes WHERE user_id = ?", userID)
	if err != nil {
		utils.InternalError(c, "database error")
		return
	}
	defer rows.Close()

	likedPostIDs := []string{}
	for rows.Next() {
		var postID string
		if err := rows.Scan(&postID); err != nil {
			utils.InternalError(c, "database error")
			return
		}
		likedPostIDs = append(likedPostIDs, postID)
	}
	if err := rows.Err(); err != nil {
		utils.InternalError(c, "database error")
		return
	}

	utils.Success(c, gin.H{"liked_post_ids": likedPostIDs})
}

func likesCount(postID string) (int, error) {
	var n int
	err := database.DB.QueryRow("SELECT COUNT(*) FROM likes WHERE post_id = ?", postID).Scan(&n)
	return n, err
}
