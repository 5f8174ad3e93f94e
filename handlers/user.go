package handlers

import (
	"database/sql"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"socialword/database"
	"socialword/middleware"
	"socialword/models"
	"socialword/utils"
)

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

type UpdateUserRequest struct {
	Username  string `json:"username" binding:"required"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
	IsPrivate bool   `json:"is_private"`
}

type AddMediaRequest struct {
	URL  string `json:"url" binding:"required"`
	Type string `json:"type" binding:"required,oneof=image video"`
}

func GetCurrentUser(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var user models.User
	err := database.DB.QueryRow(
		"SELECT id, email, username, bio, avatar_url, is_private, created_at FROM users WHERE id = ?",
		userID,
	).Scan(&user.ID, &user.Email, &user.Username, &user.Bio, &user.AvatarURL, &user.IsPrivate, &user.CreatedAt)
	if err == sql.ErrNoRows {
		utils.NotFound(c, "user not found")
		return
	}
	if err != nil {
		utils.InternalError(c, "database error")
		return
	}

	followers, err := Social.FollowersCount(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "database error")
		return
	}
	following, err := Social.FollowingCount(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "database error")
		return
	}

	media, err := listUserMedia(userID)
	if err != nil {
		utils.InternalError(c, "database error")
		return
	}

	utils.Success(c, gin.H{
		"id":              user.ID,
		"email":           user.Email,
		"username":        user.Username,
		"bio":             user.Bio,
		"avatar_url":      user.AvatarURL,
		"is_private":      user.IsPrivate,
		"created_at":      user.CreatedAt,
		"media":           media,
		"followers_count": followers,
		"following_count": following,
	})
}

func SearchUsers(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if len(query) < 2 {
		utils.BadRequest(c, "search query too short")
		return
	}

	// Escape LIKE metacharacters so the query is a literal substring
	// match; %% or __ must not widen the search.
	escaped := likeEscaper.Replace(strings.ToLower(query))
	rows, err := database.DB.Query(
		"SELECT id, username, bio, avatar_url FROM users WHERE username LIKE ? ESCAPE '!' LIMIT 20",
		"%"+escaped+"%",
	)
	if err != nil {
		utils.InternalError(c, "database error")
		return
	}
	defer rows.Close()

	users := []models.UserResponse{}
	for rows.Next() {
		var u models.UserResponse
		if err := rows.Scan(&u.ID, &u.Username, &u.Bio, &u.AvatarURL); err != nil {
			utils.InternalError(c, "database error")
			return
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		utils.InternalError(c, "database error")
		return
	}

	utils.Success(c, users)
}

func UpdateCurrentUser(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	if !usernamePattern.MatchString(username) {
		utils.BadRequest(c, "invalid username (3-20 characters, letters, digits or _)")
		return
	}

	var taken bool
	if err := database.DB.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM users WHERE username = ? AND id != ?)",
		username, userID,
	).Scan(&taken); err != nil {
		utils.InternalError(c, "database error")
		return
	}
	if taken {
		utils.BadRequest(c, "username already taken")
		return
	}

	_, err := database.DB.Exec(
		"UPDATE users SET username = ?, bio = ?, avatar_url = ?, is_private = ?, updated_at = ? WHERE id = ?",
		username, req.Bio, req.AvatarURL, req.IsPrivate, time.Now(), userID,
	)
	if err != nil {
		utils.InternalError(c, "failed to update user")
		return
	}

	utils.Success(c, gin.H{"message": "profile updated"})
}

func AddMedia(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req AddMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	media := models.Media{
		ID:        utils.GenerateUUID(),
		UserID:    userID,
		URL:       req.URL,
		Type:      req.Type,
		CreatedAt: time.Now(),
	}
	_, err := database.DB.Exec(
		"INSERT INTO media (id, user_id, url, type, created_at) VALUES (?, ?, ?, ?, ?)",
		media.ID, media.UserID, media.URL, media.Type, media.CreatedAt,
	)
	if err != nil {
		utils.InternalError(c, "failed to save media")
		return
	}

	utils.Created(c, media)
}

func GetProfile(c *gin.Context) {
	viewerID := middleware.GetUserID(c)
	username := strings.TrimSpace(c.Param("username"))

	profile, err := Social.Profile(c.Request.Context(), viewerID, username)
	if err != nil {
		respondSocialError(c, err, "failed to load profile")
		return
	}

	utils.Success(c, profile)
}

func listUserMedia(userID string) ([]models.Media, error) {
	rows, err := database.DB.Query(
		"SELECT id, user_id, url, type, created_at FROM media WHERE user_id = ? ORDER BY created_at DESC",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	media := []models.Media{}
	for rows.Next() {
		var m models.Media
		if err := rows.Scan(&m.ID, &m.UserID, &m.URL, &m.Type, &m.CreatedAt); err != nil {
			return nil, err
		}
		media = append(media, m)
	}
	return media, rows.Err()
}
