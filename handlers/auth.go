package handlers

import (
	"database/sql"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"socialword/database"
	"socialword/mailer"
	"socialword/models"
	"socialword/utils"
)

const verificationCodeTTL = 10 * time.Minute

var usernamePattern = regexp.MustCompile(`^[a-z0-9_]{3,20}$`)

// Swapped out in tests.
var sendVerificationEmail = mailer.SendVerificationEmail

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type VerifyRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Message string              `json:"message"`
	Token   string              `json:"token,omitempty"`
	User    models.UserResponse `json:"user"`
}

func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	if !usernamePattern.MatchString(username) {
		utils.BadRequest(c, "invalid username (3-20 characters, letters, digits or _)")
		return
	}

	var exists bool
	if err := database.DB.QueryRow("SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)", req.Email).Scan(&exists); err != nil {
		utils.InternalError(c, "database error")
		return
	}
	if exists {
		utils.BadRequest(c, "email already in use")
		return
	}

	if err := database.DB.QueryRow("SELECT EXISTS(SELECT 1 FROM users WHERE username = ?)", username).Scan(&exists); err != nil {
		utils.InternalError(c, "database error")
		return
	}
	if exists {
		utils.BadRequest(c, "username already taken")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.InternalError(c, "failed to hash password")
		return
	}

	id := utils.GenerateUUID()
	now := time.Now()
	_, err = database.DB.Exec(
		"INSERT INTO users (id, email, username, password, is_private, is_verified, created_at, updated_at) VALUES (?, ?, ?, ?, FALSE, FALSE, ?, ?)",
		id, req.Email, username, string(hashed), now, now,
	)
	if err != nil {
		utils.InternalError(c, "failed to create user")
		return
	}

	code := utils.GenerateVerificationCode()
	expiresAt := now.Add(verificationCodeTTL).UTC().UnixMicro()
	_, err = database.DB.Exec(
		"INSERT INTO verification_codes (id, email, code, expires_at, created_at) VALUES (?, ?, ?, ?, ?)",
		utils.GenerateUUID(), req.Email, code, expiresAt, now,
	)
	if err != nil {
		utils.InternalError(c, "failed to store verification code")
		return
	}

	if err := sendVerificationEmail(req.Email, username, code); err != nil {
		utils.InternalError(c, "failed to send verification email")
		return
	}

	utils.Created(c, AuthResponse{
		Message: "registration successful, check your inbox for the code",
		User: models.UserResponse{
			ID:       id,
			Username: username,
		},
	})
}

func Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	var expiresAt int64
	err := database.DB.QueryRow(
		"SELECT expires_at FROM verification_codes WHERE email = ? AND code = ?",
		req.Email, req.Code,
	).Scan(&expiresAt)
	if err == sql.ErrNoRows || (err == nil && time.Now().UTC().UnixMicro() > expiresAt) {
		utils.BadRequest(c, "incorrect or expired code")
		return
	}
	if err != nil {
		utils.InternalError(c, "database error")
		return
	}

	var user models.User
	err = database.DB.QueryRow(
		"SELECT id, email, username, bio, avatar_url FROM users WHERE email = ?",
		req.Email,
	).Scan(&user.ID, &user.Email, &user.Username, &user.Bio, &user.AvatarURL)
	if err == sql.ErrNoRows {
		utils.NotFound(c, "user not found")
		return
	}
	if err != nil {
		utils.InternalError(c, "database error")
		return
	}

	if _, err := database.DB.Exec("UPDATE users SET is_verified = TRUE, updated_at = ? WHERE email = ?", time.Now(), req.Email); err != nil {
		utils.InternalError(c, "failed to verify user")
		return
	}
	database.DB.Exec("DELETE FROM verification_codes WHERE email = ?", req.Email)

	token, err := utils.GenerateToken(user.ID, user.Username)
	if err != nil {
		utils.InternalError(c, "failed to generate token")
		return
	}

	utils.Success(c, AuthResponse{
		Message: "verification successful",
		Token:   token,
		User:    *user.ToResponse(),
	})
}

func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	var user models.User
	err := database.DB.QueryRow(
		"SELECT id, email, username, bio, avatar_url, password, is_verified FROM users WHERE email = ?",
		req.Email,
	).Scan(&user.ID, &user.Email, &user.Username, &user.Bio, &user.AvatarURL, &user.Password, &user.IsVerified)
	if err == sql.ErrNoRows {
		utils.Unauthorized(c, "invalid email or password")
		return
	}
	if err != nil {
		utils.InternalError(c, "database error")
		return
	}

	if !user.IsVerified {
		utils.Forbidden(c, "account not verified")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.Unauthorized(c, "invalid email or password")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Username)
	if err != nil {
		utils.InternalError(c, "failed to generate token")
		return
	}

	utils.Success(c, AuthResponse{
		Message: "login successful",
		Token:   token,
		User:    *user.ToResponse(),
	})
}
