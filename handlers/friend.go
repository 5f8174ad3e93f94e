package handlers

import (
	"github.com/gin-gonic/gin"
	"socialword/middleware"
	"socialword/utils"
)

type SendFriendRequestRequest struct {
	ToUsername string `json:"to_username" binding:"required"`
}

type RespondFriendRequestRequest struct {
	RequestID string `json:"request_id" binding:"required"`
	Action    string `json:"action" binding:"required"`
}

func SendFriendRequest(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req SendFriendRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	request, err := Social.SendFriendRequest(c.Request.Context(), userID, req.ToUsername)
	if err != nil {
		respondSocialError(c, err, "failed to send friend request")
		return
	}

	utils.Created(c, request)
}

func GetFriendRequests(c *gin.Context) {
	userID := middleware.GetUserID(c)

	received, sent, err := Social.FriendRequests(c.Request.Context(), userID)
	if err != nil {
		respondSocialError(c, err, "failed to load friend requests")
		return
	}

	utils.Success(c, gin.H{"received": received, "sent": sent})
}

func RespondFriendRequest(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req RespondFriendRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	request, err := Social.RespondFriendRequest(c.Request.Context(), userID, req.RequestID, req.Action)
	if err != nil {
		respondSocialError(c, err, "failed to respond to friend request")
		return
	}

	utils.Success(c, gin.H{
		"message": "request " + request.Status,
		"request": request,
	})
}

func GetFriends(c *gin.Context) {
	userID := middleware.GetUserID(c)

	friends, err := Social.Friends(c.Request.Context(), userID)
	if err != nil {
		respondSocialError(c, err, "failed to load friends")
		return
	}

	utils.Success(c, friends)
}
