package handlers

import (
	"github.com/gin-gonic/gin"
	"socialword/middleware"
	"socialword/utils"
)

type FollowRequest struct {
	TargetUserID string `json:"target_user_id" binding:"required"`
}

func Follow(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if err := Social.Follow(c.Request.Context(), userID, req.TargetUserID); err != nil {
		respondSocialError(c, err, "failed to follow user")
		return
	}

	utils.Success(c, gin.H{"message": "followed"})
}

func Unfollow(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if err := Social.Unfollow(c.Request.Context(), userID, req.TargetUserID); err != nil {
		respondSocialError(c, err, "failed to unfollow user")
		return
	}

	utils.Success(c, gin.H{"message": "unfollowed"})
}

func FollowStatus(c *gin.Context) {
	userID := middleware.GetUserID(c)
	targetID := c.Param("target_user_id")

	isFollowing, err := Social.IsFollowing(c.Request.Context(), userID, targetID)
	if err != nil {
		respondSocialError(c, err, "failed to check follow status")
		return
	}

	utils.Success(c, gin.H{"is_following": isFollowing})
}
