package handlers

import (
	"github.com/gin-gonic/gin"
	"socialword/middleware"
	"socialword/utils"
	"socialword/websocket"
)

type SendMessageRequest struct {
	ReceiverID string `json:"receiver_id" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

func GetConversations(c *gin.Context) {
	userID := middleware.GetUserID(c)

	conversations, err := Social.Conversations(c.Request.Context(), userID)
	if err != nil {
		respondSocialError(c, err, "failed to load conversations")
		return
	}

	utils.Success(c, conversations)
}

func SendMessage(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	msg, err := Social.SendMessage(c.Request.Context(), userID, req.ReceiverID, req.Content)
	if err != nil {
		respondSocialError(c, err, "failed to send message")
		return
	}

	// Best-effort realtime delivery; the message is already persisted.
	if websocket.HubInstance != nil {
		websocket.HubInstance.SendToUser(msg.ReceiverID, &websocket.Message{
			Event: "new_message",
			Data:  msg,
		})
	}

	utils.Created(c, msg)
}

func GetMessages(c *gin.Context) {
	userID := middleware.GetUserID(c)
	otherID := c.Param("user_id")

	messages, err := Social.Messages(c.Request.Context(), userID, otherID)
	if err != nil {
		respondSocialError(c, err, "failed to load messages")
		return
	}

	utils.Success(c, messages)
}
