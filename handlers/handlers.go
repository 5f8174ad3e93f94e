package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"socialword/social"
	"socialword/utils"
)

// Social is the relationship/messaging core shared by all handlers,
// wired up in main.
var Social *social.Store

// respondSocialError maps the core's tagged errors to HTTP responses.
// Unknown errors stay opaque behind the fallback message.
func respondSocialError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, social.ErrNotFound):
		utils.NotFound(c, err.Error())
	case errors.Is(err, social.ErrPrivate):
		utils.Forbidden(c, err.Error())
	case errors.Is(err, social.ErrSelfReference),
		errors.Is(err, social.ErrDuplicate),
		errors.Is(err, social.ErrInvalidState),
		errors.Is(err, social.ErrValidation):
		utils.BadRequest(c, err.Error())
	default:
		utils.InternalError(c, fallback)
	}
}
