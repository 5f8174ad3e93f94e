package handlers

import (
	"github.com/gin-gonic/gin"
	"socialword/storage"
	"socialword/utils"
)

const maxUploadSize = 50 * 1024 * 1024

func UploadFile(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		utils.BadRequest(c, "no file uploaded")
		return
	}
	if header.Size > maxUploadSize {
		utils.BadRequest(c, "file too large (max 50MB)")
		return
	}

	file, err := header.Open()
	if err != nil {
		utils.InternalError(c, "failed to read file")
		return
	}
	defer file.Close()

	url, err := storage.UploadMedia(c.Request.Context(), file, header.Filename)
	if err != nil {
		utils.InternalError(c, "upload failed")
		return
	}

	utils.Success(c, gin.H{"url": url})
}
