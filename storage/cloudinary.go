// Package storage uploads user media to Cloudinary. Binary storage is
// delegated entirely to the CDN; the server only keeps URLs.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var cld *cloudinary.Cloudinary

var videoExts = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".avi":  true,
	".webm": true,
	".mkv":  true,
}

// Init configures the Cloudinary client from a cloudinary:// URL. An
// empty URL leaves uploads disabled.
func Init(cloudinaryURL string) error {
	if cloudinaryURL == "" {
		return nil
	}
	c, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return fmt.Errorf("configure cloudinary: %w", err)
	}
	cld = c
	return nil
}

// UploadMedia streams a file to Cloudinary and returns its public URL.
func UploadMedia(ctx context.Context, file io.Reader, filename string) (string, error) {
	if cld == nil {
		return "", fmt.Errorf("media storage is not configured")
	}

	resourceType := "image"
	if videoExts[strings.ToLower(filepath.Ext(filename))] {
		resourceType = "video"
	}

	resp, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       "socialword",
		ResourceType: resourceType,
	})
	if err != nil {
		return "", fmt.Errorf("upload media: %w", err)
	}
	return resp.SecureURL, nil
}
