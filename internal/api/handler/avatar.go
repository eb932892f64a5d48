package handler

import (
	"bytes"
	"encoding/base64"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"

	"github.com/jon4hz/productflow/internal/api/models"
	"github.com/jon4hz/productflow/internal/session"
)

const (
	// maxAvatarUploadBytes caps the accepted upload size.
	maxAvatarUploadBytes = 5 << 20
	// avatarEdge is the bounding box the uploaded image is fitted into
	// before it is stored inline.
	avatarEdge = 256
)

// UploadAvatar accepts an image file, fits it into a fixed bounding box
// and stores it as an inline base64 data URI on the user record.
func (h *Handler) UploadAvatar(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxAvatarUploadBytes)

	file, _, err := c.Request.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "avatar file is required"})
		return
	}
	defer file.Close() //nolint:errcheck

	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is not a supported image"})
		return
	}

	img = imaging.Fit(img, avatarEdge, avatarEdge, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		log.Error("failed to encode avatar", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please try again"})
		return
	}

	avatar := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
	if err := h.sessions.UpdateUser(session.Update{Avatar: &avatar}); err != nil {
		log.Error("failed to store avatar", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please try again"})
		return
	}

	c.JSON(http.StatusOK, models.ToUserResponse(h.sessions.Current()))
}
