package controllers

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"SantaChat/pkg/voice"
)

// Transcribe exposes the server-side speech seam. Deployments without a
// speech provider run the no-op input and answer 501; the browser handles
// recognition itself in that case.
func Transcribe(in voice.Input) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Audio string `json:"audio"` // base64-encoded recording
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.Audio == "" {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "audio is required"})
			return
		}

		data, err := base64.StdEncoding.DecodeString(body.Audio)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "audio must be base64"})
			return
		}

		text, err := in.Transcribe(c.Request.Context(), data)
		if errors.Is(err, voice.ErrUnavailable) {
			c.JSON(http.StatusNotImplemented, gin.H{"msg": "speech recognition runs in the browser on this deployment"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "transcription failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"text": text})
	}
}
