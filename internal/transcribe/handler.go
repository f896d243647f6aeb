package transcribe

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"interview-backend/internal/shared/server/respond"
)

const maxAudioSize = 25 << 20 // 25MB, provider limit

// Handler exposes transcription over HTTP.
type Handler struct {
	Transcriber Transcriber
}

// NewHandler constructs a Handler.
func NewHandler(t Transcriber) *Handler {
	return &Handler{Transcriber: t}
}

// RegisterRoutes attaches transcription routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/transcriptions", h.create)
}

func (h *Handler) create(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxAudioSize)

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "audio file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read audio", nil)
		return
	}
	defer file.Close()

	text, err := h.Transcriber.Transcribe(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			respond.Error(c, http.StatusServiceUnavailable, "transcription_unavailable", "transcription is not configured", nil)
			return
		}
		respond.Error(c, http.StatusBadGateway, "transcription_failed", "failed to transcribe audio", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"transcript": text})
}
