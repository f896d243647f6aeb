package history

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"interview-backend/internal/shared/server/middleware"
	"interview-backend/internal/shared/server/respond"
)

// Handler exposes the practice trail over HTTP.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches history routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/history", h.list)
}

type entryResponse struct {
	ID            string    `json:"id"`
	OverallScore  int       `json:"overallScore"`
	QuestionCount int       `json:"questionCount"`
	CompletedAt   time.Time `json:"completedAt"`
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	isGuest := guestFromContext(c)

	entries, err := h.Svc.List(c.Request.Context(), userID, isGuest)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list history", nil)
		return
	}

	resp := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, entryResponse{
			ID:            e.ID,
			OverallScore:  e.OverallScore,
			QuestionCount: e.QuestionCount,
			CompletedAt:   e.CreatedAt,
		})
	}

	respond.JSON(c, http.StatusOK, resp)
}

func guestFromContext(c *gin.Context) bool {
	if isGuest, ok := c.Get("isGuest"); ok {
		if guest, ok2 := isGuest.(bool); ok2 {
			return guest
		}
	}
	return false
}
