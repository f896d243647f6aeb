package interviews

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"interview-backend/internal/evaluation"
	"interview-backend/internal/shared/server/middleware"
	"interview-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches interview routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/interviews", h.start)
	rg.POST("/interviews/:id/answers", h.answer)
	rg.POST("/interviews/:id/complete", h.complete)
	rg.GET("/interviews/:id/report", h.report)
	rg.POST("/coaching-hints", h.hints)
}

// RegisterPollingRoutes attaches the routes clients poll while a session is
// in progress; the router puts these behind the rate limiter.
func (h *Handler) RegisterPollingRoutes(rg *gin.RouterGroup) {
	rg.GET("/interviews/:id", h.get)
}

func (h *Handler) start(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	isGuest := guestFromContext(c)

	var req startRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return
		}
	}

	session, err := h.Svc.Start(c.Request.Context(), userID, isGuest, StartInput{
		Language: req.Language,
		Counts:   req.categoryCounts(),
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingResume):
			respond.Error(c, http.StatusBadRequest, "resume_required", "upload a resume before starting an interview", nil)
		case errors.Is(err, ErrMissingJobDescription):
			respond.Error(c, http.StatusBadRequest, "job_description_required", "upload a job description before starting an interview", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrQuotaExceeded):
			respond.Error(c, http.StatusTooManyRequests, "quota_exceeded", "weekly interview limit reached", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to start interview", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toSessionResponse(session))
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	session, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "interview not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch interview", nil)
		return
	}

	respond.JSON(c, http.StatusOK, toSessionResponse(session))
}

func (h *Handler) answer(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.Position == nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "position is required", nil)
		return
	}

	result, err := h.Svc.Answer(c.Request.Context(), userID, c.Param("id"), *req.Position, req.Transcript)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "interview not found", nil)
		case errors.Is(err, ErrSessionCompleted):
			respond.Error(c, http.StatusConflict, "session_completed", "interview is already completed", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to record answer", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toAnswerResponse(result))
}

func (h *Handler) complete(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	isGuest := guestFromContext(c)

	report, err := h.Svc.Complete(c.Request.Context(), userID, c.Param("id"), isGuest)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "interview not found", nil)
		case errors.Is(err, ErrNoAnswers):
			respond.Error(c, http.StatusBadRequest, "validation_error", "answer at least one question before completing", nil)
		case errors.Is(err, ErrSessionCompleted):
			respond.Error(c, http.StatusConflict, "session_completed", "interview is already completed", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to complete interview", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, report)
}

func (h *Handler) report(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	session, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "interview not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch interview", nil)
		return
	}
	if session.Report == nil {
		respond.Error(c, http.StatusNotFound, "not_found", "report not ready", nil)
		return
	}

	respond.JSON(c, http.StatusOK, *session.Report)
}

func (h *Handler) hints(c *gin.Context) {
	var req hintsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"hints": evaluation.CoachingHints(req.Transcript)})
}

func guestFromContext(c *gin.Context) bool {
	if isGuest, ok := c.Get("isGuest"); ok {
		if guest, ok2 := isGuest.(bool); ok2 {
			return guest
		}
	}
	return false
}
