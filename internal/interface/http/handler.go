package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/depression-screener/internal/domain/screening"
)

// Handler wires the HTTP transport to the screening service.
type Handler struct {
	svc    screening.Service
	logger *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(svc screening.Service, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger.With("component", "http.handler"),
	}
}

// Survey returns the questionnaire so API clients can build their own form.
func (h *Handler) Survey(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": screening.Questions()})
}

// Model describes the loaded classifier.
func (h *Handler) Model(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Model())
}

// Health reports liveness. The model is loaded before the server starts, so a running
// server always has one.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "model": h.svc.Model().Name})
}

// CreatePrediction assesses one set of survey answers.
func (h *Handler) CreatePrediction(c *gin.Context) {
	var req surveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.svc.Assess(c.Request.Context(), req.toResponse())
	if err != nil {
		abortWithError(c, assessError(err))
		return
	}

	c.JSON(http.StatusOK, resp)
}
