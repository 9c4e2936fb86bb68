package handler

import (
	"net/http"

	"strikeboard/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GenerateSignals godoc
// @Summary      Generate trading signals
// @Description  Creates a remote trade agent, submits a signal request, and polls until completion or timeout
// @Tags         signals
// @Accept       json
// @Produce      json
// @Param        request  body  domain.SignalRequest  true  "Signal generation parameters"
// @Success      200  {object}  domain.SignalResult
// @Failure      400  {object}  map[string]string
// @Failure      504  {object}  map[string]string
// @Router       /api/signals/generate [post]
func (h *Handler) GenerateSignals(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.generate-signals")
	defer span.End()

	var req domain.SignalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	span.SetAttributes(
		attribute.String("asset", req.Asset),
		attribute.String("risk_level", req.RiskLevel),
	)

	result, err := h.facade.GenerateSignals(ctx, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
