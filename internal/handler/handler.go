package handler

import (
	"net/http"

	"strikeboard/internal/domain"
	"strikeboard/internal/service"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

type Handler struct {
	tracer trace.Tracer
	facade *service.Facade
}

func New(tracer trace.Tracer, facade *service.Facade) *Handler {
	return &Handler{tracer: tracer, facade: facade}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
	r.GET("/api/price/:asset", h.GetPrice)
	r.GET("/api/options", h.GetOptions)
	r.GET("/api/perps/pairs", h.GetPerpsPairs)
	r.POST("/api/signals/generate", h.GenerateSignals)
}

// Health godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// statusFor maps a taxonomy error to an HTTP status.
func statusFor(err error) int {
	e, ok := domain.AsError(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case domain.KindInvalidParameter:
		return http.StatusBadRequest
	case domain.KindAuthentication:
		return http.StatusUnauthorized
	case domain.KindServiceUnavailable:
		return http.StatusServiceUnavailable
	case domain.KindDomain:
		return http.StatusGatewayTimeout
	default:
		if e.StatusCode >= 400 && e.StatusCode < 600 {
			return e.StatusCode
		}
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}
