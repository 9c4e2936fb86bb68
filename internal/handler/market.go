package handler

import (
	"net/http"
	"strconv"
	"strings"

	"strikeboard/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetPrice godoc
// @Summary      Get current spot price
// @Description  Returns the current USD spot price for a supported asset
// @Tags         market
// @Produce      json
// @Param        asset  path  string  true  "Asset symbol (BTC or ETH)"
// @Success      200  {object}  domain.PriceQuote
// @Failure      400  {object}  map[string]string
// @Router       /api/price/{asset} [get]
func (h *Handler) GetPrice(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-price")
	defer span.End()

	asset := c.Param("asset")
	span.SetAttributes(attribute.String("asset", asset))

	quote, err := h.facade.GetPrice(ctx, asset)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// GetOptions godoc
// @Summary      Get the options market board
// @Description  Returns the options board for an asset, grouped by expiry and instrument symbol
// @Tags         market
// @Produce      json
// @Param        asset         query  string  true   "Asset symbol (BTC or ETH)"
// @Param        optionType    query  string  true   "Option type (call or put)"
// @Param        positionType  query  string  false  "Position type (long or short, default short)"
// @Param        strike        query  number  false  "Strike price hint (forwarded, not applied)"
// @Param        expiry        query  string  false  "Expiry hint (forwarded, not applied)"
// @Success      200  {object}  domain.OptionsResult
// @Failure      400  {object}  map[string]string
// @Router       /api/options [get]
func (h *Handler) GetOptions(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-options")
	defer span.End()

	req := domain.OptionsRequest{
		Asset:        c.Query("asset"),
		OptionType:   c.Query("optionType"),
		PositionType: c.Query("positionType"),
		Expiry:       c.Query("expiry"),
	}
	if raw := strings.TrimSpace(c.Query("strike")); raw != "" {
		strike, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "strike must be a number"})
			return
		}
		req.Strike = strike
	}

	result, err := h.facade.GetOptions(ctx, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetPerpsPairs godoc
// @Summary      List perpetual trading pairs
// @Description  Returns available pairs for a perpetuals protocol, optionally filtered by base asset
// @Tags         market
// @Produce      json
// @Param        protocolName  query  string  true   "Protocol name (hyperliquid)"
// @Param        asset         query  string  false  "Base asset filter (BTC or ETH; other values ignored)"
// @Success      200  {object}  domain.PerpsPairsResult
// @Failure      400  {object}  map[string]string
// @Router       /api/perps/pairs [get]
func (h *Handler) GetPerpsPairs(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-perps-pairs")
	defer span.End()

	result, err := h.facade.GetPerpsPairs(ctx, domain.PerpsPairsRequest{
		Protocol: c.Query("protocolName"),
		Asset:    c.Query("asset"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
