package mcp

import (
	"context"

	"strikeboard/internal/domain"
)

// MarketReader exposes the query operations backed by the board API.
type MarketReader interface {
	GetPrice(ctx context.Context, asset string) (*domain.PriceQuote, error)
	GetOptions(ctx context.Context, req domain.OptionsRequest) (*domain.OptionsResult, error)
	GetPerpsPairs(ctx context.Context, req domain.PerpsPairsRequest) (*domain.PerpsPairsResult, error)
}

// SignalGenerator exposes the trade-agent signal workflow.
type SignalGenerator interface {
	GenerateSignals(ctx context.Context, req domain.SignalRequest) (*domain.SignalResult, error)
}
