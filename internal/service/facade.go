package service

import (
	"context"

	"strikeboard/internal/domain"
)

// Facade is the single entry point external surfaces call into. It simply
// composes the four query/workflow services.
type Facade struct {
	prices  *PriceService
	options *OptionsService
	perps   *PerpsService
	signals *SignalService
}

func NewFacade(prices *PriceService, options *OptionsService, perps *PerpsService, signals *SignalService) *Facade {
	return &Facade{prices: prices, options: options, perps: perps, signals: signals}
}

func (f *Facade) GetPrice(ctx context.Context, asset string) (*domain.PriceQuote, error) {
	return f.prices.GetPrice(ctx, asset)
}

func (f *Facade) GetOptions(ctx context.Context, req domain.OptionsRequest) (*domain.OptionsResult, error) {
	return f.options.GetOptions(ctx, req)
}

func (f *Facade) GetPerpsPairs(ctx context.Context, req domain.PerpsPairsRequest) (*domain.PerpsPairsResult, error) {
	return f.perps.GetPerpsPairs(ctx, req)
}

func (f *Facade) GenerateSignals(ctx context.Context, req domain.SignalRequest) (*domain.SignalResult, error) {
	return f.signals.GenerateSignals(ctx, req)
}
