package service

import (
	"context"
	"time"

	"strikeboard/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type PriceProvider interface {
	FetchAssetPrice(ctx context.Context, assetID string) (float64, error)
}

// PriceService serves validated pass-through spot-price queries. Every call
// reaches the board API; prices are never cached.
type PriceService struct {
	tracer   trace.Tracer
	provider PriceProvider
}

func NewPriceService(tracer trace.Tracer, provider PriceProvider) *PriceService {
	return &PriceService{tracer: tracer, provider: provider}
}

var usdPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatUSD renders a price as grouped US currency, e.g. "$94,212.50".
func FormatUSD(price float64) string {
	return usdPrinter.Sprintf("$%.2f", price)
}

func (s *PriceService) GetPrice(ctx context.Context, asset string) (*domain.PriceQuote, error) {
	ctx, span := s.tracer.Start(ctx, "price-service.get-price")
	defer span.End()

	asset, err := domain.NormalizeAsset(asset)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("asset", asset))

	price, err := s.provider.FetchAssetPrice(ctx, domain.AssetFeedID[asset])
	if err != nil {
		return nil, domain.Normalize(err, "fetchAssetPrice")
	}

	return &domain.PriceQuote{
		Asset:          asset,
		PriceUSD:       price,
		FormattedPrice: FormatUSD(price),
		Timestamp:      time.Now().UnixMilli(),
	}, nil
}
