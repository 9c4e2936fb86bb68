package service

import (
	"context"
	"strings"
	"time"

	"strikeboard/internal/cache"
	"strikeboard/internal/domain"
	"strikeboard/internal/provider"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type OptionsBoardProvider interface {
	GetOptionsMarketBoard(ctx context.Context, req provider.BoardRequest) ([]domain.OptionQuote, error)
}

// OptionsService serves options board queries through a keyed freshness
// cache. A stale or missing key triggers one board fetch whose result
// replaces that key's entry wholesale.
type OptionsService struct {
	tracer   trace.Tracer
	provider OptionsBoardProvider
	cache    *cache.OptionsCache
}

func NewOptionsService(tracer trace.Tracer, boardProvider OptionsBoardProvider, boardCache *cache.OptionsCache) *OptionsService {
	if boardCache == nil {
		boardCache = cache.NewOptionsCache(cache.DefaultFreshness)
	}
	return &OptionsService{tracer: tracer, provider: boardProvider, cache: boardCache}
}

func (s *OptionsService) GetOptions(ctx context.Context, req domain.OptionsRequest) (*domain.OptionsResult, error) {
	ctx, span := s.tracer.Start(ctx, "options-service.get-options")
	defer span.End()

	asset, err := domain.NormalizeAsset(req.Asset)
	if err != nil {
		return nil, err
	}
	optionType, err := domain.NormalizeOptionType(req.OptionType)
	if err != nil {
		return nil, err
	}
	positionType, err := domain.NormalizePositionType(req.PositionType)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("asset", asset),
		attribute.String("option_type", optionType),
		attribute.String("position_type", positionType),
	)

	key := cache.BoardKey{Asset: asset, OptionType: optionType, PositionType: positionType}
	quotes, ok := s.cache.Get(key)
	if !ok {
		quotes, err = s.provider.GetOptionsMarketBoard(ctx, provider.BoardRequest{
			Asset:        asset,
			OptionType:   optionType,
			PositionType: positionType,
		})
		if err != nil {
			return nil, domain.Normalize(err, "getOptionsMarketBoard")
		}
		s.cache.Put(key, quotes)
	}
	span.SetAttributes(attribute.Bool("cache_hit", ok))

	filtered := filterByType(quotes, optionType)

	return &domain.OptionsResult{
		Asset:            asset,
		OptionType:       optionType,
		FormattedOptions: FormatOptionsBoard(filtered),
		Options:          filtered,
		Timestamp:        time.Now().UnixMilli(),
	}, nil
}

func filterByType(quotes []domain.OptionQuote, optionType string) []domain.OptionQuote {
	filtered := make([]domain.OptionQuote, 0, len(quotes))
	for _, q := range quotes {
		if strings.EqualFold(q.Type, optionType) {
			filtered = append(filtered, q)
		}
	}
	return filtered
}
