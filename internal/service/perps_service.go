package service

import (
	"context"
	"log"
	"strings"

	"strikeboard/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type PerpsPairsProvider interface {
	GetPerpsPairs(ctx context.Context, protocol, baseAsset string) ([]string, error)
}

// PerpsService serves available perpetual trading pairs per protocol.
type PerpsService struct {
	tracer   trace.Tracer
	provider PerpsPairsProvider
}

func NewPerpsService(tracer trace.Tracer, provider PerpsPairsProvider) *PerpsService {
	return &PerpsService{tracer: tracer, provider: provider}
}

func (s *PerpsService) GetPerpsPairs(ctx context.Context, req domain.PerpsPairsRequest) (*domain.PerpsPairsResult, error) {
	ctx, span := s.tracer.Start(ctx, "perps-service.get-perps-pairs")
	defer span.End()

	protocol, err := domain.NormalizeProtocol(req.Protocol)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("protocol", protocol))

	// An unsupported asset filter is ignored, not rejected; the query
	// proceeds unfiltered.
	baseAsset := ""
	if trimmed := strings.TrimSpace(req.Asset); trimmed != "" {
		if _, verr := domain.NormalizeAsset(trimmed); verr == nil {
			baseAsset = strings.ToUpper(trimmed)
		} else {
			log.Printf("ignoring unsupported perps asset filter: %s", trimmed)
		}
	}

	raw, err := s.provider.GetPerpsPairs(ctx, protocol, baseAsset)
	if err != nil {
		return nil, domain.Normalize(err, "getPerpsPairs")
	}

	pairs := make([]domain.PerpsPair, 0, len(raw))
	for _, pair := range raw {
		parts := strings.SplitN(pair, "-", 2)
		p := domain.PerpsPair{BaseAsset: parts[0]}
		if len(parts) > 1 {
			p.QuoteAsset = parts[1]
		}
		pairs = append(pairs, p)
	}
	return &domain.PerpsPairsResult{Pairs: pairs}, nil
}
