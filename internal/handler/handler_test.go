package handler

import (
	"context"
	"time"

	"strikeboard/internal/cache"
	"strikeboard/internal/domain"
	"strikeboard/internal/provider"
	"strikeboard/internal/service"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubProviders struct {
	price    float64
	priceErr error

	board    []domain.OptionQuote
	boardErr error

	pairs    []string
	pairsErr error

	agents    []provider.TradeAgent
	agentsErr error
}

func (s *stubProviders) FetchAssetPrice(ctx context.Context, assetID string) (float64, error) {
	if s.priceErr != nil {
		return 0, s.priceErr
	}
	return s.price, nil
}

func (s *stubProviders) GetOptionsMarketBoard(ctx context.Context, req provider.BoardRequest) ([]domain.OptionQuote, error) {
	if s.boardErr != nil {
		return nil, s.boardErr
	}
	return append([]domain.OptionQuote(nil), s.board...), nil
}

func (s *stubProviders) GetPerpsPairs(ctx context.Context, protocol, baseAsset string) ([]string, error) {
	if s.pairsErr != nil {
		return nil, s.pairsErr
	}
	return append([]string(nil), s.pairs...), nil
}

func (s *stubProviders) CreateTradeAgent(ctx context.Context, cfg provider.TradeAgentConfig) (string, error) {
	if s.agentsErr != nil {
		return "", s.agentsErr
	}
	return "agent-1", nil
}

func (s *stubProviders) RequestTradeAgentSignals(ctx context.Context, agentID string, cfg provider.SignalRequestConfig) error {
	return s.agentsErr
}

func (s *stubProviders) GetTradeSignals(ctx context.Context, agentID string) ([]provider.TradeAgent, error) {
	if s.agentsErr != nil {
		return nil, s.agentsErr
	}
	return append([]provider.TradeAgent(nil), s.agents...), nil
}

func newTestHandler(stub *stubProviders) *Handler {
	tracer := trace.NewNoopTracerProvider().Tracer("handler-test")
	facade := service.NewFacade(
		service.NewPriceService(tracer, stub),
		service.NewOptionsService(tracer, stub, cache.NewOptionsCache(cache.DefaultFreshness)),
		service.NewPerpsService(tracer, stub),
		service.NewSignalService(tracer, stub, 2, time.Millisecond),
	)
	return New(tracer, facade)
}

func newTestRouter(h *Handler) *gin.Engine {
	router := gin.New()
	h.RegisterRoutes(router)
	return router
}

func completedAgents() []provider.TradeAgent {
	return []provider.TradeAgent{{
		AgentID: "agent-1",
		SignalRequests: []provider.SignalRequestStatus{{
			Progress: "completed",
			Signals: []provider.TradeSignal{{
				ID:         "s1",
				ActionType: "open",
				Instrument: "BTC-29AUG25-50000-C",
				Size:       0.5,
			}},
		}},
	}}
}
