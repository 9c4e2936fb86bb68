package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"strikeboard/internal/domain"
	"strikeboard/internal/provider"

	"github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultPollAttempts = 10
	DefaultPollDelay    = 2 * time.Second

	// Agents get one week of market context for signal generation.
	signalContextWindowMs = int64(7 * 24 * time.Hour / time.Millisecond)

	progressCompleted = "completed"
)

// signalProtocols is the fixed protocol allowlist submitted with every
// trade agent.
var signalProtocols = []string{"derive", "aevo", "premia", "moby", "ithaca", "zomma", "deribit"}

var errSignalsPending = errors.New("signal request still pending")

type TradeAgentProvider interface {
	CreateTradeAgent(ctx context.Context, cfg provider.TradeAgentConfig) (string, error)
	RequestTradeAgentSignals(ctx context.Context, agentID string, cfg provider.SignalRequestConfig) error
	GetTradeSignals(ctx context.Context, agentID string) ([]provider.TradeAgent, error)
}

// SignalService runs the signal-generation workflow: create a remote trade
// agent, submit a signal request, poll until the request completes with at
// least one signal, then map the results. A local timeout stops polling
// only; the remote agent is left to finish (or not) on its own.
type SignalService struct {
	tracer       trace.Tracer
	provider     TradeAgentProvider
	pollAttempts int
	pollDelay    time.Duration
}

func NewSignalService(tracer trace.Tracer, agentProvider TradeAgentProvider, pollAttempts int, pollDelay time.Duration) *SignalService {
	if pollAttempts <= 0 {
		pollAttempts = DefaultPollAttempts
	}
	if pollDelay <= 0 {
		pollDelay = DefaultPollDelay
	}
	return &SignalService{
		tracer:       tracer,
		provider:     agentProvider,
		pollAttempts: pollAttempts,
		pollDelay:    pollDelay,
	}
}

func (s *SignalService) GenerateSignals(ctx context.Context, req domain.SignalRequest) (*domain.SignalResult, error) {
	ctx, span := s.tracer.Start(ctx, "signal-service.generate-signals")
	defer span.End()

	asset, err := domain.NormalizeAsset(req.Asset)
	if err != nil {
		return nil, err
	}
	if err := domain.RequirePositive("budget_usd", req.BudgetUSD); err != nil {
		return nil, err
	}
	if err := domain.RequirePositive("trade_window_ms", float64(req.TradeWindowMs)); err != nil {
		return nil, err
	}
	risk, err := domain.NormalizeRiskLevel(req.RiskLevel)
	if err != nil {
		return nil, err
	}
	focus, err := domain.NormalizeStrategyFocus(req.StrategyFocus)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("asset", asset),
		attribute.String("risk_level", risk),
		attribute.String("strategy_focus", focus),
	)

	agentID, err := s.provider.CreateTradeAgent(ctx, provider.TradeAgentConfig{
		AgentName:       "signal-generator",
		Protocols:       append([]string(nil), signalProtocols...),
		Asset:           asset,
		BudgetUSD:       req.BudgetUSD,
		TradeWindowMs:   req.TradeWindowMs,
		ContextWindowMs: signalContextWindowMs,
	})
	if err != nil {
		return nil, domain.Normalize(err, "createTradeAgent")
	}
	span.SetAttributes(attribute.String("agent_id", agentID))

	err = s.provider.RequestTradeAgentSignals(ctx, agentID, provider.SignalRequestConfig{
		Asset:         asset,
		BudgetUSD:     req.BudgetUSD,
		TradeWindowMs: req.TradeWindowMs,
		Prompt:        fmt.Sprintf("Generate %s %s strategies", risk, focus),
	})
	if err != nil {
		return nil, domain.Normalize(err, "requestTradeAgentSignals")
	}

	signals, err := s.pollForSignals(ctx, agentID)
	if err != nil {
		return nil, err
	}

	mapped := make([]domain.Signal, 0, len(signals))
	for _, sig := range signals {
		mapped = append(mapped, domain.Signal{
			ID:                         sig.ID,
			ActionType:                 sig.ActionType,
			PositionType:               sig.PositionType,
			Instrument:                 sig.Instrument,
			InstrumentType:             sig.InstrumentType,
			Size:                       sig.Size,
			ExpectedInstrumentPriceUSD: sig.ExpectedInstrumentPriceUSD,
			ExpectedTotalPriceUSD:      sig.ExpectedTotalPriceUSD,
			Reason:                     sig.Reason,
			TargetPositionID:           sig.TargetPositionID,
			CreatedAt:                  sig.CreatedAt,
			UpdatedAt:                  sig.UpdatedAt,
		})
	}

	return &domain.SignalResult{
		Signals:   mapped,
		Timestamp: time.Now().UnixMilli(),
	}, nil
}

// pollForSignals checks the agent status on a fixed cadence until the first
// signal request reports completed with at least one signal, or attempts
// run out.
func (s *SignalService) pollForSignals(ctx context.Context, agentID string) ([]provider.TradeSignal, error) {
	attempt := 0
	operation := func() ([]provider.TradeSignal, error) {
		attempt++

		agents, err := s.provider.GetTradeSignals(ctx, agentID)
		if err != nil {
			return nil, backoff.Permanent(domain.Normalize(err, "getTradeSignals"))
		}
		if len(agents) == 0 || len(agents[0].SignalRequests) == 0 {
			return nil, errSignalsPending
		}

		request := agents[0].SignalRequests[0]
		if request.Progress == progressCompleted && len(request.Signals) > 0 {
			return request.Signals, nil
		}
		return nil, errSignalsPending
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(s.pollDelay), uint64(s.pollAttempts-1)),
		ctx,
	)
	signals, err := backoff.RetryWithData(operation, policy)
	if err != nil {
		if errors.Is(err, errSignalsPending) {
			return nil, domain.NewDomainError(fmt.Sprintf("signal generation timed out after %d attempts", attempt))
		}
		return nil, domain.Normalize(err, "pollForSignals")
	}
	return signals, nil
}
