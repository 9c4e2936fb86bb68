package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"strikeboard/internal/domain"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

type stubMarketReader struct {
	quote  *domain.PriceQuote
	board  *domain.OptionsResult
	pairs  *domain.PerpsPairsResult
	errors map[string]error

	lastPriceAsset  string
	lastOptionsReq  domain.OptionsRequest
	lastPairsReq    domain.PerpsPairsRequest
	priceCallCount  int
	optionsCallRuns int
}

func (s *stubMarketReader) GetPrice(ctx context.Context, asset string) (*domain.PriceQuote, error) {
	s.priceCallCount++
	s.lastPriceAsset = asset
	if err := s.errors["price"]; err != nil {
		return nil, err
	}
	copied := *s.quote
	return &copied, nil
}

func (s *stubMarketReader) GetOptions(ctx context.Context, req domain.OptionsRequest) (*domain.OptionsResult, error) {
	s.optionsCallRuns++
	s.lastOptionsReq = req
	if err := s.errors["options"]; err != nil {
		return nil, err
	}
	copied := *s.board
	return &copied, nil
}

func (s *stubMarketReader) GetPerpsPairs(ctx context.Context, req domain.PerpsPairsRequest) (*domain.PerpsPairsResult, error) {
	s.lastPairsReq = req
	if err := s.errors["pairs"]; err != nil {
		return nil, err
	}
	copied := *s.pairs
	return &copied, nil
}

type stubSignalGenerator struct {
	result  *domain.SignalResult
	err     error
	lastReq domain.SignalRequest
}

func (s *stubSignalGenerator) GenerateSignals(ctx context.Context, req domain.SignalRequest) (*domain.SignalResult, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	copied := *s.result
	return &copied, nil
}

func testServer() (*sdkmcp.Server, *stubMarketReader, *stubSignalGenerator) {
	market := &stubMarketReader{
		quote: &domain.PriceQuote{
			Asset:          "BTC",
			PriceUSD:       94212.5,
			FormattedPrice: "$94,212.50",
			Timestamp:      time.Now().UnixMilli(),
		},
		board: &domain.OptionsResult{
			Asset:            "BTC",
			OptionType:       "call",
			FormattedOptions: "Expiry: 29AUG25",
			Options: []domain.OptionQuote{{
				OptionID: 1, Symbol: "BTC", Type: "call",
				Expiry: time.Date(2025, 8, 29, 8, 0, 0, 0, time.UTC),
				Strike: 50000, Protocol: "derive", PriceUSD: 1200, Available: 3,
			}},
			Timestamp: time.Now().UnixMilli(),
		},
		pairs: &domain.PerpsPairsResult{
			Pairs: []domain.PerpsPair{{BaseAsset: "BTC", QuoteAsset: "USD"}},
		},
		errors: map[string]error{},
	}
	signals := &stubSignalGenerator{
		result: &domain.SignalResult{
			Signals: []domain.Signal{{
				ID: "s1", ActionType: "open", PositionType: "long",
				Instrument: "BTC-29AUG25-50000-C", InstrumentType: "option",
				Size: 0.5, ExpectedInstrumentPriceUSD: 1200, ExpectedTotalPriceUSD: 600,
				Reason: "bullish skew", CreatedAt: "2025-08-29T08:00:00Z", UpdatedAt: "2025-08-29T08:05:00Z",
			}},
			Timestamp: time.Now().UnixMilli(),
		},
	}

	srv := NewServer(nil, market, signals, ServerConfig{RequestTimeout: time.Second})
	return srv, market, signals
}

func connectInMemory(ctx context.Context, srv *sdkmcp.Server) (*sdkmcp.ClientSession, context.CancelFunc, error) {
	clientTransport, serverTransport := sdkmcp.NewInMemoryTransports()
	runCtx, cancel := context.WithCancel(ctx)
	go func() { _ = srv.Run(runCtx, serverTransport) }()

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "mcp-test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		cancel()
		return nil, nil, err
	}
	return session, cancel, nil
}

type authRoundTripper struct {
	token string
	base  http.RoundTripper
}

func (t *authRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	if t.token != "" {
		clone.Header.Set("Authorization", "Bearer "+t.token)
	}
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(clone)
}

func decodeResourceJSON(result *sdkmcp.ReadResourceResult, out any) error {
	if len(result.Contents) == 0 {
		return nil
	}
	return json.Unmarshal([]byte(result.Contents[0].Text), out)
}
