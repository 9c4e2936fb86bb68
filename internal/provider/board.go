package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"strikeboard/internal/domain"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const defaultRequestTimeout = 30 * time.Second

// BoardClient talks to the hosted derivatives board API. The underlying
// HTTP client is built lazily on first use; a missing credential is a
// permanent authentication failure for the instance.
type BoardClient struct {
	tracer  trace.Tracer
	apiKey  string
	baseURL string
	timeout time.Duration

	mu     sync.Mutex
	client *http.Client
}

func NewBoardClient(tracer trace.Tracer, apiKey, baseURL string, timeout time.Duration) *BoardClient {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &BoardClient{
		tracer:  tracer,
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
	}
}

func (c *BoardClient) ensureClient() (*http.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return c.client, nil
	}
	if strings.TrimSpace(c.apiKey) == "" {
		return nil, domain.NewAuthenticationError("board API key is missing")
	}
	c.client = &http.Client{Timeout: c.timeout}
	return c.client, nil
}

type priceResponse struct {
	AssetPrice float64 `json:"assetPrice"`
}

// FetchAssetPrice returns the current spot price for a board asset name
// (e.g. "bitcoin").
func (c *BoardClient) FetchAssetPrice(ctx context.Context, assetID string) (float64, error) {
	ctx, span := c.tracer.Start(ctx, "board-client.fetch-asset-price")
	defer span.End()
	span.SetAttributes(attribute.String("asset", assetID))

	var out priceResponse
	query := url.Values{"asset": {assetID}}
	if err := c.getJSON(ctx, "/v1/asset-price", query, &out, "fetchAssetPrice"); err != nil {
		return 0, err
	}
	return out.AssetPrice, nil
}

// BoardRequest selects one options board slice.
type BoardRequest struct {
	Asset        string
	OptionType   string
	PositionType string
}

type boardResponse struct {
	Results []boardRow `json:"results"`
}

type boardRow struct {
	OptionID        int64     `json:"optionId"`
	Symbol          string    `json:"symbol"`
	Type            string    `json:"type"`
	Expiry          time.Time `json:"expiry"`
	StrikePrice     float64   `json:"strikePrice"`
	Protocol        string    `json:"protocol"`
	ContractPrice   float64   `json:"contractPrice"`
	AvailableAmount float64   `json:"availableAmount"`
}

// GetOptionsMarketBoard fetches the full board for an asset/type/position
// combination.
func (c *BoardClient) GetOptionsMarketBoard(ctx context.Context, req BoardRequest) ([]domain.OptionQuote, error) {
	ctx, span := c.tracer.Start(ctx, "board-client.get-options-market-board")
	defer span.End()
	span.SetAttributes(
		attribute.String("asset", req.Asset),
		attribute.String("option_type", req.OptionType),
		attribute.String("position_type", req.PositionType),
	)

	query := url.Values{
		"asset":        {req.Asset},
		"optionType":   {req.OptionType},
		"positionType": {req.PositionType},
	}
	var out boardResponse
	if err := c.getJSON(ctx, "/v1/options-board", query, &out, "getOptionsMarketBoard"); err != nil {
		return nil, err
	}

	quotes := make([]domain.OptionQuote, 0, len(out.Results))
	for _, row := range out.Results {
		quotes = append(quotes, domain.OptionQuote{
			OptionID:  row.OptionID,
			Symbol:    row.Symbol,
			Type:      strings.ToLower(row.Type),
			Expiry:    row.Expiry,
			Strike:    row.StrikePrice,
			Protocol:  row.Protocol,
			PriceUSD:  row.ContractPrice,
			Available: row.AvailableAmount,
		})
	}
	return quotes, nil
}

type pairsResponse struct {
	Pairs []string `json:"pairs"`
}

// GetPerpsPairs returns raw BASE-QUOTE pair strings for a protocol,
// optionally narrowed to one base asset.
func (c *BoardClient) GetPerpsPairs(ctx context.Context, protocol, baseAsset string) ([]string, error) {
	ctx, span := c.tracer.Start(ctx, "board-client.get-perps-pairs")
	defer span.End()
	span.SetAttributes(attribute.String("protocol", protocol))

	query := url.Values{"protocol": {protocol}}
	if baseAsset != "" {
		query.Set("baseAsset", baseAsset)
	}
	var out pairsResponse
	if err := c.getJSON(ctx, "/v1/perps-pairs", query, &out, "getPerpsPairs"); err != nil {
		return nil, err
	}
	return out.Pairs, nil
}

// TradeAgentConfig is the simulation configuration submitted when a trade
// agent is created.
type TradeAgentConfig struct {
	AgentName       string   `json:"agentName"`
	Protocols       []string `json:"protocols"`
	Asset           string   `json:"asset"`
	BudgetUSD       float64  `json:"budgetUsd"`
	TradeWindowMs   int64    `json:"tradeWindowMs"`
	ContextWindowMs int64    `json:"contextWindowMs"`
}

type createAgentResponse struct {
	AgentID string `json:"agentId"`
}

// CreateTradeAgent provisions a remote signal-generation agent and returns
// its identifier. Agents are never reused or deleted by this client.
func (c *BoardClient) CreateTradeAgent(ctx context.Context, cfg TradeAgentConfig) (string, error) {
	ctx, span := c.tracer.Start(ctx, "board-client.create-trade-agent")
	defer span.End()

	var out createAgentResponse
	if err := c.postJSON(ctx, "/v1/trade-agents", cfg, &out, "createTradeAgent"); err != nil {
		return "", err
	}
	if out.AgentID == "" {
		return "", domain.NewAPIError(500, "createTradeAgent: empty agent id in response", nil)
	}
	return out.AgentID, nil
}

// SignalRequestConfig is the payload of one signal-generation request.
type SignalRequestConfig struct {
	Asset         string  `json:"asset"`
	BudgetUSD     float64 `json:"budgetUsd"`
	TradeWindowMs int64   `json:"tradeWindowMs"`
	Prompt        string  `json:"prompt"`
}

// RequestTradeAgentSignals submits a signal-generation request to an agent.
func (c *BoardClient) RequestTradeAgentSignals(ctx context.Context, agentID string, cfg SignalRequestConfig) error {
	ctx, span := c.tracer.Start(ctx, "board-client.request-trade-agent-signals")
	defer span.End()
	span.SetAttributes(attribute.String("agent_id", agentID))

	path := "/v1/trade-agents/" + url.PathEscape(agentID) + "/signal-requests"
	return c.postJSON(ctx, path, cfg, nil, "requestTradeAgentSignals")
}

// TradeAgent is the remote agent status as returned by the board API.
type TradeAgent struct {
	AgentID        string                `json:"agentId"`
	SignalRequests []SignalRequestStatus `json:"signalRequests"`
}

type SignalRequestStatus struct {
	Progress string        `json:"progress"`
	Signals  []TradeSignal `json:"signals"`
}

type TradeSignal struct {
	ID                         string  `json:"id"`
	ActionType                 string  `json:"actionType"`
	PositionType               string  `json:"positionType"`
	Instrument                 string  `json:"instrument"`
	InstrumentType             string  `json:"instrumentType"`
	Size                       float64 `json:"size"`
	ExpectedInstrumentPriceUSD float64 `json:"expectedInstrumentPriceUsd"`
	ExpectedTotalPriceUSD      float64 `json:"expectedTotalPriceUsd"`
	Reason                     string  `json:"reason"`
	TargetPositionID           string  `json:"targetPositionId"`
	CreatedAt                  string  `json:"createdAt"`
	UpdatedAt                  string  `json:"updatedAt"`
}

type tradeSignalsResponse struct {
	Agents []TradeAgent `json:"personalAgents"`
}

// GetTradeSignals fetches the current status of an agent's signal requests.
func (c *BoardClient) GetTradeSignals(ctx context.Context, agentID string) ([]TradeAgent, error) {
	ctx, span := c.tracer.Start(ctx, "board-client.get-trade-signals")
	defer span.End()
	span.SetAttributes(attribute.String("agent_id", agentID))

	query := url.Values{"agentId": {agentID}}
	var out tradeSignalsResponse
	if err := c.getJSON(ctx, "/v1/trade-agents", query, &out, "getTradeSignals"); err != nil {
		return nil, err
	}
	return out.Agents, nil
}

func (c *BoardClient) getJSON(ctx context.Context, path string, query url.Values, out any, label string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return domain.Normalize(err, label)
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	return c.do(req, out, label)
}

func (c *BoardClient) postJSON(ctx context.Context, path string, body, out any, label string) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return domain.Normalize(err, label)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return domain.Normalize(err, label)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out, label)
}

func (c *BoardClient) do(req *http.Request, out any, label string) error {
	client, err := c.ensureClient()
	if err != nil {
		return domain.Normalize(err, label)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := client.Do(req)
	if err != nil {
		return domain.NewServiceUnavailableError(fmt.Sprintf("%s: board API unreachable", label), err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Normalize(err, label)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return domain.NewAuthenticationError(fmt.Sprintf("%s: board API rejected credential", label))
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return domain.NewAPIError(resp.StatusCode, fmt.Sprintf("%s: %s", label, strings.TrimSpace(string(raw))), nil)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return domain.Normalize(err, label)
	}
	return nil
}
