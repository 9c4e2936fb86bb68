package domain

import (
	"fmt"
	"strings"
	"time"
)

// SupportedAssets lists the underlying assets the board API serves.
var SupportedAssets = []string{"BTC", "ETH"}

// AssetFeedID maps an asset symbol to the board API's asset-name string.
var AssetFeedID = map[string]string{
	"BTC": "bitcoin",
	"ETH": "ethereum",
}

const (
	OptionTypeCall = "call"
	OptionTypePut  = "put"

	PositionTypeLong  = "long"
	PositionTypeShort = "short"

	ProtocolHyperliquid = "hyperliquid"
)

// SupportedProtocols lists the perpetuals protocols the board API serves.
var SupportedProtocols = []string{ProtocolHyperliquid}

const (
	RiskConservative = "conservative"
	RiskModerate     = "moderate"
	RiskAggressive   = "aggressive"
)

var RiskLevels = []string{RiskConservative, RiskModerate, RiskAggressive}

const (
	FocusIncome  = "income"
	FocusGrowth  = "growth"
	FocusHedging = "hedging"
)

var StrategyFocuses = []string{FocusIncome, FocusGrowth, FocusHedging}

// NormalizeAsset canonicalizes an asset symbol and checks membership.
func NormalizeAsset(asset string) (string, error) {
	asset = strings.ToUpper(strings.TrimSpace(asset))
	if asset == "" {
		return "", NewInvalidParameterError("asset is required")
	}
	if _, ok := AssetFeedID[asset]; !ok {
		return "", NewInvalidParameterError(fmt.Sprintf("unsupported asset: %s (supported: %s)", asset, strings.Join(SupportedAssets, ", ")))
	}
	return asset, nil
}

func NormalizeOptionType(optionType string) (string, error) {
	optionType = strings.ToLower(strings.TrimSpace(optionType))
	switch optionType {
	case OptionTypeCall, OptionTypePut:
		return optionType, nil
	default:
		return "", NewInvalidParameterError("option type must be call or put")
	}
}

// NormalizePositionType defaults an empty position to short.
func NormalizePositionType(positionType string) (string, error) {
	positionType = strings.ToLower(strings.TrimSpace(positionType))
	switch positionType {
	case "":
		return PositionTypeShort, nil
	case PositionTypeLong, PositionTypeShort:
		return positionType, nil
	default:
		return "", NewInvalidParameterError("position type must be long or short")
	}
}

func NormalizeProtocol(protocol string) (string, error) {
	protocol = strings.ToLower(strings.TrimSpace(protocol))
	if protocol == "" {
		return "", NewInvalidParameterError("protocol is required")
	}
	for _, supported := range SupportedProtocols {
		if protocol == supported {
			return protocol, nil
		}
	}
	return "", NewInvalidParameterError(fmt.Sprintf("unsupported protocol: %s (supported: %s)", protocol, strings.Join(SupportedProtocols, ", ")))
}

func NormalizeRiskLevel(risk string) (string, error) {
	risk = strings.ToLower(strings.TrimSpace(risk))
	for _, supported := range RiskLevels {
		if risk == supported {
			return risk, nil
		}
	}
	return "", NewInvalidParameterError("risk level must be conservative, moderate, or aggressive")
}

func NormalizeStrategyFocus(focus string) (string, error) {
	focus = strings.ToLower(strings.TrimSpace(focus))
	for _, supported := range StrategyFocuses {
		if focus == supported {
			return focus, nil
		}
	}
	return "", NewInvalidParameterError("strategy focus must be income, growth, or hedging")
}

// RequirePositive rejects zero and negative numeric parameters.
func RequirePositive(name string, value float64) error {
	if value <= 0 {
		return NewInvalidParameterError(fmt.Sprintf("%s must be greater than zero", name))
	}
	return nil
}

// PriceQuote is the result of a spot-price query.
type PriceQuote struct {
	Asset          string  `json:"asset"`
	PriceUSD       float64 `json:"price"`
	FormattedPrice string  `json:"formattedPrice"`
	Timestamp      int64   `json:"timestamp"`
}

// OptionQuote is one option instrument row from the board API.
type OptionQuote struct {
	OptionID  int64     `json:"optionId"`
	Symbol    string    `json:"symbol"`
	Type      string    `json:"type"`
	Expiry    time.Time `json:"expiry"`
	Strike    float64   `json:"strike"`
	Protocol  string    `json:"protocol"`
	PriceUSD  float64   `json:"price"`
	Available float64   `json:"available"`
}

// InstrumentSymbol derives the display identifier for an option quote,
// e.g. BTC-29AUG25-50000-C.
func (q OptionQuote) InstrumentSymbol() string {
	letter := "C"
	if strings.EqualFold(q.Type, OptionTypePut) {
		letter = "P"
	}
	date := strings.ToUpper(q.Expiry.Format("02Jan06"))
	return fmt.Sprintf("%s-%s-%s-%s", strings.ToUpper(q.Symbol), date, trimStrike(q.Strike), letter)
}

func trimStrike(strike float64) string {
	s := fmt.Sprintf("%.2f", strike)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// OptionsRequest carries the caller's board query. Strike and Expiry are
// accepted and forwarded but do not narrow the result set.
type OptionsRequest struct {
	Asset        string  `json:"asset"`
	OptionType   string  `json:"optionType"`
	PositionType string  `json:"positionType,omitempty"`
	Strike       float64 `json:"strike,omitempty"`
	Expiry       string  `json:"expiry,omitempty"`
}

type OptionsResult struct {
	Asset            string        `json:"asset"`
	OptionType       string        `json:"optionType"`
	FormattedOptions string        `json:"formattedOptions"`
	Options          []OptionQuote `json:"options"`
	Timestamp        int64         `json:"timestamp"`
}

type PerpsPairsRequest struct {
	Protocol string `json:"protocolName"`
	Asset    string `json:"asset,omitempty"`
}

type PerpsPair struct {
	BaseAsset  string `json:"baseAsset"`
	QuoteAsset string `json:"quoteAsset"`
}

type PerpsPairsResult struct {
	Pairs []PerpsPair `json:"pairs"`
}

// SignalRequest carries the parameters of one signal-generation job.
type SignalRequest struct {
	Asset         string  `json:"asset"`
	BudgetUSD     float64 `json:"budget_usd"`
	TradeWindowMs int64   `json:"trade_window_ms"`
	RiskLevel     string  `json:"risk_level"`
	StrategyFocus string  `json:"strategy_focus"`
}

// Signal is one recommended trade returned by a completed trade agent.
type Signal struct {
	ID                         string  `json:"id"`
	ActionType                 string  `json:"actionType"`
	PositionType               string  `json:"positionType"`
	Instrument                 string  `json:"instrument"`
	InstrumentType             string  `json:"instrumentType"`
	Size                       float64 `json:"size"`
	ExpectedInstrumentPriceUSD float64 `json:"expectedInstrumentPriceUsd"`
	ExpectedTotalPriceUSD      float64 `json:"expectedTotalPriceUsd"`
	Reason                     string  `json:"reason"`
	TargetPositionID           string  `json:"targetPositionId,omitempty"`
	CreatedAt                  string  `json:"createdAt"`
	UpdatedAt                  string  `json:"updatedAt"`
}

type SignalResult struct {
	Signals   []Signal `json:"signals"`
	Timestamp int64    `json:"timestamp"`
}
