package mcp

import (
	"strikeboard/internal/domain"
)

type priceGetInput struct {
	Asset string `json:"asset" jsonschema:"asset symbol (BTC or ETH)"`
}

type priceGetOutput struct {
	Price *domain.PriceQuote `json:"price"`
}

type optionsBoardGetInput struct {
	Asset        string  `json:"asset" jsonschema:"asset symbol (BTC or ETH)"`
	OptionType   string  `json:"optionType" jsonschema:"option type: call or put"`
	PositionType string  `json:"positionType,omitempty" jsonschema:"position type: long or short (default short)"`
	Strike       float64 `json:"strike,omitempty" jsonschema:"optional strike price hint"`
	Expiry       string  `json:"expiry,omitempty" jsonschema:"optional expiry date hint"`
}

type optionsBoardGetOutput struct {
	Asset            string               `json:"asset"`
	OptionType       string               `json:"optionType"`
	FormattedOptions string               `json:"formattedOptions"`
	Options          []domain.OptionQuote `json:"options"`
	Timestamp        int64                `json:"timestamp"`
}

type perpsPairsListInput struct {
	Protocol string `json:"protocolName" jsonschema:"perpetuals protocol (hyperliquid)"`
	Asset    string `json:"asset,omitempty" jsonschema:"optional base asset filter (BTC or ETH)"`
}

type perpsPairsListOutput struct {
	Pairs []domain.PerpsPair `json:"pairs"`
}

type signalsGenerateInput struct {
	Asset         string  `json:"asset" jsonschema:"asset symbol (BTC or ETH)"`
	BudgetUSD     float64 `json:"budget_usd" jsonschema:"trading budget in USD, must be greater than zero"`
	TradeWindowMs int64   `json:"trade_window_ms" jsonschema:"trade window in milliseconds, must be greater than zero"`
	RiskLevel     string  `json:"risk_level" jsonschema:"risk level: conservative, moderate, or aggressive"`
	StrategyFocus string  `json:"strategy_focus" jsonschema:"strategy focus: income, growth, or hedging"`
}

type signalsGenerateOutput struct {
	Signals   []domain.Signal `json:"signals"`
	Timestamp int64           `json:"timestamp"`
}
