package mcp

import (
	"context"
	"fmt"

	"strikeboard/internal/domain"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerTools(server *mcp.Server, market MarketReader, signals SignalGenerator) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "price_get",
		Description: "Get the current spot price for a supported asset (BTC or ETH)",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in priceGetInput) (*mcp.CallToolResult, priceGetOutput, error) {
		if market == nil {
			return nil, priceGetOutput{}, fmt.Errorf("market service unavailable")
		}
		quote, err := market.GetPrice(ctx, in.Asset)
		if err != nil {
			return nil, priceGetOutput{}, err
		}
		return nil, priceGetOutput{Price: quote}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "options_board_get",
		Description: "Get the options market board for an asset, grouped by expiry and instrument symbol",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in optionsBoardGetInput) (*mcp.CallToolResult, optionsBoardGetOutput, error) {
		if market == nil {
			return nil, optionsBoardGetOutput{}, fmt.Errorf("market service unavailable")
		}
		result, err := market.GetOptions(ctx, domain.OptionsRequest{
			Asset:        in.Asset,
			OptionType:   in.OptionType,
			PositionType: in.PositionType,
			Strike:       in.Strike,
			Expiry:       in.Expiry,
		})
		if err != nil {
			return nil, optionsBoardGetOutput{}, err
		}
		return nil, optionsBoardGetOutput{
			Asset:            result.Asset,
			OptionType:       result.OptionType,
			FormattedOptions: result.FormattedOptions,
			Options:          result.Options,
			Timestamp:        result.Timestamp,
		}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "perps_pairs_list",
		Description: "List available perpetual trading pairs for a protocol, optionally filtered by base asset",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in perpsPairsListInput) (*mcp.CallToolResult, perpsPairsListOutput, error) {
		if market == nil {
			return nil, perpsPairsListOutput{}, fmt.Errorf("market service unavailable")
		}
		result, err := market.GetPerpsPairs(ctx, domain.PerpsPairsRequest{
			Protocol: in.Protocol,
			Asset:    in.Asset,
		})
		if err != nil {
			return nil, perpsPairsListOutput{}, err
		}
		return nil, perpsPairsListOutput{Pairs: result.Pairs}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "signals_generate",
		Description: "Create a remote trade agent and generate trading signals for a budget, risk level, and strategy focus",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in signalsGenerateInput) (*mcp.CallToolResult, signalsGenerateOutput, error) {
		if signals == nil {
			return nil, signalsGenerateOutput{}, fmt.Errorf("signal service unavailable")
		}
		result, err := signals.GenerateSignals(ctx, domain.SignalRequest{
			Asset:         in.Asset,
			BudgetUSD:     in.BudgetUSD,
			TradeWindowMs: in.TradeWindowMs,
			RiskLevel:     in.RiskLevel,
			StrategyFocus: in.StrategyFocus,
		})
		if err != nil {
			return nil, signalsGenerateOutput{}, err
		}
		return nil, signalsGenerateOutput{Signals: result.Signals, Timestamp: result.Timestamp}, nil
	})
}
