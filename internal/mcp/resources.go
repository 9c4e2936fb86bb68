package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"strikeboard/internal/domain"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerResources(server *mcp.Server, market MarketReader) {
	server.AddResource(&mcp.Resource{
		URI:         "market://supported-assets",
		Name:        "supported-assets",
		Description: "List of assets supported by the board API",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		_ = ctx
		return jsonResource(req.Params.URI, domain.SupportedAssets)
	})

	server.AddResource(&mcp.Resource{
		URI:         "market://supported-protocols",
		Name:        "supported-protocols",
		Description: "List of perpetuals protocols supported by the board API",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		_ = ctx
		return jsonResource(req.Params.URI, domain.SupportedProtocols)
	})

	server.AddResource(&mcp.Resource{
		URI:         "market://signal-parameters",
		Name:        "signal-parameters",
		Description: "Accepted risk levels and strategy focuses for signal generation",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		_ = ctx
		return jsonResource(req.Params.URI, map[string][]string{
			"riskLevels":      domain.RiskLevels,
			"strategyFocuses": domain.StrategyFocuses,
		})
	})

	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "price://asset/{asset}",
		Name:        "price-by-asset",
		Description: "Current spot price for a specific asset",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if market == nil {
			return nil, fmt.Errorf("market service unavailable")
		}

		parsed, err := url.Parse(req.Params.URI)
		if err != nil {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		if parsed.Scheme != "price" || parsed.Host != "asset" {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}

		asset := strings.Trim(strings.TrimSpace(parsed.Path), "/")
		quote, err := market.GetPrice(ctx, asset)
		if err != nil {
			return nil, err
		}
		return jsonResource(req.Params.URI, priceGetOutput{Price: quote})
	})
}

func jsonResource(uri string, payload any) (*mcp.ReadResourceResult, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
