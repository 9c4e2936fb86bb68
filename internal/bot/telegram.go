package bot

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"strikeboard/internal/domain"

	tele "gopkg.in/telebot.v3"
)

type MarketQuerier interface {
	GetPrice(ctx context.Context, asset string) (*domain.PriceQuote, error)
	GetOptions(ctx context.Context, req domain.OptionsRequest) (*domain.OptionsResult, error)
	GetPerpsPairs(ctx context.Context, req domain.PerpsPairsRequest) (*domain.PerpsPairsResult, error)
}

type SignalRequester interface {
	GenerateSignals(ctx context.Context, req domain.SignalRequest) (*domain.SignalResult, error)
}

func StartTelegramBot(market MarketQuerier, signals SignalRequester) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Println("TELEGRAM_BOT_TOKEN not set, skipping Telegram bot startup")
		return
	}
	pref := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		log.Fatalf("failed to create Telegram bot: %v", err)
	}

	b.Handle("/ping", func(c tele.Context) error {
		return c.Send("pong")
	})

	b.Handle("/price", func(c tele.Context) error {
		args := c.Args()
		if len(args) == 0 {
			return c.Send(fmt.Sprintf("Usage: /price BTC\nSupported: %s", strings.Join(domain.SupportedAssets, ", ")))
		}
		quote, err := market.GetPrice(context.Background(), args[0])
		if err != nil {
			return c.Send(fmt.Sprintf("Error fetching price: %v", err))
		}
		return c.Send(fmt.Sprintf("%s\nPrice: %s", quote.Asset, quote.FormattedPrice))
	})

	b.Handle("/options", func(c tele.Context) error {
		req, err := parseOptionsArgs(c.Args())
		if err != nil {
			return c.Send("Usage: /options BTC call | /options ETH put long")
		}
		result, err := market.GetOptions(context.Background(), req)
		if err != nil {
			return c.Send(fmt.Sprintf("Error fetching options: %v", err))
		}
		return c.Send(result.FormattedOptions)
	})

	b.Handle("/pairs", func(c tele.Context) error {
		args := c.Args()
		if len(args) == 0 {
			return c.Send(fmt.Sprintf("Usage: /pairs hyperliquid [BTC]\nSupported: %s", strings.Join(domain.SupportedProtocols, ", ")))
		}
		req := domain.PerpsPairsRequest{Protocol: args[0]}
		if len(args) > 1 {
			req.Asset = args[1]
		}
		result, err := market.GetPerpsPairs(context.Background(), req)
		if err != nil {
			return c.Send(fmt.Sprintf("Error fetching pairs: %v", err))
		}
		lines := make([]string, 0, len(result.Pairs))
		for _, p := range result.Pairs {
			lines = append(lines, p.BaseAsset+"-"+p.QuoteAsset)
		}
		if len(lines) == 0 {
			return c.Send("No pairs available")
		}
		return c.Send(strings.Join(lines, "\n"))
	})

	b.Handle("/signals", func(c tele.Context) error {
		if signals == nil {
			return c.Send("Signal service unavailable")
		}
		req, err := parseSignalArgs(c.Args())
		if err != nil {
			return c.Send("Usage: /signals BTC 1000 moderate growth")
		}
		result, err := signals.GenerateSignals(context.Background(), req)
		if err != nil {
			return c.Send(fmt.Sprintf("Error generating signals: %v", err))
		}
		if len(result.Signals) == 0 {
			return c.Send("No signals generated")
		}
		var sb strings.Builder
		for _, sig := range result.Signals {
			fmt.Fprintf(&sb, "%s %s %s\nSize: %.4f @ $%.2f (total $%.2f)\n%s\n\n",
				strings.ToUpper(sig.ActionType), sig.PositionType, sig.Instrument,
				sig.Size, sig.ExpectedInstrumentPriceUSD, sig.ExpectedTotalPriceUSD, sig.Reason)
		}
		return c.Send(strings.TrimSpace(sb.String()))
	})

	go b.Start()
	log.Println("Telegram bot started")
}

func parseOptionsArgs(args []string) (domain.OptionsRequest, error) {
	if len(args) < 2 {
		return domain.OptionsRequest{}, fmt.Errorf("asset and option type are required")
	}
	req := domain.OptionsRequest{Asset: args[0], OptionType: args[1]}
	if len(args) > 2 {
		req.PositionType = args[2]
	}
	return req, nil
}

// parseSignalArgs parses "/signals ASSET BUDGET [RISK [FOCUS]]" with
// moderate/growth defaults; the one-week trade window matches the agent's
// context window.
func parseSignalArgs(args []string) (domain.SignalRequest, error) {
	if len(args) < 2 {
		return domain.SignalRequest{}, fmt.Errorf("asset and budget are required")
	}
	budget, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return domain.SignalRequest{}, fmt.Errorf("budget must be a number")
	}
	req := domain.SignalRequest{
		Asset:         args[0],
		BudgetUSD:     budget,
		TradeWindowMs: int64(7 * 24 * time.Hour / time.Millisecond),
		RiskLevel:     domain.RiskModerate,
		StrategyFocus: domain.FocusGrowth,
	}
	if len(args) > 2 {
		req.RiskLevel = args[2]
	}
	if len(args) > 3 {
		req.StrategyFocus = args[3]
	}
	return req, nil
}
