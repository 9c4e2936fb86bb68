package service

import (
	"fmt"
	"sort"
	"strings"

	"strikeboard/internal/domain"

	"github.com/olekukonko/tablewriter"
)

// FormatOptionsBoard renders a board slice grouped by expiry, then by
// derived instrument symbol. Each instrument section lists the protocols
// quoting it with availability and price.
func FormatOptionsBoard(quotes []domain.OptionQuote) string {
	if len(quotes) == 0 {
		return "No options available"
	}

	byExpiry := make(map[string][]domain.OptionQuote)
	expiries := make([]string, 0)
	for _, q := range quotes {
		key := q.Expiry.UTC().Format("2006-01-02")
		if _, ok := byExpiry[key]; !ok {
			expiries = append(expiries, key)
		}
		byExpiry[key] = append(byExpiry[key], q)
	}
	sort.Strings(expiries)

	var b strings.Builder
	for _, expiry := range expiries {
		group := byExpiry[expiry]
		fmt.Fprintf(&b, "Expiry: %s\n", strings.ToUpper(group[0].Expiry.UTC().Format("02Jan06")))

		bySymbol := make(map[string][]domain.OptionQuote)
		symbols := make([]string, 0)
		for _, q := range group {
			symbol := q.InstrumentSymbol()
			if _, ok := bySymbol[symbol]; !ok {
				symbols = append(symbols, symbol)
			}
			bySymbol[symbol] = append(bySymbol[symbol], q)
		}
		sort.Strings(symbols)

		for _, symbol := range symbols {
			fmt.Fprintf(&b, "\n%s\n", symbol)
			table := tablewriter.NewWriter(&b)
			table.Header("Protocol", "Available", "Price")
			for _, q := range bySymbol[symbol] {
				table.Append(q.Protocol, fmt.Sprintf("%.4f", q.Available), FormatUSD(q.PriceUSD))
			}
			table.Render()
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
