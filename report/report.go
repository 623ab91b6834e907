// Package report renders a ranked price report into the plain-text
// message sent to the chat. Pure formatting, no side effects.
package report

import (
	"fmt"
	"strings"

	"github.com/angas/spotalert-go/analyze"
	"github.com/angas/spotalert-go/convert"
	"github.com/angas/spotalert-go/hours"
)

// NoDataMessage is sent instead of a report when the provider returned
// nothing for the requested day.
const NoDataMessage = "No electricity price data found for today."

// Format renders the report: a header naming the hour band, the numbered
// cheapest quarters, the day average and (when present) the cheapest
// contiguous hour.
func Format(rep analyze.Report, band hours.Band) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Cheapest electricity today between %s:\n", band)
	for i, q := range rep.Cheapest {
		fmt.Fprintf(&b, "%d. %s  %s snt/kWh\n", i+1, hours.QuarterRange(q.Time), price(q.Value))
	}

	fmt.Fprintf(&b, "\nAverage price %s: %s snt/kWh", band, price(rep.Average))

	if rep.Block.IsValid() {
		block := rep.Block.Value()
		first := block.Points[0].Time
		last := block.Points[len(block.Points)-1].Time
		fmt.Fprintf(&b, "\n\nCheapest hour %s, average %s snt/kWh",
			hours.BlockRange(first, last), price(block.Average))
	}

	return b.String()
}

func price(value float64) string {
	return fmt.Sprintf("%.2f", convert.TwoDecimals(value))
}
