// Package analyze turns a raw quarter-hour spot price series into the
// day's cheapest quarters and the cheapest contiguous hour.
package analyze

import (
	"cmp"
	"slices"
	"time"

	"github.com/angas/spotalert-go/hours"
	"github.com/angas/spotalert-go/types"
	"github.com/angas/spotalert-go/types/maybe"
)

// TopQuarters is the number of cheapest individual quarters reported.
const TopQuarters = 3

// BlockQuarters is the sliding window size, four quarters making one hour.
const BlockQuarters = 4

// HourBlock is a run of consecutive quarters and its mean price.
type HourBlock struct {
	Points  []types.LocalPricePoint
	Average float64
}

// Report is the result of ranking one day's filtered price series.
type Report struct {
	// Up to TopQuarters entries, ascending by price.
	Cheapest []types.LocalPricePoint
	// Mean price over the whole filtered series.
	Average float64
	// Cheapest contiguous hour, absent when the series has fewer
	// than BlockQuarters points.
	Block maybe.Maybe[HourBlock]
}

// FilterPrices converts raw provider records to local time and keeps
// those on the target local date whose hour falls inside the band.
// Provider order (chronological) is preserved. The provider may return
// buffer quarters outside the requested range, this filter is the sole
// correctness guard.
func FilterPrices(prices []types.PricePoint, date time.Time, band hours.Band, loc *time.Location) []types.LocalPricePoint {
	date = date.In(loc)
	filtered := make([]types.LocalPricePoint, 0, len(prices))
	for _, p := range prices {
		local := p.Time.In(loc)
		if hours.SameDate(local, date) && band.Contains(local.Hour()) {
			filtered = append(filtered, types.LocalPricePoint{Time: local, Value: p.Value})
		}
	}
	return filtered
}

// CheapestQuarters returns the up to TopQuarters cheapest points,
// ascending by price. Equal prices keep their original relative order.
// The input is not mutated.
func CheapestQuarters(series []types.LocalPricePoint) []types.LocalPricePoint {
	sorted := slices.Clone(series)
	slices.SortStableFunc(sorted, func(a, b types.LocalPricePoint) int {
		return cmp.Compare(a.Value, b.Value)
	})
	return sorted[:min(TopQuarters, len(sorted))]
}

// CheapestHourBlock slides a BlockQuarters-wide window over the
// chronologically ordered series and returns the window with the lowest
// mean price. On an exact tie the earlier window wins. Returns None when
// the series is too short for a full hour.
func CheapestHourBlock(series []types.LocalPricePoint) maybe.Maybe[HourBlock] {
	if len(series) < BlockQuarters {
		return maybe.None[HourBlock]()
	}

	best := 0
	bestAvg := windowAverage(series[0:BlockQuarters])
	for i := 1; i <= len(series)-BlockQuarters; i++ {
		if avg := windowAverage(series[i : i+BlockQuarters]); avg < bestAvg {
			best, bestAvg = i, avg
		}
	}

	return maybe.Some(HourBlock{
		Points:  series[best : best+BlockQuarters],
		Average: bestAvg,
	})
}

// Average returns the mean price of the series, 0 for an empty series.
func Average(series []types.LocalPricePoint) float64 {
	if len(series) == 0 {
		return 0
	}
	return windowAverage(series)
}

// Rank runs both selectors over a filtered, chronologically ordered
// series. The caller must short-circuit an empty series before this.
func Rank(series []types.LocalPricePoint) Report {
	return Report{
		Cheapest: CheapestQuarters(series),
		Average:  Average(series),
		Block:    CheapestHourBlock(series),
	}
}

func windowAverage(window []types.LocalPricePoint) float64 {
	sum := 0.0
	for _, p := range window {
		sum += p.Value
	}
	return sum / float64(len(window))
}
