package types

import (
	"context"
	"time"
)

// PricePoint is one quarter-hour spot price as delivered by the provider.
// Time is the start of the quarter in UTC.
type PricePoint struct {
	Time  time.Time
	Value float64 // Price in snt/kWh including VAT
}

// LocalPricePoint is a PricePoint whose timestamp has been converted to
// the configured local timezone. Only these flow into the analysis.
type LocalPricePoint struct {
	Time  time.Time
	Value float64
}

type PriceProvider interface {
	// GetPrices returns the quarter-hour prices for the UTC interval
	// [start, end). Providers may return buffer quarters outside the
	// interval, callers must filter.
	GetPrices(ctx context.Context, start, end time.Time) ([]PricePoint, error)
}

type MessageSender interface {
	Send(ctx context.Context, text string) error
}
