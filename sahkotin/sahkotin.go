package sahkotin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/angas/spotalert-go/slice"
	"github.com/angas/spotalert-go/types"
)

const API_URL = "https://sahkotin.fi/prices"

type rawPrice struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

type rawResponse struct {
	Prices []rawPrice `json:"prices"`
}

// Sahkotin fetches Finnish day-ahead spot prices from sahkotin.fi at
// quarter-hour resolution, normalized to snt/kWh and with VAT included.
type Sahkotin struct {
	url string
}

func New() Sahkotin {
	return Sahkotin{url: API_URL}
}

func (s Sahkotin) GetPrices(ctx context.Context, start, end time.Time) ([]types.PricePoint, error) {
	query := url.Values{}
	query.Set("start", start.UTC().Format(time.RFC3339))
	query.Set("end", end.UTC().Format(time.RFC3339))
	// Flags: quarter-hour resolution, fixed price unit (snt/kWh), VAT included
	query.Set("quarter", "")
	query.Set("fix", "")
	query.Set("vat", "")

	req, err := http.NewRequestWithContext(ctx, "GET", s.url+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch prices: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var raw rawResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return slice.Map(raw.Prices, func(p rawPrice) types.PricePoint {
		return types.PricePoint{Time: p.Date.UTC(), Value: p.Value}
	}), nil
}
