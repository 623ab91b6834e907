package report

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/angas/spotalert-go/analyze"
	"github.com/angas/spotalert-go/hours"
	"github.com/angas/spotalert-go/types"
)

func testReport() analyze.Report {
	start := time.Date(2026, time.May, 1, 12, 45, 0, 0, time.UTC)
	series := make([]types.LocalPricePoint, 6)
	for i, v := range []float64{4.254, 4.3, 6.0, 7.0, 2.1, 9.0} {
		series[i] = types.LocalPricePoint{Time: start.Add(time.Duration(i) * 15 * time.Minute), Value: v}
	}
	return analyze.Rank(series)
}

func TestFormat(t *testing.T) {
	band := hours.Band{StartHour: 7, EndHour: 21}
	msg := Format(testReport(), band)

	lines := strings.Split(msg, "\n")
	wantLines := []string{
		"Cheapest electricity today between 07–21:",
		"1. 13:45–14:00  2.10 snt/kWh",
		"2. 12:45–13:00  4.25 snt/kWh",
		"3. 13:00–13:15  4.30 snt/kWh",
		"",
		"Average price 07–21: 5.44 snt/kWh",
		"",
		"Cheapest hour 13:00–14:00, average 4.85 snt/kWh",
	}

	if len(lines) != len(wantLines) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(wantLines), len(lines), msg)
	}
	for i, want := range wantLines {
		if lines[i] != want {
			t.Errorf("line %d expected %q, got %q", i, want, lines[i])
		}
	}
}

func TestFormatWithoutBlock(t *testing.T) {
	series := []types.LocalPricePoint{
		{Time: time.Date(2026, time.May, 1, 9, 0, 0, 0, time.UTC), Value: 3.0},
		{Time: time.Date(2026, time.May, 1, 9, 15, 0, 0, time.UTC), Value: 5.0},
	}
	msg := Format(analyze.Rank(series), hours.Band{StartHour: 7, EndHour: 21})

	if strings.Contains(msg, "Cheapest hour") {
		t.Errorf("expected no cheapest hour section for a short series:\n%s", msg)
	}
	if !strings.Contains(msg, "Average price 07–21: 4.00 snt/kWh") {
		t.Errorf("expected average line, got:\n%s", msg)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	// Numbers printed in the report must parse back to the report's
	// values within 2-decimal rounding tolerance.
	rep := testReport()
	msg := Format(rep, hours.Band{StartHour: 7, EndHour: 21})

	numbers := regexp.MustCompile(`(\d+\.\d{2}) snt/kWh`).FindAllStringSubmatch(msg, -1)
	want := []float64{
		rep.Cheapest[0].Value,
		rep.Cheapest[1].Value,
		rep.Cheapest[2].Value,
		rep.Average,
		rep.Block.Value().Average,
	}

	if len(numbers) != len(want) {
		t.Fatalf("expected %d prices in message, got %d:\n%s", len(want), len(numbers), msg)
	}
	for i, m := range numbers {
		parsed, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			t.Fatalf("failed to parse %q: %v", m[1], err)
		}
		if math.Abs(parsed-want[i]) > 0.01 {
			t.Errorf("price %d round-trip expected ~%v, got %v", i, want[i], parsed)
		}
	}
}
