package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/angas/spotalert-go/analyze"
	"github.com/angas/spotalert-go/config"
	"github.com/angas/spotalert-go/hours"
	"github.com/angas/spotalert-go/report"
	"github.com/angas/spotalert-go/types"
)

// Recoverable run fault categories. Configuration problems never reach
// here, they terminate the process at startup.
var (
	ErrFetch    = errors.New("price fetch failed")
	ErrDelivery = errors.New("message delivery failed")
)

const networkTimeout = 10 * time.Second

// NewPriceReportTask returns the daily report run: compute today's UTC
// window, fetch prices, filter to the local hour band, rank, format and
// send. A fetch or delivery fault aborts the run after one best-effort
// attempt to deliver an error notification instead.
func NewPriceReportTask(
	logger *slog.Logger,
	cnfg config.AppConfigReport,
	loc *time.Location,
	provider types.PriceProvider,
	sender types.MessageSender,
) func() error {
	band := cnfg.GetBand()

	return func() error {
		err := runPriceReport(logger, band, loc, provider, sender)
		if err != nil {
			logger.Error("price report run failed", slog.Any("error", err))
			notifyError(logger, sender, err)
		}
		return err
	}
}

func runPriceReport(
	logger *slog.Logger,
	band hours.Band,
	loc *time.Location,
	provider types.PriceProvider,
	sender types.MessageSender,
) error {
	now := time.Now()
	start, end := hours.DayWindow(now, loc)
	logger.Info("looking for electricity prices",
		slog.Time("start", start), slog.Time("end", end), slog.String("band", band.String()))

	ctx, cancel := context.WithTimeout(context.Background(), networkTimeout)
	defer cancel()
	prices, err := provider.GetPrices(ctx, start, end)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFetch, err)
	}
	logger.Debug("prices fetched", slog.Int("noOfQuarters", len(prices)))

	series := analyze.FilterPrices(prices, now.In(loc), band, loc)

	var msg string
	if len(series) == 0 {
		logger.Warn("no prices for today within the band")
		msg = report.NoDataMessage
	} else {
		msg = report.Format(analyze.Rank(series), band)
	}

	logger.Info("sending message")
	if err := send(sender, msg); err != nil {
		return fmt.Errorf("%w: %w", ErrDelivery, err)
	}

	logger.Info("price report run done", slog.Int("noOfQuarters", len(series)))
	return nil
}

// notifyError makes one attempt to tell the user the run failed. A
// failure of this attempt itself is only logged.
func notifyError(logger *slog.Logger, sender types.MessageSender, runErr error) {
	if err := send(sender, fmt.Sprintf("Error running bot: %v", runErr)); err != nil {
		logger.Error("failed to deliver error notification", slog.Any("error", err))
	}
}

func send(sender types.MessageSender, text string) error {
	ctx, cancel := context.WithTimeout(context.Background(), networkTimeout)
	defer cancel()
	return sender.Send(ctx, text)
}
