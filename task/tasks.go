package task

import (
	"context"
	"log/slog"
	"time"

	"github.com/angas/spotalert-go/config"
	"github.com/angas/spotalert-go/types"
	"github.com/robfig/cron/v3"
)

// Tasks wires the report job onto a cron schedule for daemon mode.
// Single-shot mode calls PriceReportTask directly instead.
type Tasks struct {
	cron            *cron.Cron
	cnfg            *config.AppConfig
	PriceReportTask func() error
}

func NewTasks(cnfg *config.AppConfig, loc *time.Location, provider types.PriceProvider, sender types.MessageSender) *Tasks {
	logger := slog.Default().With("module", "tasks")
	return &Tasks{
		cron: cron.New(),
		cnfg: cnfg,
		PriceReportTask: NewPriceReportTask(
			logger.With(slog.String("task", "price_report")),
			cnfg.Report, loc, provider, sender),
	}
}

func (t *Tasks) Run() {
	_, err := t.cron.AddFunc(t.cnfg.Report.RunAt, func() {
		// Run errors have already been reported and logged by the task.
		_ = t.PriceReportTask()
	})
	if err != nil {
		panic(err)
	}
	t.cron.Start()
}

func (t *Tasks) Stop() context.Context {
	return t.cron.Stop()
}
