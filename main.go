package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/angas/spotalert-go/config"
	"github.com/angas/spotalert-go/hours"
	"github.com/angas/spotalert-go/sahkotin"
	"github.com/angas/spotalert-go/task"
	"github.com/angas/spotalert-go/telegram"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

var Version = "?.?.?"

func main() {
	defer func() {
		if err := recover(); err != nil {
			exitWithError(slog.Default(), fmt.Errorf("application panicked: %v", err))
		}
	}()

	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	// Credentials may live in a local .env file instead of the config file.
	_ = godotenv.Load()

	cnfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      cnfg.Logging.GetConsoleLevel(),
		TimeFormat: time.RFC3339,
	}))
	slog.SetDefault(logger)
	logger.Debug("spotalert is starting...", slog.String("version", Version))

	loc, err := hours.Resolve(cnfg.Report.GetTimezone())
	if err != nil {
		panic(fmt.Sprintf("failed to resolve timezone: %v", err))
	}

	provider := sahkotin.New()
	sender := telegram.New(cnfg.Telegram.BotToken, cnfg.Telegram.ChatId)

	if cnfg.Report.RunAt == "" {
		// Single-shot: one run, exit code tells the scheduler how it went.
		run := task.NewPriceReportTask(
			logger.With(slog.String("task", "price_report")),
			cnfg.Report, loc, provider, sender)
		if err := run(); err != nil {
			os.Exit(1)
		}
		return
	}

	logger.Info("daemon mode", slog.String("runAt", cnfg.Report.RunAt))
	tasks := task.NewTasks(cnfg, loc, provider, sender)
	tasks.Run()
	defer tasks.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received signal, shutting down...", slog.Any("signal", sig))
}

func exitWithError(logger *slog.Logger, err error) {
	logger.Error("application shutting down with error", slog.Any("error", err))
	os.Exit(1)
}
