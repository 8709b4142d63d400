package server

import (
	"os"
	"os/signal"
	"syscall"

	"EvoEngine/pkg/config"
	"EvoEngine/pkg/logger"
)

// App encapsulates the engine process lifecycle. It holds the configuration
// handle the DI root constructed; research, trading and notification
// subsystems attach to it and read the snapshot, they never mutate it.
type App struct {
	cfg *config.Manager
	log *logger.Logger
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Manager, log *logger.Logger) *App {
	return &App{cfg: cfg, log: log}
}

// Run reports the effective configuration and blocks until interrupted.
func (a *App) Run() error {
	snap := a.cfg.Snapshot()

	a.log.Info("configuration loaded",
		logger.Bool("valid", snap.Valid),
		logger.Int("diagnostics", len(snap.Diagnostics)))

	if snap.Status.Firebase.Valid {
		a.log.Info("firebase ready", logger.String("project", snap.Firebase.ProjectID))
	} else {
		a.log.Error("firebase unavailable, persistence disabled",
			logger.Strings("diagnostics", snap.Status.Firebase.Diagnostics))
	}

	if snap.Status.Telegram.Valid {
		a.log.Info("telegram notifications enabled", logger.String("chat_id", snap.Telegram.ChatID))
	} else {
		a.log.Warn("telegram notifications disabled",
			logger.Strings("diagnostics", snap.Status.Telegram.Diagnostics))
	}

	a.log.Info("research parameters",
		logger.Int("max_hypotheses_per_cycle", snap.Research.MaxHypothesesPerCycle),
		logger.Int("backtest_days", snap.Research.BacktestDays),
		logger.Float64("min_win_rate", snap.Research.MinWinRate),
		logger.Float64("max_drawdown", snap.Research.MaxDrawdown),
		logger.Int("data_cache_hours", snap.Research.DataCacheHours),
		logger.Float64("confidence_threshold", snap.Research.ConfidenceThreshold))

	for _, provider := range []string{config.ProviderBinance, config.ProviderCoinbase} {
		keys, _ := snap.Exchange(provider)
		a.log.Info("exchange credentials",
			logger.String("provider", provider),
			logger.Bool("configured", keys.Configured()))
	}

	// Wait for interrupt.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.log.Info("shutdown signal received")
	return nil
}
