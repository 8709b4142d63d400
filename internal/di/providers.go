package di

import (
	"EvoEngine/pkg/config"
	"EvoEngine/pkg/logger"
	"EvoEngine/pkg/server"
)

// ProvideLogger creates the process logger.
func ProvideLogger() (*logger.Logger, error) {
	return logger.New(&logger.Config{Level: "info", Format: "console", Output: "stdout"})
}

// ProvideConfigManager constructs the process-wide configuration manager. The
// DI root owns the handle; consumers receive it explicitly instead of looking
// it up ambiently.
func ProvideConfigManager(log *logger.Logger) *config.Manager {
	return config.Instance(config.WithLogger(log))
}

// ProvideApp assembles the application shell.
func ProvideApp(cfg *config.Manager, log *logger.Logger) *server.App {
	return server.New(cfg, log)
}
