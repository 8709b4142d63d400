//go:build wireinject
// +build wireinject

package di

import (
	"EvoEngine/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp() (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideConfigManager,
		ProvideApp,
	)
	return &server.App{}, nil
}
