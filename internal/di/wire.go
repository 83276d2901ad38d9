//go:build wireinject
// +build wireinject

package di

import (
	"FinModels/pkg/config"
	"FinModels/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,
		ProvideEngine,
		ProvideEvaluator,
		ProvideSummaryBridge,
		ProvideAPIHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
