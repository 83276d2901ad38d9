package di

import (
	"fmt"

	"FinModels/internal/engine"
	"FinModels/internal/handler/api"
	"FinModels/internal/usecase"
	"FinModels/pkg/config"
	xhttp "FinModels/pkg/http"
	applogger "FinModels/pkg/logger"
	"FinModels/pkg/metrics"
	"FinModels/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates the Prometheus metrics recorder.
func ProvideMetrics() *metrics.Recorder {
	return metrics.New()
}

// ProvideEngine creates the computation engine with the trigger policy from
// config.
func ProvideEngine(cfg *config.Config) *engine.Engine {
	return engine.New(engine.TriggerPolicy{
		LossCapMultiple:          cfg.Triggers.LossCapMultiple,
		UsageThreshold:           cfg.Triggers.UsageThreshold,
		RevaluationMultiple:      cfg.Triggers.RevaluationMultiple,
		ReverseImpairmentHaircut: cfg.Triggers.ReverseImpairmentHaircut,
		CPRMRateThreshold:        cfg.Triggers.CPRMRateThreshold,
		OCIMGrowthThreshold:      cfg.Triggers.OCIMGrowthThreshold,
		FAREXIndicatorThreshold:  cfg.Triggers.FAREXIndicatorThreshold,
	})
}

// ProvideEvaluator creates the instrumented evaluator use case.
func ProvideEvaluator(eng *engine.Engine, rec *metrics.Recorder, l *applogger.Logger) *usecase.Evaluator {
	return usecase.NewEvaluator(eng, rec, l)
}

// ProvideSummaryBridge creates the summary bridge with its HTTP client.
func ProvideSummaryBridge(cfg *config.Config, l *applogger.Logger) *usecase.SummaryBridge {
	client := xhttp.NewClient(xhttp.WithTimeout(cfg.Summary.Timeout))
	return usecase.NewSummaryBridge(cfg, client, l)
}

// ProvideAPIHandler creates the Echo route handler.
func ProvideAPIHandler(evaluator *usecase.Evaluator, bridge *usecase.SummaryBridge) xhttp.Handler {
	return api.NewHandler(evaluator, bridge)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, handler xhttp.Handler) *server.App {
	return server.New(cfg, l, handler)
}
