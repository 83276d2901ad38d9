package usecase

import (
	"context"
	"time"

	"FinModels/internal/domain/models"
	"FinModels/internal/engine"
	applogger "FinModels/pkg/logger"
	"FinModels/pkg/metrics"
)

// Evaluator wraps the computation engine with logging and metrics. Every
// route handler goes through it, so instrumentation lives in one place.
type Evaluator struct {
	engine  *engine.Engine
	metrics *metrics.Recorder
	logger  *applogger.Logger
}

func NewEvaluator(eng *engine.Engine, rec *metrics.Recorder, l *applogger.Logger) *Evaluator {
	return &Evaluator{engine: eng, metrics: rec, logger: l}
}

func (u *Evaluator) done(model string, start time.Time, finalFigure float64) {
	u.metrics.RecordEvaluation(model)
	u.metrics.RecordFinalFigure(model, finalFigure)
	u.metrics.RecordLatency(model, time.Since(start).Seconds())
	u.logger.Debug("model evaluated",
		applogger.String("model", model),
		applogger.Float64("final_figure", finalFigure),
		applogger.Duration("duration", time.Since(start)),
	)
}

func (u *Evaluator) fail(model string, start time.Time, err error) error {
	kind := string(engine.KindValidation)
	stage := ""
	if engErr, ok := engine.AsEngineError(err); ok {
		kind = string(engErr.Kind)
		stage = engErr.Stage
	}
	u.metrics.RecordError(model, kind)
	u.metrics.RecordLatency(model, time.Since(start).Seconds())
	u.logger.Warn("model evaluation failed",
		applogger.String("model", model),
		applogger.String("stage", stage),
		applogger.String("kind", kind),
		applogger.Error(err),
	)
	return err
}

func (u *Evaluator) EvaluateDDA(ctx context.Context, req models.DDARequest) (*models.DDAResult, error) {
	start := time.Now()
	result, err := u.engine.EvaluateDDA(req)
	if err != nil {
		return nil, u.fail(engine.ModelDDA, start, err)
	}
	u.done(engine.ModelDDA, start, result.FinalFigure)
	return result, nil
}

func (u *Evaluator) EvaluateLAM(ctx context.Context, req models.LAMRequest) (*models.LAMResult, error) {
	start := time.Now()
	result, err := u.engine.EvaluateLAM(req)
	if err != nil {
		return nil, u.fail(engine.ModelLAM, start, err)
	}
	u.done(engine.ModelLAM, start, result.FinalFigure)
	return result, nil
}

func (u *Evaluator) EvaluateRVM(ctx context.Context, req models.RVMRequest) (*models.RVMResult, error) {
	start := time.Now()
	result, err := u.engine.EvaluateRVM(req)
	if err != nil {
		return nil, u.fail(engine.ModelRVM, start, err)
	}
	u.done(engine.ModelRVM, start, result.FinalFigure)
	return result, nil
}

func (u *Evaluator) EvaluateCEEM(ctx context.Context, req models.CEEMRequest) (*models.CEEMResult, error) {
	start := time.Now()
	result, err := u.engine.EvaluateCEEM(req)
	if err != nil {
		return nil, u.fail(engine.ModelCEEM, start, err)
	}
	u.done(engine.ModelCEEM, start, result.FinalFigure)
	return result, nil
}

func (u *Evaluator) EvaluateBDM(ctx context.Context, req models.BDMRequest) (*models.BDMResult, error) {
	start := time.Now()
	result, err := u.engine.EvaluateBDM(req)
	if err != nil {
		return nil, u.fail(engine.ModelBDM, start, err)
	}
	u.done(engine.ModelBDM, start, result.FinalFigure)
	return result, nil
}

func (u *Evaluator) EvaluateBELM(ctx context.Context, req models.BELMRequest) (*models.BELMResult, error) {
	start := time.Now()
	result, err := u.engine.EvaluateBELM(req)
	if err != nil {
		return nil, u.fail(engine.ModelBELM, start, err)
	}
	u.done(engine.ModelBELM, start, result.FinalFigure)
	return result, nil
}

func (u *Evaluator) EvaluateCPRM(ctx context.Context, req models.CPRMRequest) (*models.CPRMResult, error) {
	start := time.Now()
	result, err := u.engine.EvaluateCPRM(req)
	if err != nil {
		return nil, u.fail(engine.ModelCPRM, start, err)
	}
	u.done(engine.ModelCPRM, start, result.FinalFigure)
	return result, nil
}

func (u *Evaluator) EvaluateCOCIM(ctx context.Context, req models.COCIMRequest) (*models.COCIMResult, error) {
	start := time.Now()
	result, err := u.engine.EvaluateCOCIM(req)
	if err != nil {
		return nil, u.fail(engine.ModelCOCIM, start, err)
	}
	u.done(engine.ModelCOCIM, start, result.FinalFigure)
	return result, nil
}

func (u *Evaluator) EvaluateFAREX(ctx context.Context, req models.FAREXRequest) (*models.FAREXResult, error) {
	start := time.Now()
	result, err := u.engine.EvaluateFAREX(req)
	if err != nil {
		return nil, u.fail(engine.ModelFAREX, start, err)
	}
	u.done(engine.ModelFAREX, start, result.FinalFigure)
	return result, nil
}

func (u *Evaluator) EvaluateTCTBeam(ctx context.Context, req models.TCTBeamRequest) (*models.TCTBeamResult, error) {
	start := time.Now()
	result, err := u.engine.EvaluateTCTBeam(req)
	if err != nil {
		return nil, u.fail(engine.ModelTCTBeam, start, err)
	}
	u.done(engine.ModelTCTBeam, start, result.FinalFigure)
	return result, nil
}

func (u *Evaluator) EvaluateCPMRV(ctx context.Context, req models.CPMRVRequest) (*models.CPMRVResult, error) {
	start := time.Now()
	result, err := u.engine.EvaluateCPMRV(req)
	if err != nil {
		return nil, u.fail(engine.ModelCPMRV, start, err)
	}
	u.done(engine.ModelCPMRV, start, result.FinalFigure)
	return result, nil
}

func (u *Evaluator) EvaluateDCBPRA(ctx context.Context, req models.DCBPRARequest) (*models.DCBPRAResult, error) {
	start := time.Now()
	result, err := u.engine.EvaluateDCBPRA(req)
	if err != nil {
		return nil, u.fail(engine.ModelDCBPRA, start, err)
	}
	u.done(engine.ModelDCBPRA, start, result.FinalFigure)
	return result, nil
}

func (u *Evaluator) EvaluatePSRAS(ctx context.Context, req models.PSRASRequest) (*models.PSRASResult, error) {
	start := time.Now()
	result, err := u.engine.EvaluatePSRAS(req)
	if err != nil {
		return nil, u.fail(engine.ModelPSRAS, start, err)
	}
	u.done(engine.ModelPSRAS, start, result.FinalFigure)
	return result, nil
}

func (u *Evaluator) EvaluateLSMRV(ctx context.Context, req models.LSMRVRequest) (*models.LSMRVResult, error) {
	start := time.Now()
	result, err := u.engine.EvaluateLSMRV(req)
	if err != nil {
		return nil, u.fail(engine.ModelLSMRV, start, err)
	}
	u.done(engine.ModelLSMRV, start, result.FinalFigure)
	return result, nil
}
