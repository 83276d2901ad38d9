package api

import (
	"github.com/labstack/echo/v4"

	"FinModels/internal/domain/models"
	"FinModels/internal/engine"
	"FinModels/internal/usecase"
	xhttp "FinModels/pkg/http"
)

// Handler exposes the model pipelines over HTTP. It is a thin adapter:
// bind and validate, invoke the evaluator, serialize the result.
type Handler struct {
	evaluator *usecase.Evaluator
	bridge    *usecase.SummaryBridge
}

func NewHandler(evaluator *usecase.Evaluator, bridge *usecase.SummaryBridge) *Handler {
	return &Handler{evaluator: evaluator, bridge: bridge}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.health)

	asset := e.Group("/asset")
	asset.POST("/dda", h.evaluateDDA)
	asset.POST("/lam", h.evaluateLAM)
	asset.POST("/rvm", h.evaluateRVM)

	expense := e.Group("/expense")
	expense.POST("/ceem", h.evaluateCEEM)
	expense.POST("/bdm", h.evaluateBDM)
	expense.POST("/belm", h.evaluateBELM)

	risk := e.Group("/risk")
	risk.POST("/cprm", h.evaluateCPRM)
	risk.POST("/c-ocim", h.evaluateCOCIM)
	risk.POST("/farex", h.evaluateFAREX)

	analysis := e.Group("/analysis")
	analysis.POST("/tct-beam", h.evaluateTCTBeam)
	analysis.POST("/cpmrv", h.evaluateCPMRV)
	analysis.POST("/dcbpra", h.evaluateDCBPRA)

	e.POST("/service/psras", h.evaluatePSRAS)
	e.POST("/probability/lsmrv", h.evaluateLSMRV)
	e.POST("/bridge/summary", h.bridgeSummary)
}

// engineError maps an engine failure to a 422 whose field names the stage
// that produced it.
func engineError(err error) error {
	if engErr, ok := engine.AsEngineError(err); ok {
		return xhttp.UnprocessableError("ERR_"+string(engErr.Kind), engErr.Stage, engErr.Msg).WithError(err)
	}
	return xhttp.InternalError("evaluation failed").WithError(err)
}

func (h *Handler) health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}

func (h *Handler) evaluateDDA(c echo.Context) error {
	var req models.DDARequest
	if errs := xhttp.ReadAndValidateRequest(c, &req); errs != nil {
		return xhttp.BadRequestResponse(c, errs)
	}
	result, err := h.evaluator.EvaluateDDA(c.Request().Context(), req)
	if err != nil {
		return xhttp.AppErrorResponse(c, engineError(err))
	}
	return xhttp.SuccessResponse(c, result)
}

func (h *Handler) evaluateLAM(c echo.Context) error {
	var req models.LAMRequest
	if errs := xhttp.ReadAndValidateRequest(c, &req); errs != nil {
		return xhttp.BadRequestResponse(c, errs)
	}
	result, err := h.evaluator.EvaluateLAM(c.Request().Context(), req)
	if err != nil {
		return xhttp.AppErrorResponse(c, engineError(err))
	}
	return xhttp.SuccessResponse(c, result)
}

func (h *Handler) evaluateRVM(c echo.Context) error {
	var req models.RVMRequest
	if errs := xhttp.ReadAndValidateRequest(c, &req); errs != nil {
		return xhttp.BadRequestResponse(c, errs)
	}
	result, err := h.evaluator.EvaluateRVM(c.Request().Context(), req)
	if err != nil {
		return xhttp.AppErrorResponse(c, engineError(err))
	}
	return xhttp.SuccessResponse(c, result)
}

func (h *Handler) evaluateCEEM(c echo.Context) error {
	var req models.CEEMRequest
	if errs := xhttp.ReadAndValidateRequest(c, &req); errs != nil {
		return xhttp.BadRequestResponse(c, errs)
	}
	result, err := h.evaluator.EvaluateCEEM(c.Request().Context(), req)
	if err != nil {
		return xhttp.AppErrorResponse(c, engineError(err))
	}
	return xhttp.SuccessResponse(c, result)
}

func (h *Handler) evaluateBDM(c echo.Context) error {
	var req models.BDMRequest
	if errs := xhttp.ReadAndValidateRequest(c, &req); errs != nil {
		return xhttp.BadRequestResponse(c, errs)
	}
	result, err := h.evaluator.EvaluateBDM(c.Request().Context(), req)
	if err != nil {
		return xhttp.AppErrorResponse(c, engineError(err))
	}
	return xhttp.SuccessResponse(c, result)
}

func (h *Handler) evaluateBELM(c echo.Context) error {
	var req models.BELMRequest
	if errs := xhttp.ReadAndValidateRequest(c, &req); errs != nil {
		return xhttp.BadRequestResponse(c, errs)
	}
	result, err := h.evaluator.EvaluateBELM(c.Request().Context(), req)
	if err != nil {
		return xhttp.AppErrorResponse(c, engineError(err))
	}
	return xhttp.SuccessResponse(c, result)
}

func (h *Handler) evaluateCPRM(c echo.Context) error {
	var req models.CPRMRequest
	if errs := xhttp.ReadAndValidateRequest(c, &req); errs != nil {
		return xhttp.BadRequestResponse(c, errs)
	}
	result, err := h.evaluator.EvaluateCPRM(c.Request().Context(), req)
	if err != nil {
		return xhttp.AppErrorResponse(c, engineError(err))
	}
	return xhttp.SuccessResponse(c, result)
}

func (h *Handler) evaluateCOCIM(c echo.Context) error {
	var req models.COCIMRequest
	if errs := xhttp.ReadAndValidateRequest(c, &req); errs != nil {
		return xhttp.BadRequestResponse(c, errs)
	}
	result, err := h.evaluator.EvaluateCOCIM(c.Request().Context(), req)
	if err != nil {
		return xhttp.AppErrorResponse(c, engineError(err))
	}
	return xhttp.SuccessResponse(c, result)
}

func (h *Handler) evaluateFAREX(c echo.Context) error {
	var req models.FAREXRequest
	if errs := xhttp.ReadAndValidateRequest(c, &req); errs != nil {
		return xhttp.BadRequestResponse(c, errs)
	}
	result, err := h.evaluator.EvaluateFAREX(c.Request().Context(), req)
	if err != nil {
		return xhttp.AppErrorResponse(c, engineError(err))
	}
	return xhttp.SuccessResponse(c, result)
}

func (h *Handler) evaluateTCTBeam(c echo.Context) error {
	var req models.TCTBeamRequest
	if errs := xhttp.ReadAndValidateRequest(c, &req); errs != nil {
		return xhttp.BadRequestResponse(c, errs)
	}
	result, err := h.evaluator.EvaluateTCTBeam(c.Request().Context(), req)
	if err != nil {
		return xhttp.AppErrorResponse(c, engineError(err))
	}
	return xhttp.SuccessResponse(c, result)
}

func (h *Handler) evaluateCPMRV(c echo.Context) error {
	var req models.CPMRVRequest
	if errs := xhttp.ReadAndValidateRequest(c, &req); errs != nil {
		return xhttp.BadRequestResponse(c, errs)
	}
	result, err := h.evaluator.EvaluateCPMRV(c.Request().Context(), req)
	if err != nil {
		return xhttp.AppErrorResponse(c, engineError(err))
	}
	return xhttp.SuccessResponse(c, result)
}

func (h *Handler) evaluateDCBPRA(c echo.Context) error {
	var req models.DCBPRARequest
	if errs := xhttp.ReadAndValidateRequest(c, &req); errs != nil {
		return xhttp.BadRequestResponse(c, errs)
	}
	result, err := h.evaluator.EvaluateDCBPRA(c.Request().Context(), req)
	if err != nil {
		return xhttp.AppErrorResponse(c, engineError(err))
	}
	return xhttp.SuccessResponse(c, result)
}

func (h *Handler) evaluatePSRAS(c echo.Context) error {
	var req models.PSRASRequest
	if errs := xhttp.ReadAndValidateRequest(c, &req); errs != nil {
		return xhttp.BadRequestResponse(c, errs)
	}
	result, err := h.evaluator.EvaluatePSRAS(c.Request().Context(), req)
	if err != nil {
		return xhttp.AppErrorResponse(c, engineError(err))
	}
	return xhttp.SuccessResponse(c, result)
}

func (h *Handler) evaluateLSMRV(c echo.Context) error {
	var req models.LSMRVRequest
	if errs := xhttp.ReadAndValidateRequest(c, &req); errs != nil {
		return xhttp.BadRequestResponse(c, errs)
	}
	result, err := h.evaluator.EvaluateLSMRV(c.Request().Context(), req)
	if err != nil {
		return xhttp.AppErrorResponse(c, engineError(err))
	}
	return xhttp.SuccessResponse(c, result)
}

func (h *Handler) bridgeSummary(c echo.Context) error {
	var req models.SummaryBridgeRequest
	if errs := xhttp.ReadAndValidateRequest(c, &req); errs != nil {
		return xhttp.BadRequestResponse(c, errs)
	}
	if !h.bridge.Enabled() {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError("summary bridge is not enabled"))
	}
	result, err := h.bridge.Forward(c.Request().Context(), req.Items)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, result)
}
