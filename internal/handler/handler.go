package handler

import (
	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"inheritance-engine/internal/engine"
	"inheritance-engine/internal/intake"
	"inheritance-engine/internal/model"
)

type Handler struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{logger: logger}
}

// Handle routes POST /calculate and GET /health.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/calculate":
		h.calculate(ctx)
	case "/health":
		h.health(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found", nil)
	}
}

func (h *Handler) calculate(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed", nil)
		return
	}

	req, err := intake.Decode(ctx.PostBody(), true)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}

	resp := engine.Process(req)
	meta := resp.CalculationMetadata
	h.logger.Info("calculation finished",
		zap.String("calculation_id", meta.CalculationID),
		zap.String("outcome", meta.CalculationOutcome),
		zap.Int64("duration_ms", meta.CalculationDurationMs),
	)

	if meta.CalculationOutcome == model.OutcomeFailure {
		writeError(ctx, fasthttp.StatusUnprocessableEntity, "Invalid estate request", resp.CalculationResult.Messages)
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func (h *Handler) health(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed", nil)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	if err := json.NewEncoder(ctx).Encode(v); err != nil {
		ctx.Error("encode response", fasthttp.StatusInternalServerError)
	}
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string, msgs []model.CalculationMessage) {
	writeJSON(ctx, status, model.ErrorResponse{
		Status:   status,
		Message:  message,
		Messages: msgs,
	})
}
