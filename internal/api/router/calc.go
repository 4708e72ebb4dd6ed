package router

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/DjordjeVuckovic/calc-hunter/internal/api/dto"
	"github.com/DjordjeVuckovic/calc-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/calc-hunter/internal/calc"
	"github.com/DjordjeVuckovic/calc-hunter/internal/history"
	"github.com/labstack/echo/v4"
)

const DefaultMaxExpressionLength = 4096

type CalcRouter struct {
	e          *echo.Echo
	calculator *calc.Calculator
	recorder   history.Recorder
	maxLen     int
}

type CalcRouterOption func(*CalcRouter)

func WithRecorder(recorder history.Recorder) CalcRouterOption {
	return func(r *CalcRouter) {
		r.recorder = recorder
	}
}

func WithMaxExpressionLength(n int) CalcRouterOption {
	return func(r *CalcRouter) {
		if n > 0 {
			r.maxLen = n
		}
	}
}

func NewCalcRouter(e *echo.Echo, calculator *calc.Calculator, opts ...CalcRouterOption) *CalcRouter {
	r := &CalcRouter{
		e:          e,
		calculator: calculator,
		recorder:   history.NewNopRecorder(),
		maxLen:     DefaultMaxExpressionLength,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *CalcRouter) Bind() {
	r.e.POST("/eval", r.evalHandler)
	r.e.GET("/eval", r.evalQueryHandler)
	r.e.GET("/history", r.historyHandler)
}

func (r *CalcRouter) evalHandler(c echo.Context) error {
	var req dto.EvalRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	switch {
	case req.Cmd != nil:
		if *req.Cmd != dto.CmdEcho {
			return apperr.NewValidation(fmt.Sprintf("unknown command: %s", *req.Cmd))
		}
		return c.JSON(http.StatusOK, dto.EchoResponse{Res: dto.CmdEcho})
	case req.Exp != nil:
		return r.evaluate(c, *req.Exp, req.RPN)
	default:
		return apperr.NewValidation("unknown command or expression")
	}
}

func (r *CalcRouter) evalQueryHandler(c echo.Context) error {
	if !c.QueryParams().Has("exp") {
		return apperr.NewValidation("exp query parameter is required")
	}
	rpn, _ := strconv.ParseBool(c.QueryParam("rpn"))
	return r.evaluate(c, c.QueryParam("exp"), rpn)
}

func (r *CalcRouter) evaluate(c echo.Context, expression string, withRPN bool) error {
	if n := utf8.RuneCountInString(expression); n > r.maxLen {
		return apperr.NewValidation(fmt.Sprintf("expression is too long: %d characters, limit is %d", n, r.maxLen))
	}

	start := time.Now()
	res, err := r.calculator.EvaluateDetailed(expression)
	took := time.Since(start)

	r.record(c.Request().Context(), history.NewEvaluation(expression, res, err, took))

	if err != nil {
		return err
	}

	resp := dto.EvalResponse{Res: res.Value}
	if withRPN {
		resp.RPN = res.RPN()
	}
	return c.JSON(http.StatusOK, resp)
}

func (r *CalcRouter) record(ctx context.Context, e history.Evaluation) {
	if _, err := r.recorder.Save(ctx, e); err != nil {
		slog.Warn("Failed to record evaluation", "id", e.ID, "error", err)
	}
}

func (r *CalcRouter) historyHandler(c echo.Context) error {
	limit := history.DefaultRecentLimit
	if raw := c.QueryParam("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err == nil && v > 0 {
			limit = v
		}
	}

	evaluations, err := r.recorder.Recent(c.Request().Context(), history.ClampLimit(limit))
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	return c.JSON(http.StatusOK, dto.HistoryResponse{
		Evaluations: evaluations,
		Count:       len(evaluations),
	})
}
