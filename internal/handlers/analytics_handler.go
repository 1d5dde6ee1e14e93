package handlers

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"ledger-analytics/internal/dto"
	"ledger-analytics/internal/errors"
	"ledger-analytics/internal/forecast"
	"ledger-analytics/internal/models"
	"ledger-analytics/internal/repositories"
	"ledger-analytics/internal/services"
	"ledger-analytics/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AnalyticsHandler exposes the aggregation store and the analytics services over HTTP
type AnalyticsHandler struct {
	store           services.AggregationStoreInterface
	forecasts       services.ForecastServiceInterface
	risk            services.RiskServiceInterface
	goals           services.GoalServiceInterface
	scenarios       services.ScenarioServiceInterface
	insights        services.InsightServiceInterface
	defaultCurrency string
	now             func() time.Time
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(
	store services.AggregationStoreInterface,
	forecasts services.ForecastServiceInterface,
	risk services.RiskServiceInterface,
	goals services.GoalServiceInterface,
	scenarios services.ScenarioServiceInterface,
	insights services.InsightServiceInterface,
	defaultCurrency string,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		store:           store,
		forecasts:       forecasts,
		risk:            risk,
		goals:           goals,
		scenarios:       scenarios,
		insights:        insights,
		defaultCurrency: strings.ToUpper(defaultCurrency),
		now:             time.Now,
	}
}

// RegisterRoutes mounts the analytics endpoints on g. refreshGuards only apply to the manual refresh.
func (h *AnalyticsHandler) RegisterRoutes(g *echo.Group, refreshGuards ...echo.MiddlewareFunc) {
	g.POST("/refresh", h.Refresh, refreshGuards...)
	g.GET("/views/:name", h.GetView)
	g.GET("/forecast", h.GetForecast)
	g.GET("/forecasts", h.ListForecasts)
	g.GET("/risk", h.GetRisk)
	g.POST("/goals/predict", h.PredictGoal)
	g.GET("/goals/predictions", h.ListGoalPredictions)
	g.GET("/goals/:id/prediction", h.GetGoalPrediction)
	g.GET("/scenarios", h.GetScenarios)
	g.GET("/insights", h.GetInsights)
}

// Refresh rebuilds every aggregate view from the ledger
// @Summary Refresh aggregates
// @Description Rebuilds all aggregate views as of now. On failure the previous views stay in service.
// @Tags Analytics
// @Produce json
// @Success 200 {object} dto.RefreshResponse "Refresh succeeded"
// @Failure 500 {object} errors.ErrorResponse "ANALYTICS_002 - Refresh failed, previous version retained"
// @Router /analytics/refresh [post]
func (h *AnalyticsHandler) Refresh(c echo.Context) error {
	slog.Info("manual refresh requested", requestActor(c)...)

	report, err := h.store.Refresh(c.Request().Context(), h.now().UTC())
	if err != nil {
		var refreshErr *services.RefreshError
		if stderrors.As(err, &refreshErr) {
			slog.Warn("manual refresh failed", "view", refreshErr.View, "retained_version", refreshErr.RetainedVersion, "error", refreshErr.Err)
			return SendError(c, errors.AnalyticsRefreshFailed, errors.WithDetails(
				fmt.Sprintf("failed_view: %s", refreshErr.View),
				fmt.Sprintf("retained_version: %d", refreshErr.RetainedVersion),
			))
		}
		return h.sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.RefreshResponse{Report: report})
}

// GetView returns the rows of one aggregate view
// @Summary Query aggregate view
// @Tags Analytics
// @Produce json
// @Param name path string true "View name"
// @Param currency query string false "ISO 4217 currency"
// @Param from query string false "First period, YYYY-MM"
// @Param to query string false "Last period, YYYY-MM"
// @Param category_id query string false "Category ID"
// @Param limit query int false "Maximum rows"
// @Success 200 {object} dto.ViewResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid filter"
// @Failure 404 {object} errors.ErrorResponse "ANALYTICS_004 - Unknown view"
// @Failure 503 {object} errors.ErrorResponse "ANALYTICS_009 - Aggregates not refreshed yet"
// @Router /analytics/views/{name} [get]
func (h *AnalyticsHandler) GetView(c echo.Context) error {
	name := c.Param("name")
	if !models.IsValidViewName(name) {
		return SendError(c, errors.AnalyticsUnknownView, errors.WithDetails(name))
	}

	var params dto.ViewQueryParams
	if err := bindQuery(c, &params); err != nil {
		return sendValidationError(c, err)
	}

	filter, err := toViewFilter(params)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	if h.store.Version() == 0 {
		return SendError(c, errors.AnalyticsNotReady)
	}

	view, err := h.store.View(name)
	if err != nil {
		return h.sendServiceError(c, err)
	}
	rows, err := h.store.Query(name, filter)
	if err != nil {
		return h.sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ViewResponse{
		Name:        view.Name,
		Version:     view.Version,
		LastUpdated: view.LastUpdated,
		Count:       len(rows),
		Rows:        rows,
	})
}

// GetForecast runs one forecast model
// @Summary Forecast
// @Tags Analytics
// @Produce json
// @Param model query string false "linear, exponential, seasonal or category"
// @Param stream query string false "income, expenses or net"
// @Param currency query string false "ISO 4217 currency"
// @Param horizon query int false "Months to forecast"
// @Success 200 {object} models.ForecastResult
// @Failure 400 {object} errors.ErrorResponse "ANALYTICS_006 - Unsupported model or ANALYTICS_007 - Invalid horizon"
// @Failure 422 {object} errors.ErrorResponse "ANALYTICS_001 - Insufficient data"
// @Router /analytics/forecast [get]
func (h *AnalyticsHandler) GetForecast(c echo.Context) error {
	var params dto.ForecastQueryParams
	if err := bindQuery(c, &params); err != nil {
		return sendValidationError(c, err)
	}

	result, err := h.forecasts.Forecast(c.Request().Context(), services.ForecastRequest{
		Model:    models.ModelKind(strings.ToLower(params.Model)),
		Stream:   models.Stream(strings.ToLower(params.Stream)),
		Currency: params.Currency,
		Horizon:  params.Horizon,
	})
	if err != nil {
		return h.sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// ListForecasts runs every model over its default stream
// @Summary Forecast with all models
// @Tags Analytics
// @Produce json
// @Param currency query string false "ISO 4217 currency"
// @Param horizon query int false "Months to forecast"
// @Success 200 {object} dto.ForecastListResponse
// @Router /analytics/forecasts [get]
func (h *AnalyticsHandler) ListForecasts(c echo.Context) error {
	var params dto.ForecastQueryParams
	if err := bindQuery(c, &params); err != nil {
		return sendValidationError(c, err)
	}
	results, errs := h.forecasts.ForecastAll(c.Request().Context(), params.Currency, params.Horizon)
	resp := dto.ForecastListResponse{Forecasts: results}
	for _, err := range errs {
		if stderrors.Is(err, services.ErrInvalidHorizon) {
			return SendError(c, errors.AnalyticsInvalidHorizon, errors.WithDetails(err.Error()))
		}
		resp.Unavailable = append(resp.Unavailable, err.Error())
	}
	if resp.Forecasts == nil {
		resp.Forecasts = []models.ForecastResult{}
	}

	return c.JSON(http.StatusOK, resp)
}

// GetRisk scores the volatility of each stream
// @Summary Risk assessment
// @Tags Analytics
// @Produce json
// @Param currency query string false "ISO 4217 currency"
// @Success 200 {object} dto.RiskResponse
// @Failure 503 {object} errors.ErrorResponse "ANALYTICS_009 - Aggregates not refreshed yet"
// @Router /analytics/risk [get]
func (h *AnalyticsHandler) GetRisk(c echo.Context) error {
	var params dto.CurrencyQueryParams
	if err := bindQuery(c, &params); err != nil {
		return sendValidationError(c, err)
	}
	if h.store.Version() == 0 {
		return SendError(c, errors.AnalyticsNotReady)
	}

	currency := h.currency(params.Currency)
	points := h.store.MonthlySeries(currency)

	return c.JSON(http.StatusOK, dto.RiskResponse{
		Currency: currency,
		Months:   len(points),
		Risk:     h.risk.AssessStreams(points),
	})
}

// PredictGoal predicts an ad hoc goal without storing it
// @Summary Predict goal
// @Description An expired goal is answered with expired=true and the remaining shortfall as monthly_required.
// @Tags Analytics
// @Accept json
// @Produce json
// @Param request body dto.GoalPredictionRequest true "Goal"
// @Success 200 {object} models.GoalPrediction
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid goal"
// @Failure 422 {object} errors.ErrorResponse "ANALYTICS_005 - No model has enough data"
// @Router /analytics/goals/predict [post]
func (h *AnalyticsHandler) PredictGoal(c echo.Context) error {
	var req dto.GoalPredictionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	prediction, err := h.goals.PredictForCurrency(c.Request().Context(), models.Goal{
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		TargetDate:    req.TargetDate,
		Currency:      h.currency(req.Currency),
	})
	return h.sendPrediction(c, prediction, err)
}

// GetGoalPrediction predicts a stored goal
// @Summary Predict stored goal
// @Tags Analytics
// @Produce json
// @Param id path string true "Goal ID"
// @Success 200 {object} models.GoalPrediction
// @Failure 404 {object} errors.ErrorResponse "ANALYTICS_008 - Goal not found"
// @Router /analytics/goals/{id}/prediction [get]
func (h *AnalyticsHandler) GetGoalPrediction(c echo.Context) error {
	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid goal ID"))
	}

	prediction, err := h.goals.PredictStoredGoal(c.Request().Context(), goalID)
	return h.sendPrediction(c, prediction, err)
}

// ListGoalPredictions predicts every stored goal
// @Summary Predict all stored goals
// @Tags Analytics
// @Produce json
// @Param currency query string false "Only goals in this currency"
// @Success 200 {object} dto.GoalOutcomesResponse
// @Router /analytics/goals/predictions [get]
func (h *AnalyticsHandler) ListGoalPredictions(c echo.Context) error {
	var params dto.CurrencyQueryParams
	if err := bindQuery(c, &params); err != nil {
		return sendValidationError(c, err)
	}

	outcomes, err := h.goals.PredictAll(c.Request().Context(), strings.ToUpper(params.Currency))
	if err != nil {
		return h.sendServiceError(c, err)
	}
	if outcomes == nil {
		outcomes = []models.GoalOutcome{}
	}

	return c.JSON(http.StatusOK, dto.GoalOutcomesResponse{Goals: outcomes})
}

// GetScenarios projects optimistic, realistic and pessimistic savings
// @Summary Scenarios
// @Tags Analytics
// @Produce json
// @Param currency query string false "ISO 4217 currency"
// @Success 200 {object} models.ScenarioSet
// @Failure 422 {object} errors.ErrorResponse "ANALYTICS_001 - Insufficient data"
// @Router /analytics/scenarios [get]
func (h *AnalyticsHandler) GetScenarios(c echo.Context) error {
	var params dto.CurrencyQueryParams
	if err := bindQuery(c, &params); err != nil {
		return sendValidationError(c, err)
	}

	set, err := h.scenarios.ScenariosForCurrency(c.Request().Context(), params.Currency)
	if err != nil {
		return h.sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, set)
}

// GetInsights composes the structured insight payload
// @Summary Insights
// @Description Missing inputs appear as unavailable sections. The narrative is only requested when narrative=true.
// @Tags Analytics
// @Produce json
// @Param currency query string false "ISO 4217 currency"
// @Param narrative query bool false "Request a generated narrative"
// @Success 200 {object} models.StructuredInsightPayload
// @Router /analytics/insights [get]
func (h *AnalyticsHandler) GetInsights(c echo.Context) error {
	var params dto.InsightQueryParams
	if err := bindQuery(c, &params); err != nil {
		return sendValidationError(c, err)
	}

	payload, err := h.insights.Generate(c.Request().Context(), params.Currency, params.Narrative)
	if err != nil {
		return h.sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, payload)
}

func (h *AnalyticsHandler) currency(raw string) string {
	if raw == "" {
		return h.defaultCurrency
	}
	return strings.ToUpper(raw)
}

// bindQuery binds and validates query parameters
func bindQuery(c echo.Context, params interface{}) error {
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, params); err != nil {
		return err
	}
	return c.Validate(params)
}

func (h *AnalyticsHandler) sendPrediction(c echo.Context, prediction *models.GoalPrediction, err error) error {
	if err != nil && !(stderrors.Is(err, services.ErrGoalExpired) && prediction != nil) {
		return h.sendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, prediction)
}

// sendServiceError maps service sentinels onto API error codes
func (h *AnalyticsHandler) sendServiceError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrUnknownView):
		return SendError(c, errors.AnalyticsUnknownView, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrInvalidFilter), stderrors.Is(err, services.ErrInvalidGoal):
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrInvalidHorizon):
		return SendError(c, errors.AnalyticsInvalidHorizon, errors.WithDetails(err.Error()))
	case stderrors.Is(err, forecast.ErrUnsupportedModel):
		return SendError(c, errors.AnalyticsUnsupportedModel, errors.WithDetails(err.Error()))
	case stderrors.Is(err, forecast.ErrInsufficientData):
		return SendError(c, errors.AnalyticsInsufficientData, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrNoModelsAvailable):
		return SendError(c, errors.AnalyticsNoModels, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrGoalExpired):
		return SendError(c, errors.AnalyticsGoalExpired)
	case stderrors.Is(err, repositories.ErrGoalNotFound):
		return SendError(c, errors.AnalyticsGoalNotFound)
	case stderrors.Is(err, services.ErrRefreshFailed):
		return SendError(c, errors.AnalyticsRefreshFailed, errors.WithDetails(err.Error()))
	default:
		return SendSystemError(c, err)
	}
}

// sendValidationError reports the failed rule of each field. Errors that are
// not validation errors come from binding and are reported as a format error.
// With several failures the most specific code wins: required, currency, period.
func sendValidationError(c echo.Context, err error) error {
	fields := validation.FieldErrors(err)
	if len(fields) == 0 {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request parameters"))
	}

	failed := make(map[string]bool, len(fields))
	for _, rule := range fields {
		failed[rule] = true
	}

	code := errors.ValidationGeneral
	switch {
	case failed["required"]:
		code = errors.ValidationRequiredField
	case failed["currency"]:
		code = errors.ValidationInvalidCurrency
	case failed["period"]:
		code = errors.ValidationInvalidPeriod
	}
	return SendError(c, code, errors.WithFieldDetails(fields))
}

func toViewFilter(params dto.ViewQueryParams) (models.ViewFilter, error) {
	filter := models.ViewFilter{
		Currency: strings.ToUpper(params.Currency),
		Limit:    params.Limit,
	}
	if params.From != "" {
		from, err := models.ParsePeriod(params.From)
		if err != nil {
			return filter, err
		}
		filter.FromPeriod = &from
	}
	if params.To != "" {
		to, err := models.ParsePeriod(params.To)
		if err != nil {
			return filter, err
		}
		filter.ToPeriod = &to
	}
	if params.CategoryID != "" {
		id, err := uuid.Parse(params.CategoryID)
		if err != nil {
			return filter, err
		}
		filter.CategoryID = &id
	}
	return filter, nil
}
