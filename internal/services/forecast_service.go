package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ledger-analytics/internal/forecast"
	"ledger-analytics/internal/models"
)

// ForecastRequest selects one model, one stream and a horizon. Empty fields
// take service defaults.
type ForecastRequest struct {
	Model    models.ModelKind
	Stream   models.Stream
	Currency string
	Horizon  int
}

type ForecastService struct {
	store           AggregationStoreInterface
	defaultCurrency string
	defaultHorizon  int
	maxHorizon      int
	metrics         MetricsRecorderInterface
	audit           AuditLoggerInterface
}

func NewForecastService(
	store AggregationStoreInterface,
	defaultCurrency string,
	defaultHorizon, maxHorizon int,
	metrics MetricsRecorderInterface,
	audit AuditLoggerInterface,
) *ForecastService {
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	if audit == nil {
		audit = NewAuditLogger(nil)
	}
	return &ForecastService{
		store:           store,
		defaultCurrency: defaultCurrency,
		defaultHorizon:  defaultHorizon,
		maxHorizon:      maxHorizon,
		metrics:         metrics,
		audit:           audit,
	}
}

// DefaultStream is the stream a model forecasts when none is requested:
// exponential growth is fitted on expenses, everything else on net savings.
func DefaultStream(kind models.ModelKind) models.Stream {
	if kind == models.ModelExponential {
		return models.StreamExpenses
	}
	return models.StreamNet
}

func (s *ForecastService) normalize(req ForecastRequest) (ForecastRequest, error) {
	if req.Model == "" {
		req.Model = models.ModelLinear
	}
	if !req.Model.IsValid() {
		return req, fmt.Errorf("%w: %s", forecast.ErrUnsupportedModel, req.Model)
	}
	if req.Stream == "" {
		req.Stream = DefaultStream(req.Model)
	}
	if !req.Stream.IsValid() {
		return req, fmt.Errorf("%w: unknown stream %q", ErrInvalidFilter, req.Stream)
	}
	req.Currency = strings.ToUpper(req.Currency)
	if req.Currency == "" {
		req.Currency = s.defaultCurrency
	}
	if req.Horizon == 0 {
		req.Horizon = s.defaultHorizon
	}
	if req.Horizon < 1 || (s.maxHorizon > 0 && req.Horizon > s.maxHorizon) {
		return req, fmt.Errorf("%w: %d not in 1..%d", ErrInvalidHorizon, req.Horizon, s.maxHorizon)
	}
	return req, nil
}

// Forecast fits the requested model on the current aggregates and projects
// it Horizon months past the last observed period.
func (s *ForecastService) Forecast(ctx context.Context, req ForecastRequest) (*models.ForecastResult, error) {
	req, err := s.normalize(req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() {
		s.metrics.RecordProcessingTime(MetricForecastDuration, time.Since(start))
	}()

	var result *models.ForecastResult
	if req.Model == models.ModelCategory {
		result, err = s.forecastCategories(req)
	} else {
		result, err = s.forecastStream(req)
	}

	status := "success"
	if err != nil {
		status = "error"
		if errors.Is(err, forecast.ErrInsufficientData) {
			status = "insufficient_data"
			s.metrics.IncrementCounter(MetricModelUnavailable, map[string]string{"model": string(req.Model)})
			s.audit.LogModelUnavailable(ctx, req.Model, req.Stream, err.Error())
		}
	}
	s.metrics.IncrementCounter(MetricForecastRequest, map[string]string{"model": string(req.Model), "status": status})
	return result, err
}

func (s *ForecastService) forecastStream(req ForecastRequest) (*models.ForecastResult, error) {
	points := s.store.MonthlySeries(req.Currency)
	model, err := forecast.FitSeries(req.Model, points, req.Stream)
	if err != nil {
		return nil, err
	}

	return &models.ForecastResult{
		Model:       req.Model,
		Stream:      req.Stream,
		Currency:    req.Currency,
		StartPeriod: nextPeriod(points),
		Values:      model.Forecast(req.Horizon),
		Parameters:  forecast.Parameters(model),
	}, nil
}

// forecastCategories fits one trend per category. Values holds the combined
// projection from the month after the latest category period; PerCategory is
// keyed by category id and aligned to the same months.
func (s *ForecastService) forecastCategories(req ForecastRequest) (*models.ForecastResult, error) {
	series := s.store.CategorySeries(req.Currency)
	model, err := forecast.FitCategory(series)
	if err != nil {
		return nil, err
	}

	perCategory := make(map[string][]float64, len(model.PerCategory))
	for id, values := range model.ForecastAll(req.Horizon) {
		perCategory[id.String()] = values
	}
	unavailable := make([]string, 0, len(model.Unavailable))
	for _, id := range model.Unavailable {
		unavailable = append(unavailable, id.String())
	}

	return &models.ForecastResult{
		Model:       models.ModelCategory,
		Stream:      req.Stream,
		Currency:    req.Currency,
		StartPeriod: model.LastPeriod.AddMonths(1),
		Values:      model.Forecast(req.Horizon),
		Parameters:  forecast.Parameters(model),
		PerCategory: perCategory,
		Unavailable: unavailable,
	}, nil
}

// ForecastAll runs every model kind. Models that fail are reported in the
// error slice and left out of the results.
func (s *ForecastService) ForecastAll(ctx context.Context, currency string, horizon int) ([]models.ForecastResult, []error) {
	kinds := []models.ModelKind{models.ModelLinear, models.ModelExponential, models.ModelSeasonal, models.ModelCategory}

	var results []models.ForecastResult
	var errs []error
	for _, kind := range kinds {
		result, err := s.Forecast(ctx, ForecastRequest{Model: kind, Currency: currency, Horizon: horizon})
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", kind, err))
			continue
		}
		results = append(results, *result)
	}
	return results, errs
}

func nextPeriod(points []models.TimeSeriesPoint) models.Period {
	if len(points) == 0 {
		return models.Period{}
	}
	return points[len(points)-1].Period.AddMonths(1)
}
