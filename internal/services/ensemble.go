package services

import (
	"errors"
	"fmt"
	"sort"

	"ledger-analytics/internal/forecast"
	"ledger-analytics/internal/models"
)

// ModelWeights maps a model kind to its share of an ensemble forecast.
type ModelWeights map[models.ModelKind]float64

// EqualWeights gives linear, exponential and seasonal the same weight.
func EqualWeights() ModelWeights {
	return ModelWeights{
		models.ModelLinear:      1,
		models.ModelExponential: 1,
		models.ModelSeasonal:    1,
	}
}

// Kinds lists the kinds with a positive weight in a stable order.
func (w ModelWeights) Kinds() []models.ModelKind {
	kinds := make([]models.ModelKind, 0, len(w))
	for k, weight := range w {
		if weight > 0 {
			kinds = append(kinds, k)
		}
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// EnsembleForecast is the weighted average of every model that could be fitted.
type EnsembleForecast struct {
	Values      []float64
	Predictions map[models.ModelKind][]float64
	Used        []models.ModelKind
	Unavailable []models.ModelKind
	Errors      map[models.ModelKind]error
}

// AllPredictions flattens every individual model prediction.
func (e EnsembleForecast) AllPredictions() []float64 {
	var all []float64
	for _, kind := range e.Used {
		all = append(all, e.Predictions[kind]...)
	}
	return all
}

// RunEnsemble fits each weighted model on stream and averages their forecasts
// element-wise, renormalizing over the models that succeeded. Models with too
// little data are listed in Unavailable. It fails with ErrNoModelsAvailable
// only when no model could be fitted.
func RunEnsemble(points []models.TimeSeriesPoint, stream models.Stream, weights ModelWeights, horizon int) (EnsembleForecast, error) {
	result := EnsembleForecast{
		Values:      make([]float64, horizon),
		Predictions: make(map[models.ModelKind][]float64),
		Errors:      make(map[models.ModelKind]error),
	}

	var totalWeight float64
	for _, kind := range weights.Kinds() {
		model, err := forecast.FitSeries(kind, points, stream)
		if err != nil {
			if !errors.Is(err, forecast.ErrInsufficientData) {
				return EnsembleForecast{}, err
			}
			result.Unavailable = append(result.Unavailable, kind)
			result.Errors[kind] = err
			continue
		}

		predictions := model.Forecast(horizon)
		result.Predictions[kind] = predictions
		result.Used = append(result.Used, kind)

		w := weights[kind]
		totalWeight += w
		for i, v := range predictions {
			result.Values[i] += w * v
		}
	}

	if len(result.Used) == 0 {
		return result, fmt.Errorf("%w for %s stream", ErrNoModelsAvailable, stream)
	}

	for i := range result.Values {
		result.Values[i] /= totalWeight
	}
	return result, nil
}
