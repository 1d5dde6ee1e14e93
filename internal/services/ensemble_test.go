package services

import (
	"testing"

	"ledger-analytics/internal/forecast"
	"ledger-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelWeights_Kinds(t *testing.T) {
	weights := ModelWeights{
		models.ModelSeasonal:    2,
		models.ModelLinear:      1,
		models.ModelExponential: 0,
	}
	assert.Equal(t, []models.ModelKind{models.ModelLinear, models.ModelSeasonal}, weights.Kinds())
	assert.Empty(t, ModelWeights{}.Kinds())
}

func TestRunEnsemble_WeightedAverage(t *testing.T) {
	points := referencePoints()
	weights := ModelWeights{models.ModelLinear: 3, models.ModelExponential: 1}

	result, err := RunEnsemble(points, models.StreamIncome, weights, 4)
	require.NoError(t, err)

	linear, err := forecast.ForecastSeries(models.ModelLinear, points, models.StreamIncome, 4)
	require.NoError(t, err)
	exponential, err := forecast.ForecastSeries(models.ModelExponential, points, models.StreamIncome, 4)
	require.NoError(t, err)

	require.Len(t, result.Values, 4)
	for i := range result.Values {
		assert.InDelta(t, (3*linear[i]+exponential[i])/4, result.Values[i], 1e-9)
	}
	assert.Equal(t, []models.ModelKind{models.ModelExponential, models.ModelLinear}, result.Used)
	assert.Empty(t, result.Unavailable)
	assert.Len(t, result.AllPredictions(), 8)
}

func TestRunEnsemble_RenormalizesOverFittedModels(t *testing.T) {
	// Only one non-zero income month: exponential cannot be fitted.
	points := referencePoints()
	for i := range points {
		points[i].Income = 0
	}
	points[len(points)-1].Income = 600

	weights := ModelWeights{models.ModelLinear: 1, models.ModelExponential: 5}
	result, err := RunEnsemble(points, models.StreamIncome, weights, 3)
	require.NoError(t, err)

	linear, err := forecast.ForecastSeries(models.ModelLinear, points, models.StreamIncome, 3)
	require.NoError(t, err)
	assert.InDeltaSlice(t, linear, result.Values, 1e-9)
	assert.Equal(t, []models.ModelKind{models.ModelExponential}, result.Unavailable)
	assert.ErrorIs(t, result.Errors[models.ModelExponential], forecast.ErrInsufficientData)
}

func TestRunEnsemble_NoModelAvailable(t *testing.T) {
	_, err := RunEnsemble(referencePoints()[:1], models.StreamNet, EqualWeights(), 3)
	assert.ErrorIs(t, err, ErrNoModelsAvailable)
	assert.Contains(t, err.Error(), "net")
}
