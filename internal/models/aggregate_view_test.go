package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func period(y int, m time.Month) Period {
	return Period{Year: y, Month: m}
}

func TestViewFilter_Validate(t *testing.T) {
	from := period(2024, time.March)
	to := period(2024, time.January)

	assert.NoError(t, ViewFilter{}.Validate())
	assert.ErrorIs(t, ViewFilter{Currency: "us"}.Validate(), ErrInvalidViewFilter)
	assert.ErrorIs(t, ViewFilter{FromPeriod: &from, ToPeriod: &to}.Validate(), ErrInvalidViewFilter)
	assert.ErrorIs(t, ViewFilter{Limit: -1}.Validate(), ErrInvalidViewFilter)
}

func TestViewFilter_Matches(t *testing.T) {
	cat := uuid.New()
	other := uuid.New()
	row := CategorySummaryRow{Period: period(2024, time.February), Currency: "USD", CategoryID: cat}

	from := period(2024, time.January)
	to := period(2024, time.February)
	late := period(2024, time.March)

	assert.True(t, ViewFilter{}.Matches(row))
	assert.True(t, ViewFilter{Currency: "USD", FromPeriod: &from, ToPeriod: &to, CategoryID: &cat}.Matches(row))
	assert.False(t, ViewFilter{Currency: "EUR"}.Matches(row))
	assert.False(t, ViewFilter{FromPeriod: &late}.Matches(row))
	assert.False(t, ViewFilter{ToPeriod: &from}.Matches(row))
	assert.False(t, ViewFilter{CategoryID: &other}.Matches(row))
}

func TestViewFilter_PeriodBoundsIgnoredForPeriodlessRows(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	from := period(2030, time.January)
	hierarchy := CategoryHierarchyRow{AncestorID: a, DescendantID: b, Depth: 1}

	assert.True(t, ViewFilter{FromPeriod: &from, Currency: "USD"}.Matches(hierarchy))
	assert.True(t, ViewFilter{CategoryID: &b}.Matches(hierarchy))
}

func TestDecodeViewRows_RestoresTypes(t *testing.T) {
	rows := []MonthlySummaryRow{
		{Period: period(2024, time.January), Currency: "USD", Income: 1000, Expenses: 800, Net: 200, TransactionCount: 4},
	}
	payload, err := json.Marshal(rows)
	require.NoError(t, err)

	decoded, err := DecodeViewRows(ViewMonthlySummary, payload)
	require.NoError(t, err)
	require.Len(t, decoded, 1)

	typed, ok := decoded[0].(MonthlySummaryRow)
	require.True(t, ok)
	assert.Equal(t, rows[0], typed)

	_, err = DecodeViewRows("nope", payload)
	assert.ErrorIs(t, err, ErrUnknownViewName)
}

func TestViewSnapshotRecord_RoundTrip(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	view := AggregateView{
		Name:        ViewCategoryCorrelations,
		Version:     7,
		LastUpdated: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Rows: []ViewRow{
			CategoryCorrelationRow{Currency: "USD", Category1ID: a, Category2ID: b, Correlation: 0.93, SampleSize: 6},
		},
	}

	record, err := NewViewSnapshotRecord(view)
	require.NoError(t, err)
	assert.Equal(t, 1, record.RowCount)

	restored, err := record.ToView()
	require.NoError(t, err)
	assert.Equal(t, view.Version, restored.Version)
	assert.Equal(t, view.Rows, restored.Rows)
}

func TestJSONPayload_ValueAndScan(t *testing.T) {
	v, err := JSONPayload(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	_, err = JSONPayload("{broken").Value()
	assert.Error(t, err)

	var p JSONPayload
	require.NoError(t, p.Scan(`[{"a":1}]`))
	assert.JSONEq(t, `[{"a":1}]`, string(p))
	assert.Error(t, p.Scan(3.14))
}

func TestStreamRisk_AverageScore(t *testing.T) {
	_, ok := StreamRisk{}.AverageScore()
	assert.False(t, ok)

	r := StreamRisk{
		Income:   StreamAssessment{Assessment: &RiskAssessment{Score: 10}},
		Expenses: StreamAssessment{Assessment: &RiskAssessment{Score: 30}},
		Savings:  StreamAssessment{Unavailable: "insufficient data"},
	}
	avg, ok := r.AverageScore()
	assert.True(t, ok)
	assert.Equal(t, 20.0, avg)
}
