package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodOf_UsesUTCMonth(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	// 2024-03-01 05:00 in UTC+10 is still February in UTC
	p := PeriodOf(time.Date(2024, time.March, 1, 5, 0, 0, 0, loc))

	assert.Equal(t, Period{Year: 2024, Month: time.February}, p)
	assert.Equal(t, "2024-02", p.String())
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("2023-11")
	require.NoError(t, err)
	assert.Equal(t, 2023, p.Year)
	assert.Equal(t, time.November, p.Month)

	_, err = ParsePeriod("2023/11")
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = ParsePeriod("2023-13")
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestPeriod_AddMonthsAcrossYear(t *testing.T) {
	p := Period{Year: 2023, Month: time.November}

	assert.Equal(t, "2024-02", p.AddMonths(3).String())
	assert.Equal(t, "2023-01", p.AddMonths(-10).String())
	assert.Equal(t, p.Index()+3, p.AddMonths(3).Index())
}

func TestPeriod_Ordering(t *testing.T) {
	jan := Period{Year: 2024, Month: time.January}
	dec := Period{Year: 2023, Month: time.December}

	assert.True(t, dec.Before(jan))
	assert.True(t, jan.After(dec))
	assert.False(t, jan.Before(jan))
}

func TestPeriod_JSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Period Period `json:"period"`
	}{Period{Year: 2024, Month: time.June}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"period":"2024-06"}`, string(data))

	var decoded struct {
		Period Period `json:"period"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, time.June, decoded.Period.Month)

	assert.Error(t, json.Unmarshal([]byte(`{"period":"June"}`), &decoded))
}

func TestPeriod_Scan(t *testing.T) {
	var p Period
	require.NoError(t, p.Scan([]byte("2022-08")))
	assert.Equal(t, "2022-08", p.String())

	require.NoError(t, p.Scan(nil))
	assert.True(t, p.IsZero())

	assert.Error(t, p.Scan(42))
}
