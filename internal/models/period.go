package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const periodLayout = "2006-01"

var ErrInvalidPeriod = errors.New("invalid period, expected YYYY-MM")

// Period is a calendar month bucket key.
type Period struct {
	Year  int
	Month time.Month
}

// PeriodOf returns the UTC calendar month containing t.
func PeriodOf(t time.Time) Period {
	t = t.UTC()
	return Period{Year: t.Year(), Month: t.Month()}
}

// ParsePeriod parses a YYYY-MM key
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse(periodLayout, s)
	if err != nil {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
	}
	return PeriodOf(t), nil
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

func (p Period) IsZero() bool {
	return p.Year == 0 && p.Month == 0
}

// Start returns the first instant of the month in UTC.
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// AddMonths returns the period k months after p (k may be negative).
func (p Period) AddMonths(k int) Period {
	return PeriodOf(p.Start().AddDate(0, k, 0))
}

// Index counts months since year zero. Consecutive periods differ by exactly one.
func (p Period) Index() int {
	return p.Year*12 + int(p.Month) - 1
}

func (p Period) Before(other Period) bool {
	return p.Index() < other.Index()
}

func (p Period) After(other Period) bool {
	return p.Index() > other.Index()
}

func (p Period) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Period) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePeriod(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Value implements driver.Valuer so periods can be stored as text columns
func (p Period) Value() (driver.Value, error) {
	return p.String(), nil
}

// Scan implements sql.Scanner
func (p *Period) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		parsed, err := ParsePeriod(v)
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	case []byte:
		return p.Scan(string(v))
	case nil:
		*p = Period{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Period", value)
	}
}
