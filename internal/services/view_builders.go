package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"ledger-analytics/internal/forecast"
	"ledger-analytics/internal/models"

	"github.com/google/uuid"
)

// anomalyThreshold is the number of standard deviations beyond which a monthly
// category total is flagged.
const (
	anomalyThreshold     = 2.0
	anomalyMinPeriods    = 3
	correlationMinPeriod = 2
)

var ErrCategoryCycle = errors.New("category hierarchy contains a cycle")

// RefreshInput is the immutable ledger read shared by every builder of one
// refresh pass. Builders run concurrently and must not modify it.
type RefreshInput struct {
	AsOf       time.Time
	Entries    []models.LedgerEntry
	Categories []models.Category

	totalsOnce sync.Once
	totals     map[categoryKey]map[models.Period]*categoryBucket
}

type categoryKey struct {
	CategoryID uuid.UUID
	Currency   string
}

type categoryBucket struct {
	total float64
	count int64
}

// NewRefreshInput wraps the ledger rows read for one pass.
func NewRefreshInput(asOf time.Time, entries []models.LedgerEntry, categories []models.Category) *RefreshInput {
	return &RefreshInput{
		AsOf:       asOf,
		Entries:    entries,
		Categories: categories,
	}
}

// categoryTotals groups categorized entries by (category, currency, period).
// The result is computed once per pass and shared read-only.
func (in *RefreshInput) categoryTotals() map[categoryKey]map[models.Period]*categoryBucket {
	in.totalsOnce.Do(func() {
		in.totals = make(map[categoryKey]map[models.Period]*categoryBucket)
		for i := range in.Entries {
			e := &in.Entries[i]
			if e.CategoryID == nil {
				continue
			}
			key := categoryKey{CategoryID: *e.CategoryID, Currency: e.Currency}
			byPeriod, ok := in.totals[key]
			if !ok {
				byPeriod = make(map[models.Period]*categoryBucket)
				in.totals[key] = byPeriod
			}
			b, ok := byPeriod[e.Period()]
			if !ok {
				b = &categoryBucket{}
				byPeriod[e.Period()] = b
			}
			b.total += e.AmountFloat()
			b.count++
		}
	})
	return in.totals
}

// history returns one category's monthly totals in ascending period order.
func history(byPeriod map[models.Period]*categoryBucket) ([]models.Period, []float64) {
	periods := make([]models.Period, 0, len(byPeriod))
	for p := range byPeriod {
		periods = append(periods, p)
	}
	sort.Slice(periods, func(i, j int) bool { return periods[i].Before(periods[j]) })

	values := make([]float64, len(periods))
	for i, p := range periods {
		values[i] = byPeriod[p].total
	}
	return periods, values
}

func sortedKeys(totals map[categoryKey]map[models.Period]*categoryBucket) []categoryKey {
	keys := make([]categoryKey, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Currency != keys[j].Currency {
			return keys[i].Currency < keys[j].Currency
		}
		return keys[i].CategoryID.String() < keys[j].CategoryID.String()
	})
	return keys
}

// DefaultViewBuilders returns the builders of every declared view in refresh order.
func DefaultViewBuilders() []ViewBuilder {
	return []ViewBuilder{
		MonthlySummaryBuilder{},
		CategorySummaryBuilder{},
		SubcategorySummaryBuilder{},
		CategoryHierarchyBuilder{},
		CategoryAnomalyBuilder{},
		CategoryCorrelationBuilder{},
	}
}

// MonthlySummaryBuilder totals income and expenses per period and currency.
// Uncategorized entries are included here and nowhere else.
type MonthlySummaryBuilder struct{}

func (MonthlySummaryBuilder) Name() string { return models.ViewMonthlySummary }

func (MonthlySummaryBuilder) Build(ctx context.Context, in *RefreshInput) ([]models.ViewRow, error) {
	type key struct {
		period   models.Period
		currency string
	}
	rows := make(map[key]*models.MonthlySummaryRow)

	for i := range in.Entries {
		e := &in.Entries[i]
		k := key{period: e.Period(), currency: e.Currency}
		row, ok := rows[k]
		if !ok {
			row = &models.MonthlySummaryRow{Period: k.period, Currency: k.currency}
			rows[k] = row
		}

		amount := e.AmountFloat()
		if amount >= 0 {
			row.Income += amount
		} else {
			row.Expenses += -amount
		}
		row.TransactionCount++
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]*models.MonthlySummaryRow, 0, len(rows))
	for _, row := range rows {
		row.Net = row.Income - row.Expenses
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Currency != out[j].Currency {
			return out[i].Currency < out[j].Currency
		}
		return out[i].Period.Before(out[j].Period)
	})

	result := make([]models.ViewRow, len(out))
	for i, row := range out {
		result[i] = *row
	}
	return result, nil
}

// CategorySummaryBuilder totals each category per period and currency.
type CategorySummaryBuilder struct{}

func (CategorySummaryBuilder) Name() string { return models.ViewCategorySummary }

func (CategorySummaryBuilder) Build(ctx context.Context, in *RefreshInput) ([]models.ViewRow, error) {
	totals := in.categoryTotals()
	var rows []models.ViewRow

	for _, key := range sortedKeys(totals) {
		periods, _ := history(totals[key])
		for _, p := range periods {
			b := totals[key][p]
			avg, _ := forecast.SafeDiv(b.total, float64(b.count))
			rows = append(rows, models.CategorySummaryRow{
				Period:           p,
				Currency:         key.Currency,
				CategoryID:       key.CategoryID,
				TotalAmount:      b.total,
				TransactionCount: b.count,
				AverageAmount:    avg,
			})
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

// SubcategorySummaryBuilder attributes each sub-category's totals to its
// direct parent. Categories without a parent produce no roll-up rows.
type SubcategorySummaryBuilder struct{}

func (SubcategorySummaryBuilder) Name() string { return models.ViewSubcategorySummary }

func (SubcategorySummaryBuilder) Build(ctx context.Context, in *RefreshInput) ([]models.ViewRow, error) {
	parents := make(map[uuid.UUID]uuid.UUID, len(in.Categories))
	for i := range in.Categories {
		c := &in.Categories[i]
		if c.HasParent() {
			parents[c.ID] = *c.ParentID
		}
	}

	type key struct {
		period   models.Period
		currency string
		parent   uuid.UUID
	}
	rows := make(map[key]*models.SubcategorySummaryRow)
	children := make(map[key]map[uuid.UUID]struct{})

	totals := in.categoryTotals()
	for _, ck := range sortedKeys(totals) {
		parent, ok := parents[ck.CategoryID]
		if !ok {
			continue
		}
		for p, b := range totals[ck] {
			k := key{period: p, currency: ck.Currency, parent: parent}
			row, ok := rows[k]
			if !ok {
				row = &models.SubcategorySummaryRow{Period: p, Currency: ck.Currency, ParentCategoryID: parent}
				rows[k] = row
				children[k] = make(map[uuid.UUID]struct{})
			}
			row.TotalAmount += b.total
			row.TransactionCount += b.count
			children[k][ck.CategoryID] = struct{}{}
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]*models.SubcategorySummaryRow, 0, len(rows))
	for k, row := range rows {
		row.SubcategoryCount = len(children[k])
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Currency != b.Currency {
			return a.Currency < b.Currency
		}
		if a.ParentCategoryID != b.ParentCategoryID {
			return a.ParentCategoryID.String() < b.ParentCategoryID.String()
		}
		return a.Period.Before(b.Period)
	})

	result := make([]models.ViewRow, len(out))
	for i, row := range out {
		result[i] = *row
	}
	return result, nil
}

// CategoryHierarchyBuilder materializes the transitive closure of the
// category tree, including a depth 0 row for every category.
type CategoryHierarchyBuilder struct{}

func (CategoryHierarchyBuilder) Name() string { return models.ViewCategoryHierarchy }

func (CategoryHierarchyBuilder) Build(ctx context.Context, in *RefreshInput) ([]models.ViewRow, error) {
	parents := make(map[uuid.UUID]uuid.UUID, len(in.Categories))
	for i := range in.Categories {
		c := &in.Categories[i]
		if c.HasParent() {
			parents[c.ID] = *c.ParentID
		}
	}

	ids := make([]uuid.UUID, len(in.Categories))
	for i := range in.Categories {
		ids[i] = in.Categories[i].ID
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	var rows []models.ViewRow
	for _, id := range ids {
		rows = append(rows, models.CategoryHierarchyRow{AncestorID: id, DescendantID: id, Depth: 0})

		seen := map[uuid.UUID]struct{}{id: {}}
		current, depth := id, 0
		for {
			parent, ok := parents[current]
			if !ok {
				break
			}
			if _, loop := seen[parent]; loop {
				return nil, fmt.Errorf("%w: category %s", ErrCategoryCycle, id)
			}
			seen[parent] = struct{}{}
			depth++
			rows = append(rows, models.CategoryHierarchyRow{AncestorID: parent, DescendantID: id, Depth: depth})
			current = parent
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

// CategoryAnomalyBuilder flags monthly totals further than two population
// standard deviations from the category's mean. Categories with fewer than
// three periods are skipped, as are categories whose totals never vary.
type CategoryAnomalyBuilder struct{}

func (CategoryAnomalyBuilder) Name() string { return models.ViewCategoryAnomalies }

func (CategoryAnomalyBuilder) Build(ctx context.Context, in *RefreshInput) ([]models.ViewRow, error) {
	totals := in.categoryTotals()
	var rows []models.ViewRow

	for _, key := range sortedKeys(totals) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		periods, values := history(totals[key])
		if len(values) < anomalyMinPeriods {
			continue
		}

		mean := forecast.Mean(values)
		stddev := forecast.PopulationStdDev(values)
		if stddev < forecast.Epsilon {
			continue
		}

		for i, v := range values {
			if math.Abs(v-mean) <= anomalyThreshold*stddev {
				continue
			}
			pct, _ := forecast.SafeDiv(v-mean, math.Abs(mean))
			rows = append(rows, models.CategoryAnomalyRow{
				Period:       periods[i],
				Currency:     key.Currency,
				CategoryID:   key.CategoryID,
				TotalAmount:  v,
				Mean:         mean,
				StdDev:       stddev,
				DeviationPct: pct * 100,
			})
		}
	}
	return rows, nil
}

// CategoryCorrelationBuilder computes the Pearson correlation of monthly
// totals for every pair of categories in the same currency sharing at least
// two periods. Each pair is stored once with Category1ID < Category2ID.
type CategoryCorrelationBuilder struct{}

func (CategoryCorrelationBuilder) Name() string { return models.ViewCategoryCorrelations }

func (CategoryCorrelationBuilder) Build(ctx context.Context, in *RefreshInput) ([]models.ViewRow, error) {
	totals := in.categoryTotals()
	keys := sortedKeys(totals)
	var rows []models.ViewRow

	for i := 0; i < len(keys); i++ {
		for j := i + 1; j < len(keys); j++ {
			a, b := keys[i], keys[j]
			if a.Currency != b.Currency {
				continue
			}

			var xs, ys []float64
			for p, ba := range totals[a] {
				if bb, ok := totals[b][p]; ok {
					xs = append(xs, ba.total)
					ys = append(ys, bb.total)
				}
			}
			if len(xs) < correlationMinPeriod {
				continue
			}

			rows = append(rows, models.CategoryCorrelationRow{
				Currency:    a.Currency,
				Category1ID: a.CategoryID,
				Category2ID: b.CategoryID,
				Correlation: forecast.Pearson(xs, ys),
				SampleSize:  len(xs),
			})
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

// FilterCorrelations keeps the pairs whose |r| reaches threshold.
func FilterCorrelations(rows []models.CategoryCorrelationRow, threshold float64) []models.CategoryCorrelationRow {
	out := make([]models.CategoryCorrelationRow, 0, len(rows))
	for _, r := range rows {
		if math.Abs(r.Correlation) >= threshold {
			out = append(out, r)
		}
	}
	return out
}
