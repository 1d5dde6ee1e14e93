package services

import (
	"math/rand"
	"sort"
	"strings"
	"time"

	"ledger-analytics/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ledgerGenerator struct {
	rng *rand.Rand
}

const (
	hoursInDay      = 24
	biWeeklyDays    = 14
	salaryHour      = 9
	billPaymentHour = 14
	purchaseStart   = 6
	purchaseEnd     = 24
)

// amountRanges maps a lower-case keyword of a category name to its typical
// expense range. The first keyword found in the name wins.
var amountRanges = []struct {
	keyword string
	min     float64
	max     float64
}{
	{"grocer", 15, 250},
	{"restaurant", 8, 120},
	{"dining", 8, 120},
	{"food", 10, 150},
	{"transport", 10, 80},
	{"shopping", 25, 450},
	{"entertainment", 10, 60},
	{"health", 20, 300},
	{"travel", 100, 800},
	{"education", 30, 200},
}

// NewLedgerGenerator creates a synthetic ledger generator. A zero seed uses
// the current time.
func NewLedgerGenerator(seed int64) LedgerGeneratorInterface {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &ledgerGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Generate produces bi-weekly salary income, monthly housing bills and daily
// purchases across the leaf categories between start and end. Entries are
// returned in ascending date order.
func (g *ledgerGenerator) Generate(categories []models.Category, start, end time.Time, currency string) []models.LedgerEntry {
	if !start.Before(end) {
		return nil
	}
	currency = strings.ToUpper(currency)

	var income, housing *models.Category
	var spending []models.Category
	for _, c := range leafCategories(categories) {
		switch name := strings.ToLower(c.Name); {
		case income == nil && (strings.Contains(name, "income") || strings.Contains(name, "salary")):
			income = &c
		case housing == nil && (strings.Contains(name, "housing") || strings.Contains(name, "rent")):
			housing = &c
		default:
			spending = append(spending, c)
		}
	}

	var entries []models.LedgerEntry
	entries = append(entries, g.salaryEntries(income, start, end, currency)...)
	entries = append(entries, g.billEntries(housing, start, end, currency)...)
	entries = append(entries, g.dailyPurchases(spending, start, end, currency)...)

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].OccurredAt.Before(entries[j].OccurredAt)
	})
	return entries
}

// leafCategories returns categories that are nobody's parent.
func leafCategories(categories []models.Category) []models.Category {
	parents := make(map[uuid.UUID]bool)
	for _, c := range categories {
		if c.HasParent() {
			parents[*c.ParentID] = true
		}
	}
	leaves := make([]models.Category, 0, len(categories))
	for _, c := range categories {
		if !parents[c.ID] {
			leaves = append(leaves, c)
		}
	}
	return leaves
}

func (g *ledgerGenerator) salaryEntries(category *models.Category, start, end time.Time, currency string) []models.LedgerEntry {
	salaryAmounts := []float64{2500, 3000, 3500, 4000, 4500}
	base := salaryAmounts[g.rng.Intn(len(salaryAmounts))]

	var entries []models.LedgerEntry
	for date := start.Add(biWeeklyDays * hoursInDay * time.Hour); !date.After(end); date = date.Add(biWeeklyDays * hoursInDay * time.Hour) {
		at := time.Date(date.Year(), date.Month(), date.Day(), salaryHour, 0, 0, 0, time.UTC)
		entries = append(entries, newEntry(at, decimal.NewFromFloat(base), currency, category, "Direct Deposit - Salary Payment"))
	}
	return entries
}

func (g *ledgerGenerator) billEntries(category *models.Category, start, end time.Time, currency string) []models.LedgerEntry {
	rent := decimal.NewFromFloat(800 + g.rng.Float64()*1200).Round(2)

	var entries []models.LedgerEntry
	for month := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC); !month.After(end); month = month.AddDate(0, 1, 0) {
		billDate := time.Date(month.Year(), month.Month(), 1+g.rng.Intn(28), billPaymentHour, 0, 0, 0, time.UTC)
		if billDate.Before(start) || billDate.After(end) {
			continue
		}
		entries = append(entries, newEntry(billDate, rent.Neg(), currency, category, "Rent payment"))
	}
	return entries
}

func (g *ledgerGenerator) dailyPurchases(categories []models.Category, start, end time.Time, currency string) []models.LedgerEntry {
	if len(categories) == 0 {
		return nil
	}

	var entries []models.LedgerEntry
	for day := start; day.Before(end); day = day.Add(hoursInDay * time.Hour) {
		purchases := g.rng.Intn(3)
		for i := 0; i < purchases; i++ {
			c := categories[g.rng.Intn(len(categories))]
			at := g.timestamp(day)
			if at.After(end) {
				continue
			}
			amount := g.amount(c.Name)
			entries = append(entries, newEntry(at, amount.Neg(), currency, &c, "Purchase - "+c.Name))
		}
	}
	return entries
}

func (g *ledgerGenerator) amount(categoryName string) decimal.Decimal {
	minValue, maxValue := 10.0, 100.0
	name := strings.ToLower(categoryName)
	for _, r := range amountRanges {
		if strings.Contains(name, r.keyword) {
			minValue, maxValue = r.min, r.max
			break
		}
	}
	return decimal.NewFromFloat(minValue + g.rng.Float64()*(maxValue-minValue)).Round(2)
}

func (g *ledgerGenerator) timestamp(day time.Time) time.Time {
	hour := purchaseStart + g.rng.Intn(purchaseEnd-purchaseStart)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, g.rng.Intn(60), g.rng.Intn(60), 0, time.UTC)
}

func newEntry(at time.Time, amount decimal.Decimal, currency string, category *models.Category, description string) models.LedgerEntry {
	entry := models.LedgerEntry{
		ID:          uuid.New(),
		OccurredAt:  at,
		Amount:      amount,
		Currency:    currency,
		Description: description,
		CreatedAt:   at,
	}
	if category != nil {
		id := category.ID
		entry.CategoryID = &id
	}
	return entry
}
