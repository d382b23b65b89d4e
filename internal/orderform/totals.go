package orderform

import (
	"math"
	"strings"

	"autoservice/internal/models"
)

// DefaultUnit is used when a part carries no unit of measure.
const DefaultUnit = "шт."

// Line is one display row of the works or parts table: preformatted
// strings for the document plus the cent-rounded total for aggregate
// math. Aggregates sum the rounded totals so "Итого" always equals the
// sum of the printed line amounts.
type Line struct {
	Code        uint
	Description string
	Unit        string
	Quantity    float64
	Price       string
	Discount    string
	Amount      string
	Total       float64
}

// WorkLines derives display rows from work records. Descriptions are
// upper-cased, money fields carry two decimals.
func WorkLines(works []models.Work) []Line {
	lines := make([]Line, 0, len(works))
	for _, w := range works {
		total := roundCents(w.LineTotal())
		lines = append(lines, Line{
			Code:        w.ID,
			Description: strings.ToUpper(w.Description),
			Unit:        DefaultUnit,
			Quantity:    w.Hours,
			Price:       Money(w.Cost),
			Discount:    DiscountDisplay(w.Discount),
			Amount:      Money(total),
			Total:       total,
		})
	}
	return lines
}

// PartLines derives display rows from part records.
func PartLines(parts []models.Part) []Line {
	lines := make([]Line, 0, len(parts))
	for _, p := range parts {
		unit := DefaultUnit
		if p.Unit != nil && *p.Unit != "" {
			unit = *p.Unit
		}
		total := roundCents(p.LineTotal())
		lines = append(lines, Line{
			Code:        p.ID,
			Description: strings.ToUpper(p.Description),
			Unit:        unit,
			Quantity:    p.Count,
			Price:       Money(p.Cost),
			Discount:    DiscountDisplay(p.Discount),
			Amount:      Money(total),
			Total:       total,
		})
	}
	return lines
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// Total sums the rounded line totals. An empty slice yields 0, which
// renders as "0.00" rather than being treated as an error.
func Total(lines []Line) float64 {
	var sum float64
	for _, l := range lines {
		sum += l.Total
	}
	return sum
}

// PositionCount is the number of billed positions across both tables.
func PositionCount(works, parts []Line) int {
	return len(works) + len(parts)
}
