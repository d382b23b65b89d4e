package orderform

import (
	"testing"

	"autoservice/internal/models"
)

func strPtr(s string) *string { return &s }

func TestWorkLines(t *testing.T) {
	works := []models.Work{
		{ID: 7, Description: "замена масла", Cost: 1000, Hours: 2, Discount: 0.1},
		{ID: 6, Description: "", Cost: 500, Hours: 1, Discount: 0},
	}

	lines := WorkLines(works)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	first := lines[0]
	if first.Code != 7 {
		t.Errorf("Code = %d, want 7", first.Code)
	}
	if first.Description != "ЗАМЕНА МАСЛА" {
		t.Errorf("Description = %q, want upper-cased", first.Description)
	}
	if first.Unit != "шт." {
		t.Errorf("Unit = %q, want шт.", first.Unit)
	}
	if first.Price != "1000.00" {
		t.Errorf("Price = %q, want 1000.00", first.Price)
	}
	if first.Discount != "10%" {
		t.Errorf("Discount = %q, want 10%%", first.Discount)
	}
	if first.Amount != "1800.00" {
		t.Errorf("Amount = %q, want 1800.00", first.Amount)
	}

	if lines[1].Discount != "0%" {
		t.Errorf("zero discount = %q, want 0%%", lines[1].Discount)
	}
	if got := Money(Total(lines)); got != "2300.00" {
		t.Errorf("works total = %q, want 2300.00", got)
	}
}

func TestPartLines(t *testing.T) {
	parts := []models.Part{
		{ID: 3, Description: "фильтр", Unit: strPtr("компл."), Count: 2, Cost: 450, Discount: 0},
		{ID: 2, Description: "масло", Unit: nil, Count: 4, Cost: 700, Discount: 0.05},
	}

	lines := PartLines(parts)
	if lines[0].Unit != "компл." {
		t.Errorf("Unit = %q, want компл.", lines[0].Unit)
	}
	if lines[1].Unit != "шт." {
		t.Errorf("nil unit = %q, want fallback шт.", lines[1].Unit)
	}
	// 700 * 4 * 0.95 = 2660
	if lines[1].Amount != "2660.00" {
		t.Errorf("Amount = %q, want 2660.00", lines[1].Amount)
	}
}

func TestTotal_SumsRoundedLineAmounts(t *testing.T) {
	// each line is 0.125, shown as "0.13"; the aggregate must match the
	// printed amounts (0.26), not the raw sum (0.25)
	works := []models.Work{
		{ID: 2, Description: "подкачка", Cost: 0.125, Hours: 1},
		{ID: 1, Description: "подкачка", Cost: 0.125, Hours: 1},
	}

	lines := WorkLines(works)
	for i, l := range lines {
		if l.Amount != "0.13" {
			t.Errorf("line %d amount = %q, want 0.13", i, l.Amount)
		}
	}
	if got := Money(Total(lines)); got != "0.26" {
		t.Errorf("total = %q, want 0.26", got)
	}
}

func TestTotal_Empty(t *testing.T) {
	if got := Money(Total(nil)); got != "0.00" {
		t.Errorf("empty total = %q, want 0.00", got)
	}
}

func TestPositionCount(t *testing.T) {
	works := WorkLines([]models.Work{{Cost: 1, Hours: 1}})
	parts := PartLines(nil)
	if got := PositionCount(works, parts); got != 1 {
		t.Errorf("PositionCount = %d, want 1", got)
	}
	parts = PartLines([]models.Part{{Count: 1}, {Count: 2}})
	if got := PositionCount(works, parts); got != 3 {
		t.Errorf("PositionCount = %d, want 3", got)
	}
}
