package orderform

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Genitive month names for the document date line.
var monthsRu = [12]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05"}

// FormatDateRu renders an ISO date as "2 января 2006 г.". Unparsable
// input is returned unchanged rather than failing the document.
func FormatDateRu(s string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return fmt.Sprintf("%d %s %d г.", t.Day(), monthsRu[t.Month()-1], t.Year())
		}
	}
	return s
}

// Money renders an amount with exactly two decimal places.
func Money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// DiscountDisplay renders a discount fraction as a whole percentage.
// Zero is always the literal "0%".
func DiscountDisplay(d float64) string {
	if d == 0 {
		return "0%"
	}
	return strconv.Itoa(int(math.Round(d*100))) + "%"
}

// Quantity renders hours or counts without trailing zeros.
func Quantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
