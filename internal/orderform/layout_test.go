package orderform

import (
	"strings"
	"testing"

	"autoservice/internal/doc"
	"autoservice/internal/models"
)

func sampleFormData(parts []Line) FormData {
	return FormData{
		Company: models.Company{ID: models.CompanyID, ShortName: "ABC Service", Address: "1 Main St"},
		Account: models.Account{ID: 1, AutoID: 1, LegalNumber: "A-100", Date: "2024-05-01"},
		Client:  models.Client{ID: 1, Name: "J. Doe", Phone: "555-1111"},
		Auto:    models.Auto{ID: 1, ClientID: 1, VIN: "VIN123", PlateNumber: "X777XX"},
		Works:   WorkLines([]models.Work{{ID: 1, Description: "диагностика", Cost: 1000, Hours: 2, Discount: 0.1}}),
		Parts:   parts,
	}
}

// documentText flattens every run of the document for contains-checks.
func documentText(d doc.Document) string {
	var sb strings.Builder
	var addPara func(p doc.Paragraph)
	addPara = func(p doc.Paragraph) {
		for _, r := range p.Runs {
			sb.WriteString(r.Text)
			sb.WriteString("\n")
		}
	}
	for _, b := range d.Blocks {
		switch t := b.(type) {
		case doc.Paragraph:
			addPara(t)
		case doc.Table:
			for _, row := range t.Rows {
				for _, cell := range row.Cells {
					for _, p := range cell.Paragraphs {
						addPara(p)
					}
				}
			}
		}
	}
	return sb.String()
}

func countTables(d doc.Document) int {
	n := 0
	for _, b := range d.Blocks {
		if _, ok := b.(doc.Table); ok {
			n++
		}
	}
	return n
}

func TestBuild_SectionOrderAndContent(t *testing.T) {
	parts := PartLines([]models.Part{{ID: 9, Description: "фильтр", Count: 1, Cost: 200}})
	d := Build(sampleFormData(parts))

	if d.Font != "Times New Roman" || d.Size != 20 || d.Margin != 283 {
		t.Errorf("document defaults = %q/%d/%d", d.Font, d.Size, d.Margin)
	}

	text := documentText(d)
	ordered := []string{
		"ABC Service",
		"Заказ-наряд № A-100 от 1 мая 2024 г.",
		"Заказчик: ",
		"Марка и модель ТС: ",
		"Причина обращения:",
		"Перечень выполненных работ:",
		"ДИАГНОСТИКА",
		"Перечень используемых материалов:",
		"ФИЛЬТР",
		"Всего к оплате: ",
		"Всего наименований 2 на сумму 2000.00 RUB",
		"От заказчика:",
		"подпись",
	}
	last := -1
	for _, want := range ordered {
		idx := strings.Index(text, want)
		if idx < 0 {
			t.Fatalf("document is missing %q", want)
		}
		if idx < last {
			t.Errorf("%q appears out of order", want)
		}
		last = idx
	}

	// header + client/admin + auto + reason underline + works + parts +
	// totals underline + signature
	if got := countTables(d); got != 8 {
		t.Errorf("table count = %d, want 8", got)
	}
}

func TestBuild_NoParts(t *testing.T) {
	d := Build(sampleFormData(nil))

	text := documentText(d)
	if strings.Contains(text, "Перечень используемых материалов:") {
		t.Error("parts section must be omitted when no parts exist")
	}
	// account total equals the works total
	if !strings.Contains(text, "Всего наименований 1 на сумму 1800.00 RUB") {
		t.Errorf("summary line missing or wrong:\n%s", text)
	}
	if got := countTables(d); got != 7 {
		t.Errorf("table count = %d, want 7", got)
	}
}

func TestBuild_AutoTitleFallback(t *testing.T) {
	data := sampleFormData(nil)
	data.Auto.Brand = nil
	data.Auto.Model = nil
	d := Build(data)
	if !strings.Contains(documentText(d), "Без названия") {
		t.Error("empty brand+model must fall back to Без названия")
	}
}
