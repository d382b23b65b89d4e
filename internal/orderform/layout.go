package orderform

import (
	"fmt"
	"strconv"

	"autoservice/internal/doc"
	"autoservice/internal/models"
)

// Visual constants of the order form: Times New Roman 10pt body (run
// sizes are half-points), narrow 0.5cm page margins.
const (
	bodyFont   = "Times New Roman"
	bodySize   = 20
	titleSize  = 36
	headerSize = 28
	pageMargin = 283
	blockGap   = 283
)

var itemColumnWidths = []int{500, 1000, 4000, 750, 750, 1000, 1000, 1000}

// FormData is the validated, derived input of the assembler. Once the
// validation gate has passed, Build never fails: optional fields fall
// back to placeholders or empty strings.
type FormData struct {
	Company models.Company
	Account models.Account
	Client  models.Client
	Auto    models.Auto
	Works   []Line
	Parts   []Line
}

// Build assembles the order-form document plan in its fixed section
// order. The parts section is included only when parts exist.
func Build(data FormData) doc.Document {
	blocks := []doc.Block{
		headerBand(data.Company),
		titleLine(data.Account),
		clientAdminBlock(data.Client),
		autoBlock(data.Auto),
	}
	blocks = append(blocks, reasonSection()...)
	blocks = append(blocks, itemsSection("Перечень выполненных работ:", "Наименование работ, услуг", data.Works)...)
	if len(data.Parts) > 0 {
		blocks = append(blocks, itemsSection("Перечень используемых материалов:", "Наименование товара, запчасти", data.Parts)...)
	}
	blocks = append(blocks, totalsSection(data)...)
	blocks = append(blocks, signatureBlock())

	return doc.Document{
		Font:   bodyFont,
		Size:   bodySize,
		Margin: pageMargin,
		Blocks: blocks,
	}
}

// headerBand shows the company name on the left and its address on the
// right, with no visible borders.
func headerBand(company models.Company) doc.Table {
	return doc.Table{
		ColumnWidths: []int{5000, 5000},
		Rows: []doc.Row{{Cells: []doc.Cell{
			{Paragraphs: []doc.Paragraph{{Runs: []doc.Run{doc.Text(company.ShortName)}}}},
			{Paragraphs: []doc.Paragraph{{Align: doc.AlignRight, Runs: []doc.Run{doc.Text(company.Address)}}}},
		}}},
	}
}

func titleLine(account models.Account) doc.Paragraph {
	return doc.Paragraph{
		Align:  doc.AlignCenter,
		Before: 300,
		After:  300,
		Runs: []doc.Run{{
			Text: fmt.Sprintf("Заказ-наряд № %s от %s", account.LegalNumber, FormatDateRu(account.Date)),
			Bold: true,
			Size: titleSize,
		}},
	}
}

func labelled(label, value string) []doc.Paragraph {
	runs := []doc.Run{doc.Label(label)}
	if value != "" {
		runs = append(runs, doc.Text(value))
	}
	return []doc.Paragraph{{Runs: runs}}
}

// clientAdminBlock pairs the client info stack with the administrative
// sign-off placeholders.
func clientAdminBlock(client models.Client) doc.Table {
	address := ""
	if client.Address != nil {
		address = *client.Address
	}
	return doc.Table{
		Bordered:     true,
		ColumnWidths: []int{4500, 4500},
		Rows: []doc.Row{
			{Cells: []doc.Cell{
				{Paragraphs: labelled("Заказчик: ", client.Name)},
				{Paragraphs: labelled("Заказ принял:", "")},
			}},
			{Cells: []doc.Cell{
				{Paragraphs: labelled("Адрес: ", address)},
				{Paragraphs: labelled("Расчёт:", "")},
			}},
			{Cells: []doc.Cell{
				{Paragraphs: labelled("Телефон: ", client.Phone)},
				{Paragraphs: labelled("Дата закрытия:", "")},
			}},
			{Cells: []doc.Cell{
				{Paragraphs: labelled("Плательщик:", "")},
				{Paragraphs: labelled("Заказ закрыл:", "")},
			}},
		},
	}
}

// autoBlock pairs primary vehicle facts with the secondary placeholders
// filled in by hand at intake.
func autoBlock(auto models.Auto) doc.Table {
	title := auto.Title()
	if title == "" {
		title = "Без названия"
	}
	return doc.Table{
		Bordered:     true,
		ColumnWidths: []int{4500, 4500},
		Rows: []doc.Row{
			{Cells: []doc.Cell{
				{Paragraphs: labelled("Марка и модель ТС: ", title)},
				{Paragraphs: labelled("Гос номер: ", auto.PlateNumber)},
			}},
			{Cells: []doc.Cell{
				{Paragraphs: labelled("VIN: ", auto.VIN)},
				{Paragraphs: labelled("Техпаспорт:", "")},
			}},
			{Cells: []doc.Cell{
				{Paragraphs: labelled("Кузов №:", "")},
				{Paragraphs: labelled("Год выпуска:", "")},
			}},
			{Cells: []doc.Cell{
				{Paragraphs: labelled("Двигатель №:", "")},
				{Paragraphs: labelled("Пробег:", "")},
			}},
			{Cells: []doc.Cell{
				{Paragraphs: labelled("Тип кузова:", "")},
				{Paragraphs: labelled("Цвет:", "")},
			}},
		},
	}
}

// underlineRow is a single invisible cell with only a bottom border: a
// blank line for handwritten entries.
func underlineRow() doc.Table {
	return doc.Table{Rows: []doc.Row{{Cells: []doc.Cell{{Underline: true}}}}}
}

func reasonSection() []doc.Block {
	return []doc.Block{
		doc.Paragraph{Before: blockGap, After: 50, Runs: []doc.Run{doc.Label("Причина обращения:")}},
		underlineRow(),
	}
}

// itemsSection renders a titled 8-column item table followed by the
// right-aligned subtotal with a boxed amount.
func itemsSection(title, descriptionHeader string, lines []Line) []doc.Block {
	headers := []string{"№", "Код", descriptionHeader, "Ед. изм.", "Кол-во", "Цена", "Скидка", "Сумма"}
	headerCells := make([]doc.Cell, 0, len(headers))
	for _, h := range headers {
		headerCells = append(headerCells, doc.Cell{Paragraphs: []doc.Paragraph{{
			Align: doc.AlignCenter,
			Runs:  []doc.Run{{Text: h, Bold: true}},
		}}})
	}

	rows := []doc.Row{{Header: true, Cells: headerCells}}
	for i, line := range lines {
		rows = append(rows, doc.Row{Cells: []doc.Cell{
			centered(strconv.Itoa(i + 1)),
			centered(strconv.FormatUint(uint64(line.Code), 10)),
			{Paragraphs: []doc.Paragraph{{Runs: []doc.Run{doc.Text(line.Description)}}}},
			centered(line.Unit),
			centered(Quantity(line.Quantity)),
			righted(line.Price),
			centered(line.Discount),
			righted(line.Amount),
		}})
	}

	subtotal := doc.Paragraph{
		Align:  doc.AlignRight,
		Before: 200,
		After:  200,
		Runs: []doc.Run{
			doc.Text("Итого: "),
			{Text: Money(Total(lines)), Boxed: true},
		},
	}

	return []doc.Block{
		doc.Paragraph{Before: blockGap, After: 150, Runs: []doc.Run{{Text: title, Bold: true, Size: headerSize}}},
		doc.Table{Bordered: true, ColumnWidths: itemColumnWidths, Rows: rows},
		subtotal,
	}
}

func centered(text string) doc.Cell {
	return doc.Cell{Paragraphs: []doc.Paragraph{{Align: doc.AlignCenter, Runs: []doc.Run{doc.Text(text)}}}}
}

func righted(text string) doc.Cell {
	return doc.Cell{Paragraphs: []doc.Paragraph{{Align: doc.AlignRight, Runs: []doc.Run{doc.Text(text)}}}}
}

func totalsSection(data FormData) []doc.Block {
	total := Money(Total(data.Works) + Total(data.Parts))
	count := PositionCount(data.Works, data.Parts)
	return []doc.Block{
		doc.Paragraph{
			Align: doc.AlignRight,
			Runs: []doc.Run{
				{Text: "Всего к оплате: ", Bold: true},
				{Text: total, Bold: true, Boxed: true},
			},
		},
		doc.Paragraph{
			Before: 100,
			After:  50,
			Runs:   []doc.Run{doc.Text(fmt.Sprintf("Всего наименований %d на сумму %s RUB", count, total))},
		},
		underlineRow(),
		doc.Paragraph{
			Before: 50,
			After:  50,
			Runs: []doc.Run{doc.Text("* Подписывая настоящий заказ-наряд, заказчик подтверждает выполнение работ " +
				"в полном объёме, отсутствие претензий по качеству выполненных работ и использованных материалов, " +
				"а также согласие с указанной стоимостью.")},
		},
	}
}

// signatureBlock reserves the left half of the page for the client's
// signature; the right half stays empty.
func signatureBlock() doc.Table {
	return doc.Table{
		ColumnWidths: []int{5000, 5000},
		Rows: []doc.Row{
			{Cells: []doc.Cell{
				{Paragraphs: []doc.Paragraph{{Before: blockGap, After: 300, Runs: []doc.Run{{Text: "От заказчика:", Bold: true}}}}},
				{},
			}},
			{Cells: []doc.Cell{{Underline: true}, {}}},
			{Cells: []doc.Cell{
				{Paragraphs: []doc.Paragraph{
					{Runs: []doc.Run{doc.Text("фамилия, имя, отчество")}},
					{Align: doc.AlignRight, Runs: []doc.Run{doc.Text("подпись")}},
				}},
				{},
			}},
		},
	}
}
