// Package docx serializes a doc.Document into the OOXML word-processing
// format using baliance.com/gooxml.
package docx

import (
	"bytes"

	"baliance.com/gooxml"
	"baliance.com/gooxml/color"
	"baliance.com/gooxml/document"
	"baliance.com/gooxml/measurement"
	"baliance.com/gooxml/schema/soo/wml"

	"autoservice/internal/doc"
)

const borderWidth = 0.5 * measurement.Point

type Renderer struct{}

func NewRenderer() *Renderer { return &Renderer{} }

// Render serializes the document plan into .docx bytes.
func (r *Renderer) Render(d doc.Document) ([]byte, error) {
	out := document.New()

	if d.Margin > 0 {
		m := measurement.Distance(d.Margin) * measurement.Twips
		out.BodySection().SetPageMargins(m, m, m, m, m, m, 0)
	}

	for _, block := range d.Blocks {
		switch b := block.(type) {
		case doc.Paragraph:
			writeParagraph(out.AddParagraph(), b, d)
		case doc.Table:
			writeTable(out.AddTable(), b, d)
		}
	}

	var buf bytes.Buffer
	if err := out.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeParagraph(p document.Paragraph, src doc.Paragraph, d doc.Document) {
	switch src.Align {
	case doc.AlignCenter:
		p.Properties().SetAlignment(wml.ST_JcCenter)
	case doc.AlignRight:
		p.Properties().SetAlignment(wml.ST_JcRight)
	default:
		p.Properties().SetAlignment(wml.ST_JcLeft)
	}
	if src.Before > 0 {
		p.Properties().Spacing().SetBefore(measurement.Distance(src.Before) * measurement.Twips)
	}
	if src.After > 0 {
		p.Properties().Spacing().SetAfter(measurement.Distance(src.After) * measurement.Twips)
	}

	for _, run := range src.Runs {
		r := p.AddRun()
		props := r.Properties()
		props.SetFontFamily(d.Font)
		size := run.Size
		if size == 0 {
			size = d.Size
		}
		// run sizes are carried in half-points
		props.SetSize(measurement.Distance(size) / 2 * measurement.Point)
		if run.Bold {
			props.SetBold(true)
		}
		if run.Italic {
			props.SetItalic(true)
		}
		if run.Boxed {
			boxRun(props)
		}
		r.AddText(run.Text)
	}
}

// boxRun draws a single thin border around a run. gooxml does not expose
// run borders, so the raw CT_RPr is populated directly.
func boxRun(props document.RunProperties) {
	bdr := wml.NewCT_Border()
	bdr.ValAttr = wml.ST_BorderSingle
	bdr.SzAttr = gooxml.Uint64(4)
	bdr.SpaceAttr = gooxml.Uint64(1)
	props.X().Bdr = bdr
}

// markHeaderRow flags the row as a table header so it repeats when the
// table breaks across pages. gooxml does not expose tblHeader, so the
// raw CT_TrPr is populated directly.
func markHeaderRow(r document.Row) {
	trPr := r.X().TrPr
	if trPr == nil {
		trPr = wml.NewCT_TrPr()
		r.X().TrPr = trPr
	}
	trPr.TblHeader = append(trPr.TblHeader, wml.NewCT_OnOff())
}

func writeTable(t document.Table, src doc.Table, d doc.Document) {
	t.Properties().SetWidthPercent(100)
	if src.Bordered {
		t.Properties().Borders().SetAll(wml.ST_BorderSingle, color.Black, borderWidth)
	}

	for _, row := range src.Rows {
		r := t.AddRow()
		if row.Header {
			markHeaderRow(r)
		}
		for i, cell := range row.Cells {
			c := r.AddCell()
			width := cell.Width
			if width == 0 && i < len(src.ColumnWidths) {
				width = src.ColumnWidths[i]
			}
			if width > 0 {
				c.Properties().SetWidth(measurement.Distance(width) * measurement.Twips)
			}
			if cell.Underline {
				c.Properties().Borders().SetBottom(wml.ST_BorderSingle, color.Black, borderWidth)
			}
			if len(cell.Paragraphs) == 0 {
				// a cell must contain at least one paragraph
				c.AddParagraph()
				continue
			}
			for _, p := range cell.Paragraphs {
				writeParagraph(c.AddParagraph(), p, d)
			}
		}
	}
}
