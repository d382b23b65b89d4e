package docx

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"autoservice/internal/doc"
)

// documentXML unpacks word/document.xml from the rendered archive.
func documentXML(t *testing.T, buf []byte) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(buf), int64(len(buf)))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		defer rc.Close()
		body, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		return string(body)
	}
	t.Fatal("word/document.xml not found in archive")
	return ""
}

func TestRender_ProducesZipArchive(t *testing.T) {
	d := doc.Document{
		Font:   "Times New Roman",
		Size:   20,
		Margin: 283,
		Blocks: []doc.Block{
			doc.Paragraph{
				Align: doc.AlignCenter,
				Runs:  []doc.Run{{Text: "Заказ-наряд № 1", Bold: true, Size: 36}},
			},
			doc.Table{
				Bordered:     true,
				ColumnWidths: []int{5000, 5000},
				Rows: []doc.Row{
					{Header: true, Cells: []doc.Cell{
						{Paragraphs: []doc.Paragraph{{Runs: []doc.Run{doc.Label("Заказчик: "), doc.Text("Иванов")}}}},
						{Underline: true},
					}},
				},
			},
		},
	}

	buf, err := NewRenderer().Render(d)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(buf) == 0 {
		t.Fatal("Render returned empty buffer")
	}
	// .docx is a zip archive
	if !bytes.HasPrefix(buf, []byte("PK")) {
		t.Errorf("output does not start with zip magic, got % x", buf[:4])
	}
}

func TestRender_HeaderRowsRepeat(t *testing.T) {
	d := doc.Document{
		Font: "Times New Roman",
		Size: 20,
		Blocks: []doc.Block{
			doc.Table{
				Bordered: true,
				Rows: []doc.Row{
					{Header: true, Cells: []doc.Cell{
						{Paragraphs: []doc.Paragraph{{Runs: []doc.Run{doc.Text("№")}}}},
					}},
					{Cells: []doc.Cell{
						{Paragraphs: []doc.Paragraph{{Runs: []doc.Run{doc.Text("1")}}}},
					}},
				},
			},
		},
	}

	buf, err := NewRenderer().Render(d)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	xml := documentXML(t, buf)
	if got := strings.Count(xml, "<w:tblHeader"); got != 1 {
		t.Errorf("tblHeader count = %d, want 1 (header row only)", got)
	}
}
