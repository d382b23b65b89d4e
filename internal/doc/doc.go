// Package doc describes a paginated document as plain data: a flat list
// of paragraphs and tables with style attributes. Builders assemble the
// tree, a separate serializer turns it into the binary file format.
package doc

type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Run is a styled fragment of text within a paragraph. Size is in
// half-points; zero means the document default. Boxed draws a single
// thin border around the fragment.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	Boxed  bool
	Size   int
}

// Paragraph is a block of runs. Before and After are extra vertical
// spacing in twips.
type Paragraph struct {
	Runs   []Run
	Align  Align
	Before int
	After  int
}

// Cell holds paragraphs. Width is in twips, zero means automatic.
// Underline draws only the bottom border of the cell, which renders a
// blank line for handwritten entries.
type Cell struct {
	Width      int
	Underline  bool
	Paragraphs []Paragraph
}

type Row struct {
	Header bool
	Cells  []Cell
}

// Table is a grid of cells. Bordered switches all grid lines on; a
// non-bordered table is invisible layout scaffolding.
type Table struct {
	Bordered     bool
	ColumnWidths []int
	Rows         []Row
}

// Block is either a Paragraph or a Table.
type Block interface{ isBlock() }

func (Paragraph) isBlock() {}
func (Table) isBlock()     {}

// Document is a single-section page plan. Font is the body font family,
// Size the body font size in half-points, Margin the page margin in twips.
type Document struct {
	Font   string
	Size   int
	Margin int
	Blocks []Block
}

// Text is a shorthand for an unstyled run.
func Text(s string) Run { return Run{Text: s} }

// Label is a shorthand for an italic run, used for form captions.
func Label(s string) Run { return Run{Text: s, Italic: true} }
