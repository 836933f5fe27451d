package cui

import (
	"fmt"
	"iter"
)

// RowPrinter renders records as rows of a fixed-width grid. The header
// line, the separator line, and the per-column layout are computed once at
// construction; render calls reuse them, so a printer is safe to share
// across concurrent read-only renderers.
type RowPrinter struct {
	sink    Sink
	columns []*Column
	header  string
	rule    string
}

// NewRowPrinter builds a printer over an ordered column set.
func NewRowPrinter(sink Sink, columns ...*Column) *RowPrinter {
	cells := make([]string, len(columns))
	widths := make([]int, len(columns))
	for i, c := range columns {
		cells[i] = formatCell(c.Name(), c.Width(), c.Align())
		widths[i] = c.Width()
	}
	return &RowPrinter{
		sink:    sink,
		columns: columns,
		header:  joinCells(cells),
		rule:    ruleLine(widths),
	}
}

// Columns returns the configured column count.
func (p *RowPrinter) Columns() int { return len(p.columns) }

// Header emits the header line with emphasis.
func (p *RowPrinter) Header() error {
	return p.sink.Print(p.header, true)
}

// Separator emits the horizontal rule.
func (p *RowPrinter) Separator() error {
	return p.sink.Print(p.rule, false)
}

// Data renders one record as a data row. Every cell is formatted before
// anything is emitted, so an accessor or format error never leaves a
// partial row behind.
func (p *RowPrinter) Data(record ...any) error {
	cells := make([]string, len(p.columns))
	for i, c := range p.columns {
		s, err := c.Render(record...)
		if err != nil {
			return err
		}
		cells[i] = formatCell(s, c.Width(), c.Align())
	}
	return p.sink.Print(joinCells(cells), false)
}

// DataSeq renders each record from seq as a data row, stopping at the
// first error.
func (p *RowPrinter) DataSeq(seq iter.Seq[[]any]) error {
	var renderErr error
	seq(func(record []any) bool {
		if err := p.Data(record...); err != nil {
			renderErr = err
			return false
		}
		return true
	})
	return renderErr
}

// DataChan renders records received from ch. It is a thin wrapper around
// [RowPrinter.DataSeq].
func (p *RowPrinter) DataChan(ch <-chan []any) error {
	return p.DataSeq(func(yield func([]any) bool) {
		for record := range ch {
			if !yield(record) {
				return
			}
		}
	})
}

// Spanned renders a row in which span contiguous columns starting at start
// merge into a single slot. The merged slot absorbs the cell separators
// between the spanned columns, so its width is the sum of their widths plus
// sepWidth per absorbed separator and the total row width is unchanged.
// values supplies one value per visual slot, left to right. Spanned values
// are padded but never truncated.
func (p *RowPrinter) Spanned(start, span int, values []any) error {
	if start < 0 || span < 1 || start+span > len(p.columns) {
		return fmt.Errorf("%w: span of %d columns at %d in a %d-column row", ErrLayout, span, start, len(p.columns))
	}
	slots := len(p.columns) - span + 1
	if len(values) != slots {
		return fmt.Errorf("%w: %d values for %d slots", ErrLayout, len(values), slots)
	}
	cells := make([]string, 0, slots)
	merged := 0
	for i, c := range p.columns {
		switch {
		case i >= start && i < start+span-1:
			merged += c.Width() + sepWidth
		default:
			cells = append(cells, alignCell(fmt.Sprint(values[len(cells)]), c.Width()+merged, AlignLeft))
			merged = 0
		}
	}
	return p.sink.Print(joinCells(cells), false)
}

// Span is one group of a grouped row: Columns contiguous grid columns
// rendering a single Value.
type Span struct {
	Columns int
	Value   any
}

// Row renders a row partitioned left-to-right into groups. The group
// column counts must sum exactly to the printer's column count; anything
// else is rejected rather than rendered misaligned.
func (p *RowPrinter) Row(groups []Span) error {
	total := 0
	for _, g := range groups {
		if g.Columns < 1 {
			return fmt.Errorf("%w: group of %d columns", ErrLayout, g.Columns)
		}
		total += g.Columns
	}
	if total != len(p.columns) {
		return fmt.Errorf("%w: groups cover %d of %d columns", ErrLayout, total, len(p.columns))
	}
	cells := make([]string, len(groups))
	idx := 0
	for gi, g := range groups {
		width := 0
		for range g.Columns {
			width += p.columns[idx].Width() + sepWidth
			idx++
		}
		cells[gi] = alignCell(fmt.Sprint(g.Value), width-sepWidth, AlignLeft)
	}
	return p.sink.Print(joinCells(cells), false)
}
