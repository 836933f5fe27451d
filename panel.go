package cui

import (
	"github.com/mattn/go-runewidth"
)

// FieldKind classifies a panel field: an ordinary label/value row, or a
// full-width section header.
type FieldKind int

const (
	KindRow FieldKind = iota
	KindHeader
)

// Field is one entry of a panel: a Column tagged with how the panel lays
// it out.
type Field struct {
	Column *Column
	Kind   FieldKind
}

// Row tags col as a label/value panel row.
func Row(col *Column) Field { return Field{Column: col} }

// Header tags col as a full-width section header. Its rendered value is
// centered across the whole panel and its name is ignored.
func Header(col *Column) Field { return Field{Column: col, Kind: KindHeader} }

// PanelPrinter renders records as a two-column name/value panel, with
// section-header fields spanning the full panel width. All widths are
// derived once at construction from the whole field list, so narrow and
// wide rows share one consistent layout.
//
// Render methods chain and carry a sticky error: the first failure stops
// all subsequent output, and Err reports it. Lines emitted before the
// failure stand.
type PanelPrinter struct {
	sink       Sink
	fields     []Field
	labelWidth int
	valueWidth int
	fullWidth  int
	header     string
	rule       string
	err        error
}

// NewPanelPrinter builds a panel over an ordered field list.
func NewPanelPrinter(sink Sink, fields ...Field) *PanelPrinter {
	var titleWidth, labelWidth, valueWidth int
	for _, f := range fields {
		if f.Kind == KindHeader {
			titleWidth = max(titleWidth, f.Column.Width())
		} else {
			labelWidth = max(labelWidth, runewidth.StringWidth(f.Column.Name()))
			valueWidth = max(valueWidth, f.Column.Width())
		}
	}
	fullWidth := max(titleWidth, labelWidth+sepWidth+valueWidth)
	if fullWidth > labelWidth+sepWidth+valueWidth {
		// A wider section header stretches the value column so body rows
		// and header rows share the same outer width.
		valueWidth = fullWidth - labelWidth - sepWidth
	}
	p := &PanelPrinter{
		sink:       sink,
		fields:     fields,
		labelWidth: labelWidth,
		valueWidth: valueWidth,
		fullWidth:  fullWidth,
	}
	p.header = p.pair("Name", "Value", AlignCenter)
	p.rule = ruleLine([]int{labelWidth, valueWidth})
	return p
}

// pair lays out one label/value body line. Labels are right-aligned except
// in centered rows, matching the value alignment there.
func (p *PanelPrinter) pair(label, value string, align Alignment) string {
	labelAlign := AlignRight
	if align == AlignCenter {
		labelAlign = AlignCenter
	}
	return joinCells([]string{
		alignCell(label, p.labelWidth, labelAlign),
		alignCell(value, p.valueWidth, align),
	})
}

// Err returns the first error encountered by a render call, if any.
func (p *PanelPrinter) Err() error { return p.err }

// Header emits the centered "Name"/"Value" caption with emphasis.
func (p *PanelPrinter) Header() *PanelPrinter {
	if p.err == nil {
		p.err = p.sink.Print(p.header, true)
	}
	return p
}

// Separator emits the horizontal rule.
func (p *PanelPrinter) Separator() *PanelPrinter {
	if p.err == nil {
		p.err = p.sink.Print(p.rule, false)
	}
	return p
}

// Data renders the record through every field in order: section headers as
// emphasized full-width lines, rows as label/value lines. Each field's
// value is first sized to that field's own width — right-aligned values
// keep their rightmost characters, so numeric tails survive overflow —
// and then padded into the shared panel templates.
func (p *PanelPrinter) Data(record ...any) *PanelPrinter {
	for _, f := range p.fields {
		if p.err != nil {
			break
		}
		c := f.Column
		s, err := c.Render(record...)
		if err != nil {
			p.err = err
			break
		}
		value := formatCell(s, c.Width(), c.Align())
		if f.Kind == KindHeader {
			line := joinCells([]string{alignCell(value, p.fullWidth, AlignCenter)})
			p.err = p.sink.Print(line, true)
			continue
		}
		p.err = p.sink.Print(p.pair(c.Name(), value, c.Align()), false)
	}
	return p
}
