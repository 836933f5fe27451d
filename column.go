package cui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Accessor extracts a value from a record. The record is an opaque argument
// list; the accessor alone knows its shape.
type Accessor func(record ...any) (any, error)

// Index returns an Accessor for the i-th positional record value.
func Index(i int) Accessor {
	return func(record ...any) (any, error) {
		if i < 0 || i >= len(record) {
			return nil, fmt.Errorf("%w: record has %d values, want index %d", ErrAccessor, len(record), i)
		}
		return record[i], nil
	}
}

// Key returns an Accessor that looks up k in a map[string]any record. The
// map is expected as the first record value.
func Key(k string) Accessor {
	return func(record ...any) (any, error) {
		if len(record) == 0 {
			return nil, fmt.Errorf("%w: empty record, want map with key %q", ErrAccessor, k)
		}
		m, ok := record[0].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: record is %T, want map[string]any for key %q", ErrAccessor, record[0], k)
		}
		v, ok := m[k]
		if !ok {
			return nil, fmt.Errorf("%w: no value for key %q", ErrAccessor, k)
		}
		return v, nil
	}
}

// Const returns an Accessor that ignores the record and yields v.
func Const(v any) Accessor {
	return func(...any) (any, error) { return v, nil }
}

var alignMarkers = strings.NewReplacer(">", "", "^", "")

// Column binds a value accessor to a display slot: a name, a width, a
// format directive, and the alignment derived from that directive. A
// Column is immutable after construction and may be shared freely across
// printers and concurrent render calls.
//
// The format directive is a printf verb optionally carrying an alignment
// marker: ">" right-aligns, "^" centers, anything else is left-aligned.
// With the markers stripped, the remainder is handed to fmt.Sprintf; an
// empty remainder (or an empty directive) formats the value with
// fmt.Sprint. The directive ">%d" therefore means "render with %d,
// right-aligned", and plain ">" means "render as-is, right-aligned".
type Column struct {
	get    Accessor
	width  int
	format string
	verb   string
	align  Alignment
	name   string
}

// NewColumn builds a Column. The effective width is never narrower than
// the display width of name, so a header is never truncated by its own
// column.
func NewColumn(get Accessor, width int, format, name string) *Column {
	c := &Column{
		get:    get,
		width:  max(width, runewidth.StringWidth(name)),
		format: format,
		verb:   alignMarkers.Replace(format),
		name:   name,
	}
	switch {
	case strings.Contains(format, ">"):
		c.align = AlignRight
	case strings.Contains(format, "^"):
		c.align = AlignCenter
	}
	return c
}

// Width returns the effective column width.
func (c *Column) Width() int { return c.width }

// Name returns the display label.
func (c *Column) Name() string { return c.name }

// Align returns the alignment derived from the format directive.
func (c *Column) Align() Alignment { return c.align }

// Value returns the raw accessor result for the record.
func (c *Column) Value(record ...any) (any, error) {
	v, err := c.get(record...)
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", c.name, err)
	}
	return v, nil
}

// Render returns the cell string for the record: the accessor result passed
// through the format directive. The result is not yet sized to the column;
// padding and truncation happen in the printers.
func (c *Column) Render(record ...any) (string, error) {
	v, err := c.Value(record...)
	if err != nil {
		return "", err
	}
	if c.verb == "" {
		return fmt.Sprint(v), nil
	}
	s := fmt.Sprintf(c.verb, v)
	if strings.Contains(s, "%!") {
		return "", fmt.Errorf("%w: directive %q cannot format %T value in column %q", ErrFormatMismatch, c.format, v, c.name)
	}
	return s, nil
}
