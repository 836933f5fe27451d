package cui

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Plan is a declarative grid layout: the width/format plan for a table or
// panel, typically loaded from YAML. Plan columns read their values from
// map[string]any records by key, so a caller can pair one plan with many
// already-extracted record maps.
type Plan struct {
	Columns []PlanColumn `yaml:"columns"`
}

// PlanColumn describes one column or panel field.
type PlanColumn struct {
	// Name is the display label. Defaults to Key.
	Name string `yaml:"name,omitempty"`
	// Key is the record map key the value is read from. Defaults to Name.
	Key string `yaml:"key,omitempty"`
	// Width is the declared display width.
	Width int `yaml:"width,omitempty"`
	// Format is the column's format directive.
	Format string `yaml:"format,omitempty"`
	// Section marks a full-width section header in panel layouts. Section
	// entries with a Value (or, failing that, a Name) render that fixed
	// text instead of reading the record.
	Section bool `yaml:"section,omitempty"`
	// Value is a fixed cell value, bypassing the record.
	Value string `yaml:"value,omitempty"`
}

// ParsePlan parses a YAML plan document.
func ParsePlan(data []byte) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadPlan reads a YAML plan from r.
func LoadPlan(r io.Reader) (*Plan, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParsePlan(data)
}

func (p *Plan) validate() error {
	if len(p.Columns) == 0 {
		return fmt.Errorf("%w: no columns", ErrInvalidPlan)
	}
	for i, c := range p.Columns {
		if c.Width < 0 {
			return fmt.Errorf("%w: column %d: negative width %d", ErrInvalidPlan, i, c.Width)
		}
		if c.Name == "" && c.Key == "" && c.Value == "" {
			return fmt.Errorf("%w: column %d: need a name, key, or value", ErrInvalidPlan, i)
		}
	}
	return nil
}

func (c PlanColumn) column() *Column {
	get := c.accessor()
	name := c.Name
	if name == "" && !c.Section {
		name = c.Key
	}
	return NewColumn(get, c.Width, c.Format, name)
}

func (c PlanColumn) accessor() Accessor {
	switch {
	case c.Value != "":
		return Const(c.Value)
	case c.Section && c.Key == "":
		return Const(c.Name)
	case c.Key != "":
		return Key(c.Key)
	default:
		return Key(c.Name)
	}
}

// RowPrinter builds a grid printer from the plan. Section entries have no
// meaning in a grid and are skipped.
func (p *Plan) RowPrinter(sink Sink) *RowPrinter {
	var columns []*Column
	for _, c := range p.Columns {
		if c.Section {
			continue
		}
		columns = append(columns, c.column())
	}
	return NewRowPrinter(sink, columns...)
}

// PanelPrinter builds a panel printer from the plan, mapping section
// entries to full-width header fields.
func (p *Plan) PanelPrinter(sink Sink) *PanelPrinter {
	fields := make([]Field, len(p.Columns))
	for i, c := range p.Columns {
		if c.Section {
			fields[i] = Header(c.column())
		} else {
			fields[i] = Row(c.column())
		}
	}
	return NewPanelPrinter(sink, fields...)
}
