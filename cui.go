package cui

import (
	"errors"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Sentinel errors for programmatic error handling.
var (
	ErrAccessor       = errors.New("accessor failed")
	ErrFormatMismatch = errors.New("format mismatch")
	ErrLayout         = errors.New("layout mismatch")
	ErrInvalidPlan    = errors.New("invalid plan")
)

// Alignment controls cell text alignment within a column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Grid geometry. The spanned/grouped width math assumes cells are joined
// by cellSep; changing one without the other misaligns rows.
const (
	cellSep  = " | "
	sepWidth = len(cellSep)

	leftEdge  = "| "
	rightEdge = " |"
)

// joinCells assembles fully formatted cells into one grid line.
func joinCells(cells []string) string {
	return leftEdge + strings.Join(cells, cellSep) + rightEdge
}

// ruleLine builds a horizontal rule matching a row of the given cell widths.
func ruleLine(widths []int) string {
	dashes := make([]string, len(widths))
	for i, w := range widths {
		dashes[i] = strings.Repeat("-", w)
	}
	return "+-" + strings.Join(dashes, "-+-") + "-+"
}

// formatCell truncates s to exactly width display cells and pads it per
// align. Right-aligned cells keep the rightmost characters so trailing
// digits survive overflow; left and center keep the leftmost.
func formatCell(s string, width int, align Alignment) string {
	if sw := runewidth.StringWidth(s); sw > width {
		if align == AlignRight {
			s = runewidth.TruncateLeft(s, sw-width, "")
		} else {
			s = runewidth.Truncate(s, width, "")
		}
	}
	return alignCell(s, width, align)
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
