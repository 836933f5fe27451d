package cui

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Sink receives fully laid-out lines. The emphasize flag is a rendering
// hint (reverse video on capable terminals); sinks are free to ignore it.
// Printers never write partial lines to a Sink.
type Sink interface {
	Print(line string, emphasize bool) error
}

// Output is the terminal Sink. Emphasis renders as reverse video when the
// underlying writer supports styling.
type Output struct {
	out *termenv.Output
}

// NewOutput returns an Output writing to w. The color profile is detected
// from the environment; writers that are not a terminal get the unstyled
// profile, so piped and redirected output stays free of escape codes.
func NewOutput(w io.Writer) *Output {
	var opts []termenv.OutputOption
	if f, ok := w.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &Output{out: termenv.NewOutput(w, opts...)}
}

// NewPlainOutput returns an Output that never styles, regardless of the
// writer or environment.
func NewPlainOutput(w io.Writer) *Output {
	return &Output{out: termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))}
}

// Print writes one line followed by a newline.
func (o *Output) Print(line string, emphasize bool) error {
	if emphasize {
		line = o.out.String(line).Reverse().String()
	}
	_, err := fmt.Fprintln(o.out, line)
	return err
}
