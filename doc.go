// Package cui renders fixed-width text grids: bordered tables and
// two-column name/value panels.
//
// The building block is a [Column]: a value accessor plus a name, a display
// width, and a format directive. Columns are immutable and shared between
// the two printer types. The effective width of a column is never narrower
// than its name, so headers are never truncated by their own column.
//
// # Columns
//
// Build a column from any [Accessor], or use the helpers [Index], [Key],
// and [Const]:
//
//	id := cui.NewColumn(cui.Index(0), 6, ">%d", "ID")
//	st := cui.NewColumn(cui.Key("status"), 10, "", "Status")
//
// The format directive is a printf verb with an optional alignment marker:
// ">" right-aligns, "^" centers, otherwise the cell is left-aligned. An
// empty directive renders the value as-is, left-aligned.
//
// # Grids
//
// [RowPrinter] renders records as rows of a bordered grid. The header,
// separator, and cell layout are computed once at construction:
//
//	p := cui.NewRowPrinter(cui.NewOutput(os.Stdout), id, st)
//	p.Separator()
//	p.Header()
//	p.Separator()
//	p.Data(7, "ok")
//	p.Separator()
//
// [RowPrinter.Spanned] and [RowPrinter.Row] merge contiguous columns into
// wider slots for captions and totals while the rest of the row keeps the
// grid alignment. [RowPrinter.DataSeq] and [RowPrinter.DataChan] stream
// records from an iterator or channel.
//
// # Panels
//
// [PanelPrinter] renders one record as label/value lines, optionally
// interleaved with full-width section headers. Fields are [Column] values
// tagged by [Row] or [Header]; widths are derived from the whole field
// list so every line shares one outer width. Panel render calls chain and
// carry a sticky error:
//
//	err := cui.NewPanelPrinter(sink,
//		cui.Header(title),
//		cui.Row(balance),
//		cui.Row(nonce),
//	).Separator().Data(acct).Separator().Err()
//
// Right-aligned panel values that overflow their width keep their rightmost
// characters, so the tail of a number is never cut; left and centered
// values keep their leftmost characters.
//
// # Sinks
//
// Printers hand finished lines to a [Sink] together with an emphasis flag.
// [NewOutput] writes to a terminal, rendering emphasis as reverse video and
// dropping all styling when the writer is not a terminal; [NewPlainOutput]
// never styles.
//
// # Plans
//
// A [Plan] is a YAML description of a grid or panel layout. Plan columns
// read their values from map[string]any records:
//
//	plan, err := cui.ParsePlan(data)
//	plan.RowPrinter(sink).Data(map[string]any{"status": "ok"})
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrAccessor] — a built-in accessor failed against a record
//   - [ErrFormatMismatch] — a format directive rejected the value
//   - [ErrLayout] — span or group sizes don't match the column count
//   - [ErrInvalidPlan] — malformed layout plan
package cui
