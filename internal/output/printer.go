package output

import (
	"fmt"
	"io"

	"github.com/madhih2000/OEE-Dashboard/internal/metrics"
	"github.com/madhih2000/OEE-Dashboard/pkg/model"
)

type ansi string

const (
	ansiReset = ansi("\033[0m")
	ansiBold  = ansi("\033[1m")
	ansiDim   = ansi("\033[2m")
	ansiRed   = ansi("\033[31m")
	ansiGreen = ansi("\033[32m")
	ansiBlue  = ansi("\033[34m")
	ansiCyan  = ansi("\033[36m")
)

// span is text that is already terminal-safe and may carry our own escape
// codes. The printer writes it unchanged.
type span string

// Printer writes dashboard text to an io.Writer. Record-derived values are
// sanitized on the way out; styling is only applied through spans.
type Printer struct {
	w     io.Writer
	color bool
}

func NewPrinter(w io.Writer, colorEnabled bool) Printer {
	return Printer{w: w, color: colorEnabled}
}

// styled sanitizes s and wraps it in a when color is on.
func (p Printer) styled(a ansi, s string) span {
	if !p.color {
		return span(Sanitize(s))
	}
	return span(string(a) + Sanitize(s) + string(ansiReset))
}

// status colors a status by its badge.
func (p Printer) status(s model.Status, badge model.BadgeColor) span {
	if badge == model.BadgeSuccess {
		return p.styled(ansiGreen, string(s))
	}
	return p.styled(ansiRed, string(s))
}

func (p Printer) bar(a ansi, pct float64, width int) span {
	return p.styled(a, Bar(pct, width))
}

func (p Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, printArgs(args)...)
}

func (p Printer) Println(args ...any) {
	fmt.Fprintln(p.w, printArgs(args)...)
}

func printArgs(args []any) []any {
	if len(args) == 0 {
		return nil
	}
	out := make([]any, len(args))
	for i, a := range args {
		switch v := a.(type) {
		case span:
			out[i] = string(v)
		case string:
			out[i] = Sanitize(v)
		case model.Status:
			out[i] = Sanitize(string(v))
		case float64:
			out[i] = metrics.FormatNumber(v)
		case error:
			out[i] = Sanitize(v.Error())
		case fmt.Stringer:
			out[i] = Sanitize(v.String())
		default:
			out[i] = a
		}
	}
	return out
}
