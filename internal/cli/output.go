package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/advent/puzzle"
)

// printer renders results, colouring them only when w is a colour terminal.
type printer struct {
	w   io.Writer
	out *termenv.Output
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w, out: termenv.NewOutput(w)}
}

func (p *printer) header(key puzzle.Key) {
	s := p.out.String(key.String()).Bold().Foreground(p.out.Color("#818cf8"))
	fmt.Fprintln(p.w, s)
}

func (p *printer) answer(part int, v any, took time.Duration) {
	val := p.out.String(fmt.Sprint(v)).Foreground(p.out.Color("#fbbf24"))
	dur := p.out.String(took.Round(time.Microsecond).String()).Faint()
	if s, ok := v.(string); ok && strings.Contains(s, "\n") {
		// rendered pictures go on their own lines
		fmt.Fprintf(p.w, "  part %d: (%s)\n%s\n", part, dur, val)
		return
	}
	fmt.Fprintf(p.w, "  part %d: %s (%s)\n", part, val, dur)
}

func (p *printer) failure(err error) {
	fmt.Fprintf(p.w, "  %s %v\n", p.out.String("error:").Foreground(p.out.Color("#fb7185")), err)
}
