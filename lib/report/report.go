// Package report prints montecarlo tables and statistics to a terminal.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/aasmall/asciigraph"
	"github.com/aasmall/montecarlo/lib/montecarlo"
	"github.com/mgutz/ansi"
)

// Printer writes aligned tables to w.
type Printer struct {
	w     io.Writer
	color bool
	limit int
}

// NewPrinter returns a Printer. A positive limit truncates long tables.
func NewPrinter(w io.Writer, color bool, limit int) *Printer {
	return &Printer{w: w, color: color, limit: limit}
}

func (p *Printer) heading(s string) string {
	if p.color {
		return ansi.Color(s, "white+b")
	}
	return s
}

// Table prints t under title, one tab-aligned line per record.
func (p *Printer) Table(title string, t montecarlo.Table) error {
	if _, err := fmt.Fprintln(p.w, p.heading(title)); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.Header(), "\t"))
	records := t.Records()
	shown := len(records)
	if p.limit > 0 && shown > p.limit {
		shown = p.limit
	}
	for _, rec := range records[:shown] {
		fmt.Fprintln(tw, strings.Join(rec, "\t"))
	}
	if shown < len(records) {
		fmt.Fprintf(tw, "... %d more\n", len(records)-shown)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(p.w)
	return err
}

// Jackpots prints the observed jackpot count next to the expected one.
func (p *Printer) Jackpots(jackpots, rolls int, probability float64) error {
	rate := 0.0
	if rolls > 0 {
		rate = float64(jackpots) / float64(rolls)
	}
	_, err := fmt.Fprintf(p.w, "%s %d of %d rolls (%.4f%%, expected %.4f%%)\n\n",
		p.heading("Jackpots:"), jackpots, rolls, rate*100, probability*100)
	return err
}

// Fit prints a goodness-of-fit result.
func Fit[T montecarlo.Face](p *Printer, fit montecarlo.Fit[T]) error {
	title := fmt.Sprintf("Die %d: chi2=%.4g df=%d p=%.4g", fit.Die, fit.ChiSquare, fit.DegreesOfFreedom, fit.PValue)
	return p.Table(title, fitTable[T](fit))
}

type fitTable[T montecarlo.Face] montecarlo.Fit[T]

func (f fitTable[T]) Header() []string { return []string{"Face", "Observed", "Expected"} }
func (f fitTable[T]) Len() int         { return len(f.Faces) }
func (f fitTable[T]) Records() [][]string {
	records := make([][]string, len(f.Faces))
	for i, face := range f.Faces {
		records[i] = []string{
			fmt.Sprint(face),
			strconv.FormatFloat(f.Observed[i], 'f', 0, 64),
			strconv.FormatFloat(f.Expected[i], 'f', 1, 64),
		}
	}
	return records
}

// RunningJackpotRate returns, for every roll n, the share of rolls 1..n that
// were jackpots.
func RunningJackpotRate[T montecarlo.Face](w *montecarlo.WideTable[T]) []float64 {
	rates := make([]float64, w.Rolls())
	hits := 0
	for n := 1; n <= w.Rolls(); n++ {
		if isJackpot(w.Roll(n)) {
			hits++
		}
		rates[n-1] = float64(hits) / float64(n)
	}
	return rates
}

func isJackpot[T montecarlo.Face](faces []T) bool {
	if len(faces) == 0 {
		return false
	}
	for _, f := range faces[1:] {
		if f != faces[0] {
			return false
		}
	}
	return true
}

// Plot draws series as an ASCII line chart.
func Plot(series []float64, height, width int, caption string) string {
	if len(series) == 0 {
		return ""
	}
	opts := []asciigraph.Option{asciigraph.Height(height), asciigraph.Caption(caption)}
	if width > 0 && len(series) > width {
		opts = append(opts, asciigraph.Width(width))
	}
	return asciigraph.Plot(series, opts...)
}
