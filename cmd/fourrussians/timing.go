// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/markkurossi/tabulate"
)

// Timing records the phases of one run and renders them as a table.
type Timing struct {
	Start   time.Time
	Samples []*Sample
}

// Sample is one completed phase.
type Sample struct {
	Label string
	Start time.Time
	End   time.Time
	Info  string
}

// NewTiming starts a new timing report.
func NewTiming() *Timing {
	return &Timing{
		Start: time.Now(),
	}
}

// Sample closes the current phase under label. The phase starts where the
// previous one ended.
func (t *Timing) Sample(label, info string) *Sample {
	start := t.Start
	if len(t.Samples) > 0 {
		start = t.Samples[len(t.Samples)-1].End
	}
	s := &Sample{
		Label: label,
		Start: start,
		End:   time.Now(),
		Info:  info,
	}
	t.Samples = append(t.Samples, s)
	return s
}

// Print writes the report to w.
func (t *Timing) Print(w io.Writer) {
	if len(t.Samples) == 0 {
		return
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Op").SetAlign(tabulate.ML)
	tab.Header("Time").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)
	tab.Header("Info").SetAlign(tabulate.ML)

	total := t.Samples[len(t.Samples)-1].End.Sub(t.Start)
	for _, s := range t.Samples {
		row := tab.Row()
		row.Column(s.Label)

		d := s.End.Sub(s.Start)
		row.Column(d.String())
		if total > 0 {
			row.Column(fmt.Sprintf("%.2f%%", float64(d)/float64(total)*100))
		} else {
			row.Column("")
		}
		row.Column(s.Info)
	}
	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(total.String()).SetFormat(tabulate.FmtBold)
	row.Column("")
	row.Column("")

	tab.Print(w)
}
