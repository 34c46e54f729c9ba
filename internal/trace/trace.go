// Package trace writes a recorded run in machine- and human-readable
// forms for the non-interactive commands.
package trace

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/bsviz/internal/render"
	"github.com/san-kum/bsviz/internal/search"
)

type StepRecord struct {
	Index      int    `json:"index"`
	Kind       string `json:"kind"`
	Low        int    `json:"low"`
	High       int    `json:"high"`
	Mid        int    `json:"mid"`
	Status     string `json:"status"`
	FoundIndex *int   `json:"found_index,omitempty"`
	Line       int    `json:"line"`
	Final      bool   `json:"final"`
	Message    string `json:"message"`
}

type RunRecord struct {
	Data   []int        `json:"data"`
	Target int          `json:"target"`
	Result string       `json:"result"`
	Steps  []StepRecord `json:"steps"`
}

// Record converts a run into its serializable form.
func Record(run *search.Run) RunRecord {
	rec := RunRecord{
		Data:   run.Data,
		Target: run.Target,
		Result: run.Last().Status.String(),
		Steps:  make([]StepRecord, run.Len()),
	}
	if rec.Data == nil {
		rec.Data = []int{}
	}
	for i := range run.Steps {
		s := &run.Steps[i]
		sr := StepRecord{
			Index:   i,
			Kind:    s.Kind.String(),
			Low:     s.Low,
			High:    s.High,
			Mid:     s.Mid,
			Status:  s.Status.String(),
			Line:    render.LineFor(s),
			Final:   s.Terminal(),
			Message: s.Message,
		}
		if idx, ok := s.Found(); ok {
			sr.FoundIndex = &idx
		}
		rec.Steps[i] = sr
	}
	return rec
}

func WriteJSON(w io.Writer, run *search.Run) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Record(run))
}

func WriteCSV(w io.Writer, run *search.Run) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"step", "kind", "low", "high", "mid", "status", "found_index", "line", "message"}); err != nil {
		return err
	}
	for _, s := range Record(run).Steps {
		found := ""
		if s.FoundIndex != nil {
			found = strconv.Itoa(*s.FoundIndex)
		}
		row := []string{
			strconv.Itoa(s.Index),
			s.Kind,
			strconv.Itoa(s.Low),
			strconv.Itoa(s.High),
			strconv.Itoa(s.Mid),
			s.Status,
			found,
			strconv.Itoa(s.Line),
			s.Message,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTable prints one aligned row per step.
func WriteTable(w io.Writer, run *search.Run) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STEP\tLOW\tMID\tHIGH\tLINE\tMESSAGE")
	for i := range run.Steps {
		s := &run.Steps[i]
		low, mid, high := render.Readouts(s)
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\n", i, low, mid, high, render.LineFor(s), s.Message)
	}
	return tw.Flush()
}

// Plot charts the search window size across the run.
func Plot(run *search.Run, width, height int) string {
	sizes := render.WindowSizes(run, run.Len()-1)
	if len(sizes) < 2 {
		return ""
	}
	return asciigraph.Plot(sizes,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("search window size per step"),
	)
}
