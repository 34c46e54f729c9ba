package render

import (
	"strconv"

	"github.com/san-kum/bsviz/internal/search"
)

// Pseudocode is the reference listing shown beside the chart. LineFor
// returns 1-based indices into it.
var Pseudocode = []string{
	"function binarySearch(arr, target):",
	"    low = 0",
	"    high = len(arr) - 1",
	"",
	"    while low <= high:",
	"        mid = (low + high) / 2",
	"",
	"        if arr[mid] == target:",
	"            return mid      // found",
	"",
	"        else if arr[mid] < target:",
	"            low = mid + 1",
	"",
	"        else:",
	"            high = mid - 1",
	"",
	"    return -1              // not found",
}

const (
	Definition = "Binary search finds a target value in a SORTED array " +
		"by repeatedly dividing the search interval in half."
	Complexity = "Time:  O(log n)\nSpace: O(1)"
)

var lineOfKind = map[search.Kind]int{
	search.KindStart:          2,
	search.KindMidpoint:       6,
	search.KindCompare:        8,
	search.KindFound:          9,
	search.KindEliminateLeft:  11,
	search.KindEliminateRight: 14,
	search.KindNotFound:       17,
}

// LineFor returns the pseudocode line to highlight for step, or 0 for none.
func LineFor(step *search.Step) int {
	if step == nil {
		return 0
	}
	return lineOfKind[step.Kind]
}

// Tone is the emphasis of the status line.
type Tone int

const (
	ToneNormal Tone = iota
	ToneHighlight
	ToneSuccess
	ToneWarning
	ToneError
)

// StatusFor returns the status line text and its emphasis.
func StatusFor(step *search.Step) (string, Tone) {
	if step == nil {
		return "Ready.", ToneNormal
	}
	switch {
	case step.Status == search.Found:
		return step.Message, ToneSuccess
	case step.Status == search.NotFound:
		return step.Message, ToneWarning
	case step.Kind == search.KindCompare:
		return step.Message, ToneHighlight
	default:
		return step.Message, ToneNormal
	}
}

// Readouts formats the low, mid and high indices, "-" when unset.
func Readouts(step *search.Step) (low, mid, high string) {
	if step == nil {
		return "-", "-", "-"
	}
	return readout(step.Low), readout(step.Mid), readout(step.High)
}

func readout(i int) string {
	if i < 0 {
		return "-"
	}
	return strconv.Itoa(i)
}

// WindowSizes returns high-low+1 for steps 0..upto of run, zero once the
// window is gone.
func WindowSizes(run *search.Run, upto int) []float64 {
	if run == nil || run.Len() == 0 || upto < 0 {
		return nil
	}
	if upto >= run.Len() {
		upto = run.Len() - 1
	}
	out := make([]float64, 0, upto+1)
	for _, s := range run.Steps[:upto+1] {
		if s.Low < 0 || s.High < s.Low {
			out = append(out, 0)
			continue
		}
		out = append(out, float64(s.High-s.Low+1))
	}
	return out
}
