package search

// Status is the outcome carried by a step.
type Status int

const (
	Running Status = iota
	Found
	NotFound
)

func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case NotFound:
		return "not_found"
	default:
		return "running"
	}
}

// Kind identifies which moment of the algorithm a step records.
type Kind int

const (
	KindStart Kind = iota
	KindMidpoint
	KindCompare
	KindEliminateLeft
	KindEliminateRight
	KindFound
	KindNotFound
)

var kindNames = [...]string{"start", "midpoint", "compare", "eliminate_left", "eliminate_right", "found", "not_found"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Eliminates reports whether the step discards half of the window.
func (k Kind) Eliminates() bool {
	return k == KindEliminateLeft || k == KindEliminateRight
}

// Step is one recorded snapshot. Indices are -1 when unset.
type Step struct {
	Low        int
	High       int
	Mid        int
	Message    string
	Status     Status
	Kind       Kind
	Value      int // data[Mid] when Mid is set
	Target     int
	FoundIndex int
}

// Found returns the index the target was found at, if any.
func (s Step) Found() (int, bool) {
	if s.Status != Found || s.FoundIndex < 0 {
		return -1, false
	}
	return s.FoundIndex, true
}

// Terminal reports whether the step ends the search.
func (s Step) Terminal() bool {
	return s.Status != Running
}

// Run is the full step sequence for one (data, target) pair.
type Run struct {
	Data   []int
	Target int
	Steps  []Step
}

// Len returns the number of recorded steps.
func (r *Run) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Steps)
}

// At returns the step at i. ok is false when i is out of range.
func (r *Run) At(i int) (Step, bool) {
	if r == nil || i < 0 || i >= len(r.Steps) {
		return Step{}, false
	}
	return r.Steps[i], true
}

// Last returns the terminal step.
func (r *Run) Last() Step {
	if r.Len() == 0 {
		return Step{Low: -1, High: -1, Mid: -1, FoundIndex: -1}
	}
	return r.Steps[len(r.Steps)-1]
}

// Iterations counts the midpoints visited.
func (r *Run) Iterations() int {
	n := 0
	for _, s := range r.Steps {
		if s.Kind == KindMidpoint {
			n++
		}
	}
	return n
}
