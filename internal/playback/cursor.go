// Package playback selects which recorded step is on screen and schedules
// automatic advancement.
package playback

// State is the playback state of a Cursor.
type State int

const (
	Empty State = iota
	Paused
	Playing
	Finished
)

func (s State) String() string {
	switch s {
	case Paused:
		return "paused"
	case Playing:
		return "playing"
	case Finished:
		return "finished"
	default:
		return "empty"
	}
}

// Cursor is a clamped index into a step sequence of fixed length.
// The zero value is Empty.
type Cursor struct {
	n       int
	index   int
	playing bool
}

// Load points the cursor at the first of n steps and starts playing.
func (c *Cursor) Load(n int) {
	if n <= 0 {
		c.Clear()
		return
	}
	c.n, c.index, c.playing = n, 0, n > 1
}

// Clear unloads the cursor.
func (c *Cursor) Clear() {
	*c = Cursor{}
}

// Index returns the current step index, or -1 when nothing is loaded.
func (c Cursor) Index() int {
	if c.n == 0 {
		return -1
	}
	return c.index
}

// Len returns the number of steps loaded.
func (c Cursor) Len() int { return c.n }

func (c Cursor) State() State {
	switch {
	case c.n == 0:
		return Empty
	case c.index == c.n-1:
		return Finished
	case c.playing:
		return Playing
	default:
		return Paused
	}
}

// Playing reports whether ticks advance the cursor.
func (c Cursor) Playing() bool {
	return c.State() == Playing
}

// StepForward pauses and moves one step ahead. It is a no-op at the end.
func (c *Cursor) StepForward() bool {
	c.playing = false
	if c.n == 0 || c.index >= c.n-1 {
		return false
	}
	c.index++
	return true
}

// StepBack pauses and moves one step back. It is a no-op at the start.
func (c *Cursor) StepBack() bool {
	c.playing = false
	if c.n == 0 || c.index <= 0 {
		return false
	}
	c.index--
	return true
}

// TogglePlay flips between playing and paused. From Finished it rewinds to
// the first step and resumes.
func (c *Cursor) TogglePlay() {
	switch c.State() {
	case Empty:
		return
	case Finished:
		c.index = 0
		c.playing = c.n > 1
	default:
		c.playing = !c.playing
	}
}

// Tick advances one step while playing. Reaching the last step stops
// playback. It reports whether the index moved.
func (c *Cursor) Tick() bool {
	if !c.Playing() {
		return false
	}
	c.index++
	if c.index >= c.n-1 {
		c.index = c.n - 1
		c.playing = false
	}
	return true
}
