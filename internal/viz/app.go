package viz

import (
	"errors"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/bsviz/internal/audio"
	"github.com/san-kum/bsviz/internal/config"
	"github.com/san-kum/bsviz/internal/logging"
	"github.com/san-kum/bsviz/internal/playback"
	"github.com/san-kum/bsviz/internal/render"
	"github.com/san-kum/bsviz/internal/search"
)

// Sounder plays the cue for a step. Implementations must not block, and
// report false when a cue with tones could not be sounded.
type Sounder interface {
	Play(c audio.Cue, interval time.Duration) bool
}

type focus int

const (
	focusChart focus = iota
	focusSize
	focusList
	focusTarget
	numFocus
)

// ActionKind enumerates everything the operator can ask for.
type ActionKind int

const (
	ActNone ActionKind = iota
	ActRandomize
	ActLoadList
	ActStart
	ActStepBack
	ActStepForward
	ActTogglePlay
	ActTick
	ActSpeed  // Delta > 0 slows down
	ActResize // Delta is added to the size
	ActCycleTheme
	ActToggleSound
	ActToggleHelp
	ActFocus // Delta moves focus, 0 returns to the chart
	ActQuit
)

type Action struct {
	Kind  ActionKind
	Delta int
	Gen   uint64
}

type tickMsg struct{ gen uint64 }

// Options configures a Model. Zero fields get defaults.
type Options struct {
	Config *config.Config
	Logger *logging.Logger
	Sound  Sounder
	Rand   *rand.Rand
}

// Model is the whole state of the visualizer.
type Model struct {
	cfg    *config.Config
	log    *logging.Logger
	sound  Sounder
	rng    *rand.Rand
	theme  Theme
	styles Styles
	keys   keyMap
	help   help.Model

	sizeInput   int
	listInput   textinput.Model
	targetInput textinput.Model
	focus       focus

	speed   float64
	soundOn bool

	data   []int
	run    *search.Run
	cursor playback.Cursor
	timer  *playback.Timer

	// notice overrides the step message until the cursor next moves
	notice     string
	noticeTone render.Tone

	// bell rings the terminal bell with the next frame
	bell bool

	showHelp      bool
	width, height int
}

// NewModel builds the initial state and loads the configured dataset, or a
// random one.
func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	log := opts.Logger
	if log == nil {
		log = logging.Noop()
	}
	rng := opts.Rand
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		rng = rand.New(rand.NewPCG(seed, seed))
	}

	list := textinput.New()
	list.Prompt = ""
	list.Placeholder = "e.g. 2, 5, 8, 12, 16"
	list.Width = listWidth(120)
	target := textinput.New()
	target.Prompt = ""
	target.Placeholder = "random"
	target.Width = 8
	target.CharLimit = 12
	target.SetValue(cfg.Dataset.Target)

	theme := GetTheme(cfg.Theme)
	m := Model{
		cfg:         cfg,
		log:         log,
		sound:       opts.Sound,
		rng:         rng,
		theme:       theme,
		styles:      NewStyles(theme),
		keys:        defaultKeys(),
		help:        newHelp(120),
		sizeInput:   config.ClampSize(cfg.Size),
		listInput:   list,
		targetInput: target,
		speed:       config.ClampSpeed(cfg.Speed),
		soundOn:     cfg.Sound,
		timer:       playback.NewTimer(cfg.Interval()),
		width:       120,
		height:      36,
	}
	m.timer.SetInterval(m.interval())

	if cfg.Dataset.List != "" {
		m.listInput.SetValue(cfg.Dataset.List)
		m, _ = m.dispatch(Action{Kind: ActLoadList})
	} else {
		m, _ = m.dispatch(Action{Kind: ActRandomize})
	}
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Update maps messages to actions. Keys that are not bindings go to the
// focused text field.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.listInput.Width = listWidth(msg.Width)
		return m, nil
	case tickMsg:
		return m.dispatch(Action{Kind: ActTick, Gen: msg.gen})
	case tea.KeyMsg:
		if a, ok := m.actionFor(msg); ok {
			return m.dispatch(a)
		}
	}
	return m.updateInput(msg)
}

func (m Model) updateInput(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusList:
		m.listInput, cmd = m.listInput.Update(msg)
	case focusTarget:
		m.targetInput, cmd = m.targetInput.Update(msg)
	}
	return m, cmd
}

func (m Model) actionFor(msg tea.KeyMsg) (Action, bool) {
	k := m.keys
	switch {
	case key.Matches(msg, k.ForceQuit):
		return Action{Kind: ActQuit}, true
	case key.Matches(msg, k.Next):
		return Action{Kind: ActFocus, Delta: 1}, true
	case key.Matches(msg, k.Prev):
		return Action{Kind: ActFocus, Delta: -1}, true
	case key.Matches(msg, k.Blur):
		return Action{Kind: ActFocus}, true
	}

	switch m.focus {
	case focusList:
		if key.Matches(msg, k.Start) {
			return Action{Kind: ActLoadList}, true
		}
		return Action{}, false
	case focusTarget:
		if key.Matches(msg, k.Start) {
			return Action{Kind: ActStart}, true
		}
		return Action{}, false
	case focusSize:
		switch {
		case key.Matches(msg, k.Back):
			return Action{Kind: ActResize, Delta: -1}, true
		case key.Matches(msg, k.Forward):
			return Action{Kind: ActResize, Delta: 1}, true
		case key.Matches(msg, k.Start):
			return Action{Kind: ActRandomize}, true
		}
	}

	switch {
	case key.Matches(msg, k.Start):
		return Action{Kind: ActStart}, true
	case key.Matches(msg, k.Play):
		return Action{Kind: ActTogglePlay}, true
	case key.Matches(msg, k.Back):
		return Action{Kind: ActStepBack}, true
	case key.Matches(msg, k.Forward):
		return Action{Kind: ActStepForward}, true
	case key.Matches(msg, k.Randomize):
		return Action{Kind: ActRandomize}, true
	case key.Matches(msg, k.Faster):
		return Action{Kind: ActSpeed, Delta: -1}, true
	case key.Matches(msg, k.Slower):
		return Action{Kind: ActSpeed, Delta: 1}, true
	case key.Matches(msg, k.Theme):
		return Action{Kind: ActCycleTheme}, true
	case key.Matches(msg, k.Mute):
		return Action{Kind: ActToggleSound}, true
	case key.Matches(msg, k.Help):
		return Action{Kind: ActToggleHelp}, true
	case key.Matches(msg, k.Quit):
		return Action{Kind: ActQuit}, true
	}
	return Action{}, false
}

// dispatch is the only place state changes in response to the operator or
// the playback timer.
func (m Model) dispatch(a Action) (Model, tea.Cmd) {
	m.bell = false
	switch a.Kind {
	case ActQuit:
		m.timer.Cancel()
		return m, tea.Quit

	case ActTick:
		if !m.timer.Accept(a.Gen) {
			return m, nil
		}
		if m.cursor.Tick() {
			m.notice = ""
			m.cue()
		}
		return m, m.schedule()

	case ActStepForward:
		if m.cursor.StepForward() {
			m.notice = ""
		}
		return m, m.schedule()

	case ActStepBack:
		if m.cursor.StepBack() {
			m.notice = ""
		}
		return m, m.schedule()

	case ActTogglePlay:
		if m.cursor.State() == playback.Empty {
			return m.dispatch(Action{Kind: ActStart})
		}
		resume := m.cursor.State() == playback.Paused
		m.cursor.TogglePlay()
		m.notice = ""
		// resuming moves on at once, a rewind shows the first step for a full interval
		if resume && m.cursor.Tick() {
			m.cue()
		}
		return m, m.schedule()

	case ActStart:
		return m.start()

	case ActRandomize:
		data, err := search.RandomSorted(m.rng, m.sizeInput, m.cfg.ValueMin, m.cfg.ValueMax)
		if err != nil {
			return m.reject(err), nil
		}
		m.setData(data)
		m.listInput.SetValue(joinInts(data))
		m.notify("Generated "+strconv.Itoa(len(data))+" sorted numbers.", render.ToneNormal)
		m.log.Info("data generated", "size", len(data))
		return m, m.schedule()

	case ActLoadList:
		data, err := search.ParseSortedList(m.listInput.Value())
		if err == nil && len(data) == 0 {
			err = &search.InputError{Field: "list", Wrapped: search.ErrEmptyData}
		}
		if err != nil {
			return m.reject(err), nil
		}
		m.setData(data)
		m.sizeInput = config.ClampSize(len(data))
		m.notify("Custom sorted list loaded.", render.ToneNormal)
		m.log.Info("list loaded", "size", len(data))
		return m, m.schedule()

	case ActResize:
		m.sizeInput = config.ClampSize(m.sizeInput + a.Delta)
		return m, nil

	case ActSpeed:
		m.speed = config.ClampSpeed(m.speed + float64(a.Delta)*config.SpeedStep)
		m.timer.SetInterval(m.interval())
		return m, m.schedule()

	case ActCycleTheme:
		m.theme = NextTheme(m.theme.Name)
		m.styles = NewStyles(m.theme)
		return m, nil

	case ActToggleSound:
		m.soundOn = !m.soundOn
		return m, nil

	case ActToggleHelp:
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case ActFocus:
		next := focusChart
		if a.Delta != 0 {
			next = (m.focus + focus(a.Delta) + numFocus) % numFocus
		}
		return m.setFocus(next)
	}
	return m, nil
}

func (m Model) start() (Model, tea.Cmd) {
	if len(m.data) == 0 {
		return m.reject(&search.InputError{Field: "list", Wrapped: search.ErrEmptyData}), nil
	}
	target, err := search.ParseTarget(m.targetInput.Value(), m.data, m.rng)
	if err != nil {
		return m.reject(err), nil
	}
	if strings.TrimSpace(m.targetInput.Value()) == "" {
		m.targetInput.SetValue(strconv.Itoa(target))
	}

	m.run = search.Generate(m.data, target)
	m.cursor.Load(m.run.Len())
	m.notice = ""
	last := m.run.Last()
	idx, found := last.Found()
	m.log.WithRun(len(m.data), target).Info("search started",
		"steps", m.run.Len(), "iterations", m.run.Iterations(), "found", found, "index", idx)

	m, cmd := m.setFocus(focusChart)
	return m, tea.Batch(cmd, m.schedule())
}

// setData replaces the array and drops the current run.
func (m *Model) setData(data []int) {
	m.data = data
	m.run = nil
	m.cursor.Clear()
}

func (m *Model) notify(msg string, tone render.Tone) {
	m.notice, m.noticeTone = msg, tone
}

// reject reports err on the status line and leaves everything else alone.
func (m Model) reject(err error) Model {
	m.notify(search.UserMessage(err), render.ToneError)
	var ie *search.InputError
	if errors.As(err, &ie) {
		m.log.Warn("input rejected", "field", ie.Field, "input", ie.Input, "err", ie.Wrapped)
	} else {
		m.log.Warn("input rejected", "err", err)
	}
	return m
}

func (m Model) setFocus(f focus) (Model, tea.Cmd) {
	m.focus = f
	m.listInput.Blur()
	m.targetInput.Blur()
	switch f {
	case focusList:
		return m, m.listInput.Focus()
	case focusTarget:
		return m, m.targetInput.Focus()
	}
	return m, nil
}

// schedule arms the timer while playing and cancels it otherwise.
func (m Model) schedule() tea.Cmd {
	if !m.cursor.Playing() {
		m.timer.Cancel()
		return nil
	}
	gen := m.timer.Schedule()
	return tea.Tick(m.timer.Interval(), func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

func (m *Model) cue() {
	if !m.soundOn || m.sound == nil {
		return
	}
	if s := m.step(); s != nil && !m.sound.Play(audio.CueFor(s.Kind), m.timer.Interval()) {
		m.bell = true
	}
}

func (m Model) interval() time.Duration {
	return time.Duration(m.speed * float64(time.Second))
}

// step returns the step under the cursor, or nil before any search.
func (m Model) step() *search.Step {
	if m.run == nil {
		return nil
	}
	s, ok := m.run.At(m.cursor.Index())
	if !ok {
		return nil
	}
	return &s
}

// Status returns the status line text and tone.
func (m Model) Status() (string, render.Tone) {
	if m.notice != "" {
		return m.notice, m.noticeTone
	}
	return render.StatusFor(m.step())
}

func newHelp(width int) help.Model {
	h := help.New()
	h.Width = width
	return h
}

// listWidth leaves room for the size and target fields beside the list.
func listWidth(termWidth int) int {
	return min(max(termWidth-46, 8), 60)
}

func joinInts(data []int) string {
	parts := make([]string, len(data))
	for i, v := range data {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

// Run starts the program on the alternate screen and blocks until it exits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
