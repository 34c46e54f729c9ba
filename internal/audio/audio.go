// Package audio plays short feedback tones for search steps. Playback is
// fire-and-forget: Play never blocks or fails, it only reports whether the
// cue reached a device so the caller can ring the terminal bell instead.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gordonklaus/portaudio"
	"github.com/san-kum/bsviz/internal/search"
)

const (
	SampleRate = 44100
	BufferSize = 512
)

// Cue is the sound associated with a kind of step.
type Cue int

const (
	CueNone Cue = iota
	CueCompare
	CueEliminate
	CueFound
)

// CueFor returns the cue for a step kind.
func CueFor(k search.Kind) Cue {
	switch {
	case k == search.KindFound:
		return CueFound
	case k == search.KindCompare:
		return CueCompare
	case k.Eliminates():
		return CueEliminate
	default:
		return CueNone
	}
}

// Tone is one beep.
type Tone struct {
	Freq float64
	Dur  time.Duration
}

// Tones expands a cue into beeps whose length follows the playback
// interval: a fifth of it, kept within 20-200ms.
func Tones(c Cue, interval time.Duration) []Tone {
	d := min(max(interval/5, 20*time.Millisecond), 200*time.Millisecond)
	switch c {
	case CueFound:
		return []Tone{{1000, d}, {1500, min(2*d, 400*time.Millisecond)}}
	case CueCompare:
		return []Tone{{600, d}}
	case CueEliminate:
		return []Tone{{250, d}}
	default:
		return nil
	}
}

type voice struct {
	freq      float64
	total, at int
}

// Player synthesizes queued tones on a PortAudio output stream.
type Player struct {
	stream *portaudio.Stream

	mu    sync.Mutex
	queue []voice
	phase float64

	Active bool
}

// NewPlayer returns an inactive player; call Start to open a device.
func NewPlayer() *Player {
	return &Player{}
}

// Start opens the default output device.
func (p *Player) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}
	stream, err := portaudio.OpenDefaultStream(0, 1, SampleRate, BufferSize, p.process)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}
	p.stream = stream
	p.Active = true
	return nil
}

func (p *Player) Stop() {
	if p.stream != nil {
		p.stream.Stop()
		p.stream.Close()
		p.stream = nil
		portaudio.Terminate()
	}
	p.Active = false
}

// Play queues the tones of c and returns immediately. It reports false
// when c has tones but there is no open stream to play them on.
func (p *Player) Play(c Cue, interval time.Duration) (played bool) {
	defer func() {
		if recover() != nil {
			played = false
		}
	}()

	tones := Tones(c, interval)
	if len(tones) == 0 {
		return true
	}
	if !p.Active {
		return false
	}

	p.mu.Lock()
	// a new cue replaces whatever is still sounding
	p.queue = p.queue[:0]
	for _, t := range tones {
		n := int(t.Dur.Seconds() * SampleRate)
		p.queue = append(p.queue, voice{freq: t.Freq, total: n})
	}
	p.mu.Unlock()
	return true
}

// Pending reports the number of tones not yet fully played.
func (p *Player) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}

func (p *Player) process(out []float32) {
	p.mu.Lock()
	defer p.mu.Unlock()

	const vol = 0.25
	dt := 1.0 / float64(SampleRate)
	for i := range out {
		if len(p.queue) == 0 {
			out[i] = 0
			continue
		}
		v := &p.queue[0]
		out[i] = float32(vol * envelope(v.at, v.total) * math.Sin(2*math.Pi*p.phase))
		p.phase += v.freq * dt
		p.phase -= math.Floor(p.phase)
		v.at++
		if v.at >= v.total {
			p.queue = p.queue[1:]
			p.phase = 0
		}
	}
}

// envelope ramps the first and last 5ms linearly to avoid clicks.
func envelope(at, total int) float64 {
	ramp := SampleRate / 200
	if total < 2*ramp {
		ramp = total / 2
	}
	if ramp == 0 {
		return 1
	}
	switch {
	case at < ramp:
		return float64(at) / float64(ramp)
	case at >= total-ramp:
		return float64(total-at) / float64(ramp)
	default:
		return 1
	}
}
