package audio

import (
	"testing"
	"time"

	"github.com/san-kum/bsviz/internal/search"
)

func TestCueFor(t *testing.T) {
	tests := []struct {
		kind search.Kind
		want Cue
	}{
		{search.KindStart, CueNone},
		{search.KindMidpoint, CueNone},
		{search.KindCompare, CueCompare},
		{search.KindEliminateLeft, CueEliminate},
		{search.KindEliminateRight, CueEliminate},
		{search.KindFound, CueFound},
		{search.KindNotFound, CueNone},
	}
	for _, tt := range tests {
		if got := CueFor(tt.kind); got != tt.want {
			t.Errorf("CueFor(%v) = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestTones(t *testing.T) {
	tests := []struct {
		name     string
		cue      Cue
		interval time.Duration
		want     []Tone
	}{
		{"compare", CueCompare, 500 * time.Millisecond, []Tone{{600, 100 * time.Millisecond}}},
		{"eliminate short", CueEliminate, 50 * time.Millisecond, []Tone{{250, 20 * time.Millisecond}}},
		{"eliminate long", CueEliminate, 5 * time.Second, []Tone{{250, 200 * time.Millisecond}}},
		{"found", CueFound, time.Second, []Tone{{1000, 200 * time.Millisecond}, {1500, 400 * time.Millisecond}}},
		{"none", CueNone, time.Second, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tones(tt.cue, tt.interval)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("tone %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPlayer_InactiveReportsUnplayed(t *testing.T) {
	p := NewPlayer()

	if p.Play(CueCompare, time.Second) {
		t.Error("expected an inactive player to report the cue unplayed")
	}
	if !p.Play(CueNone, time.Second) {
		t.Error("a silent cue has nothing to play")
	}
	if p.Pending() != 0 {
		t.Errorf("inactive player queued %d tones", p.Pending())
	}
}

func TestPlayer_Process(t *testing.T) {
	p := NewPlayer()
	p.Active = true
	if !p.Play(CueFound, 100*time.Millisecond) {
		t.Fatal("expected an active player to accept the cue")
	}
	if p.Pending() != 2 {
		t.Fatalf("expected 2 queued tones, got %d", p.Pending())
	}

	buf := make([]float32, BufferSize)
	nonZero := false
	for i := 0; i < 200 && p.Pending() > 0; i++ {
		p.process(buf)
		for _, s := range buf {
			if s > 1 || s < -1 {
				t.Fatalf("sample %f out of range", s)
			}
			if s != 0 {
				nonZero = true
			}
		}
	}
	if p.Pending() != 0 {
		t.Errorf("queue not drained: %d left", p.Pending())
	}
	if !nonZero {
		t.Error("no signal produced")
	}

	p.process(buf)
	for _, s := range buf {
		if s != 0 {
			t.Fatal("expected silence with an empty queue")
		}
	}
}

func TestEnvelope(t *testing.T) {
	total := SampleRate / 10
	if envelope(0, total) != 0 {
		t.Error("envelope should start at zero")
	}
	if envelope(total/2, total) != 1 {
		t.Error("envelope should be flat in the middle")
	}
	if e := envelope(total-1, total); e <= 0 || e >= 1 {
		t.Errorf("envelope tail = %f", e)
	}
}
