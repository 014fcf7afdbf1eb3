package sfx

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue names a short interaction sound.
type Cue int

const (
	CueHover Cue = iota
	CueClickOn
	CueClickOff
)

type toneSpec struct {
	freq     float64
	duration time.Duration
	volume   float64 // linear gain, 0..1
}

var cues = map[Cue]toneSpec{
	CueHover:    {freq: 660, duration: 40 * time.Millisecond, volume: 0.15},
	CueClickOn:  {freq: 880, duration: 90 * time.Millisecond, volume: 0.3},
	CueClickOff: {freq: 440, duration: 90 * time.Millisecond, volume: 0.3},
}

// Tone returns a sine tone of freq Hz for duration with a linear fade-out, scaled by volume.
func Tone(rate beep.SampleRate, freq float64, duration time.Duration, volume float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("sfx: %w", err)
	}
	n := rate.N(duration)
	return gain(&fadeOut{s: beep.Take(n, sine), total: n}, volume), nil
}

// fadeOut ramps the gain from 1 to 0 across total samples to avoid an audible click at the end.
type fadeOut struct {
	s     beep.Streamer
	pos   int
	total int
}

func (f *fadeOut) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.s.Stream(samples)
	for i := 0; i < n; i++ {
		g := 1.0
		if f.total > 0 {
			g = float64(f.total-f.pos) / float64(f.total)
		}
		samples[i][0] *= g
		samples[i][1] *= g
		f.pos++
	}
	return n, ok
}

func (f *fadeOut) Err() error { return f.s.Err() }

// gain wraps s in a volume effect. Zero or negative volume is silent; Log2(0) would be -Inf.
func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Player mixes cues onto the speaker. The zero value is not usable; call New.
// Play is a no-op until Init succeeds and while disabled.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	enabled     bool
	initialized bool
}

// New returns a disabled, uninitialized player.
func New() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the audio device. Safe to call more than once.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("sfx: speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// SetEnabled turns playback on or off. Enabling an uninitialized player initializes it.
func (p *Player) SetEnabled(on bool) error {
	if on {
		if err := p.Init(); err != nil {
			return err
		}
	}
	p.mu.Lock()
	p.enabled = on
	p.mu.Unlock()
	return nil
}

// Enabled reports whether cues are being played.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Play queues cue on the mixer. It never blocks the render thread beyond the speaker lock.
func (p *Player) Play(cue Cue) {
	p.mu.Lock()
	on := p.enabled && p.initialized
	p.mu.Unlock()
	if !on {
		return
	}
	spec, ok := cues[cue]
	if !ok {
		return
	}
	s, err := Tone(sampleRate, spec.freq, spec.duration, spec.volume)
	if err != nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences everything. The speaker itself stays open for the life of the process.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = false
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
}
