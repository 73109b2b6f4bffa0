// Package audio plays short sound cues for game events. Every call is a
// no-op until Initialize succeeds, so play continues on machines without an
// audio device.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	placeFreq    = 660.0
	captureStep  = 40.0 // Pitch rise per captured piece
	captureLimit = 12   // Captures beyond this stop raising the pitch
	errorFreq    = 120.0
	buzzAttack   = 10 * time.Millisecond
	endFreq      = 440.0
)

// SoundManager owns the speaker and a mixer that all cues are added to
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager at the given volume in (0, 1]
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	sm.mixer.Clear()
	speaker.Close()
	sm.initialized = false
}

// PlayPlace plays a click whose pitch rises with the number of captured pieces
func (sm *SoundManager) PlayPlace(captured int) {
	freq := placeFreq + captureStep*float64(min(captured, captureLimit))
	sm.play(sm.tone(freq, 60*time.Millisecond))
}

// PlayError plays a short low-pitched buzz for a rejected move
func (sm *SoundManager) PlayError() {
	sm.play(NewBuzz(sampleRate, errorFreq, 150*time.Millisecond))
}

// PlayGameOver plays a rising three-note phrase
func (sm *SoundManager) PlayGameOver() {
	sm.play(beep.Seq(
		sm.tone(endFreq, 120*time.Millisecond),
		sm.tone(endFreq*5/4, 120*time.Millisecond),
		sm.tone(endFreq*3/2, 240*time.Millisecond),
	))
}

func (sm *SoundManager) play(s beep.Streamer) {
	if s == nil {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(sm.gain(s))
	speaker.Unlock()
}

// tone returns a sine note of length d, or nil if the generator rejects freq
func (sm *SoundManager) tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil
	}
	return beep.Take(sampleRate.N(d), sine)
}

func (sm *SoundManager) gain(s beep.Streamer) beep.Streamer {
	if sm.volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	// Sine generators run at full scale; keep cues well below clipping
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(min(sm.volume, 1) * 0.25)}
}

// Buzz is a fixed-length rejection cue: a low tone with two harmonics, a
// short attack and a linear release to silence at the end
type Buzz struct {
	sr     beep.SampleRate
	freq   float64
	pos    int
	length int
	attack int
}

// NewBuzz creates a buzz of duration d
func NewBuzz(sr beep.SampleRate, freq float64, d time.Duration) *Buzz {
	return &Buzz{
		sr:     sr,
		freq:   freq,
		length: sr.N(d),
		attack: sr.N(buzzAttack),
	}
}

func (b *Buzz) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) && b.pos < b.length {
		t := float64(b.pos) / float64(b.sr)

		sample := 0.3*math.Sin(2*math.Pi*b.freq*t) +
			0.15*math.Sin(2*math.Pi*b.freq*2*t) +
			0.075*math.Sin(2*math.Pi*b.freq*3*t)
		sample *= b.envelope()

		samples[n][0] = sample
		samples[n][1] = sample
		b.pos++
		n++
	}
	return n, n > 0
}

func (b *Buzz) envelope() float64 {
	if b.pos < b.attack {
		return float64(b.pos) / float64(b.attack)
	}
	release := b.length - b.attack
	if release <= 0 {
		return 1
	}
	return float64(b.length-b.pos) / float64(release)
}

func (b *Buzz) Err() error {
	return nil
}
