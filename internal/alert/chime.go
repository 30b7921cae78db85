package alert

import (
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

const (
	chimeSampleRate beep.SampleRate = 44100
	chimeLength                     = 1500 * time.Millisecond

	chimeStartHz = 523.25
	chimeEndHz   = 880.0
	chimeSweep   = 0.1

	chimeAttack = 0.1
	chimePeak   = 0.3
	chimeFloor  = 0.01
)

var (
	speakerOnce sync.Once
	speakerErr  error
)

func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(chimeSampleRate, chimeSampleRate.N(time.Second/10))
		if speakerErr != nil {
			log.Printf("alert: audio unavailable: %v", speakerErr)
		}
	})
	return speakerErr
}

// Chime is the Tone played through the system speaker.
type Chime struct {
	mu     sync.Mutex
	volume float64
}

// NewChime creates a chime. Volume is a base-2 exponent; 0 plays at unity gain.
func NewChime(volume float64) *Chime {
	return &Chime{volume: volume}
}

// SetVolume changes the volume of later plays.
func (chime *Chime) SetVolume(volume float64) {
	chime.mu.Lock()
	defer chime.mu.Unlock()
	chime.volume = volume
}

// Play queues the chime and returns without waiting for playback.
func (chime *Chime) Play() error {
	if err := initSpeaker(); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	chime.mu.Lock()
	volume := chime.volume
	chime.mu.Unlock()

	speaker.Play(&effects.Volume{
		Streamer: newChimeStreamer(chimeSampleRate),
		Base:     2,
		Volume:   volume,
		Silent:   false,
	})
	return nil
}

// chimeStreamer synthesizes a sine that slides up a sixth with a short
// attack and an exponential tail.
type chimeStreamer struct {
	sampleRate beep.SampleRate
	position   int
	total      int
	phase      float64
}

func newChimeStreamer(sampleRate beep.SampleRate) *chimeStreamer {
	return &chimeStreamer{
		sampleRate: sampleRate,
		total:      sampleRate.N(chimeLength),
	}
}

func (streamer *chimeStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if streamer.position >= streamer.total {
		return 0, false
	}
	rate := float64(streamer.sampleRate)
	for i := range samples {
		if streamer.position >= streamer.total {
			break
		}
		t := float64(streamer.position) / rate
		value := math.Sin(streamer.phase) * chimeGain(t)
		samples[i][0] = value
		samples[i][1] = value

		streamer.phase += 2 * math.Pi * chimeFrequency(t) / rate
		if streamer.phase > 2*math.Pi {
			streamer.phase -= 2 * math.Pi
		}
		streamer.position++
		n++
	}
	return n, true
}

func (streamer *chimeStreamer) Err() error {
	return nil
}

func chimeFrequency(t float64) float64 {
	if t >= chimeSweep {
		return chimeEndHz
	}
	if t <= 0 {
		return chimeStartHz
	}
	return chimeStartHz * math.Pow(chimeEndHz/chimeStartHz, t/chimeSweep)
}

func chimeGain(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t < chimeAttack {
		return chimePeak * t / chimeAttack
	}
	decay := chimeLength.Seconds() - chimeAttack
	progress := (t - chimeAttack) / decay
	if progress >= 1 {
		return chimeFloor
	}
	return chimePeak * math.Pow(chimeFloor/chimePeak, progress)
}
