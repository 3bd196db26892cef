package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/glowchase/parameter"
)

// ChirpGenerator sweeps a sine from low to high frequency over a fixed duration
type ChirpGenerator struct {
	sr      beep.SampleRate
	low     float64
	high    float64
	samples int
	attack  int
	pos     int
	phase   float64
}

// NewChirpGenerator creates a finite chirp streamer
func NewChirpGenerator(sr beep.SampleRate, low, high float64, duration time.Duration) *ChirpGenerator {
	return &ChirpGenerator{
		sr:      sr,
		low:     low,
		high:    high,
		samples: sr.N(duration),
		attack:  max(sr.N(parameter.PounceSoundAttack), 1),
	}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}

	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}

		progress := float64(g.pos) / float64(g.samples)
		freq := g.low + (g.high-g.low)*progress

		// Phase accumulation keeps the sweep continuous
		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		// Linear attack, exponential tail
		envelope := math.Min(float64(g.pos)/float64(g.attack), 1.0) * math.Exp(-progress*3)
		sample := 0.3 * envelope * math.Sin(2*math.Pi*g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}
