package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ToneGenerator is a finite sine sweep from startFreq to endFreq with a linear fade out
type ToneGenerator struct {
	sr        beep.SampleRate
	startFreq float64
	endFreq   float64
	total     int
	pos       int
	phase     float64
}

// NewToneGenerator creates a sweep lasting duration; equal frequencies give a plain tone
func NewToneGenerator(sr beep.SampleRate, startFreq, endFreq float64, duration time.Duration) *ToneGenerator {
	return &ToneGenerator{
		sr:        sr,
		startFreq: startFreq,
		endFreq:   endFreq,
		total:     sr.N(duration),
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		progress := float64(g.pos) / float64(g.total)
		freq := g.startFreq + (g.endFreq-g.startFreq)*progress

		// Short attack avoids a click at the start
		attack := math.Min(float64(g.pos)/float64(g.sr)/0.005, 1.0)
		sample := 0.25 * attack * (1 - progress) * math.Sin(2*math.Pi*g.phase)

		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase) // Keep in [0, 1)
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// BuzzGenerator is a finite clipped square-ish tone that drops in pitch and decays, used for rejections
type BuzzGenerator struct {
	sr    beep.SampleRate
	freq  float64
	total int
	pos   int
	phase float64
}

// NewBuzzGenerator creates a buzz at freq lasting duration
func NewBuzzGenerator(sr beep.SampleRate, freq float64, duration time.Duration) *BuzzGenerator {
	return &BuzzGenerator{
		sr:    sr,
		freq:  freq,
		total: sr.N(duration),
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		progress := float64(g.pos) / float64(g.total)

		// Overdriven sine clipped toward a square, pitch sagging by a quarter over the cue
		raw := math.Max(-0.6, math.Min(0.6, 2*math.Sin(2*math.Pi*g.phase)))
		attack := math.Min(float64(g.pos)/float64(g.sr)/0.01, 1.0)
		decay := (1 - progress) * (1 - progress)
		sample := 0.3 * raw * attack * decay

		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += g.freq * (1 - 0.25*progress) / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
