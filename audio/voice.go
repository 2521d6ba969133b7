package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Voice timing
const (
	voiceDuration = 180 * time.Millisecond
	voiceAttack   = 5 * time.Millisecond
	voiceRelease  = 120 * time.Millisecond
	voiceBaseHz   = 220.0
)

// Levels carry sample indices rather than sample data, so every sample index
// is rendered as a short synthesized voice: the index picks the pitch on a
// two-octave scale and the wave shape
func synthesize(sample int, rate beep.SampleRate) beep.Streamer {
	step := sample % 24
	if step < 0 {
		step += 24
	}
	freq := voiceBaseHz * math.Pow(2, float64(step)/12)
	wave := WaveType((sample / 24) % 4)
	if wave < 0 {
		wave = -wave
	}

	osc := NewOscillator(freq, voiceDuration, wave, rate, int64(sample))
	shaped := NewEnvelope(osc, voiceDuration, voiceAttack, voiceRelease, rate)
	if wave == WaveNoise || wave == WaveSquare {
		return newVolume(shaped, 0.4)
	}
	return shaped
}
