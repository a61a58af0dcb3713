package assets

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"
)

// SampleRate is the PCM sample rate of every synthesized buffer and of the
// audio context that plays them.
const SampleRate = 44100

// No recorded media ships with the game; every sound is synthesized at
// startup. Buffers are mono float64 at unity gain until the final conversion
// to the interleaved stereo int16 little-endian format the player expects.

const (
	waveSine = iota
	waveSquare
	waveSaw
	waveTriangle
	waveNoise
)

func oscillator(waveType int, freq float64, samples int) []float64 {
	buf := make([]float64, samples)
	phase := 0.0
	phaseInc := freq / SampleRate

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		case waveTriangle:
			buf[i] = 1.0 - 4.0*math.Abs(phase-0.5)
		case waveNoise:
			buf[i] = rand.Float64()*2 - 1
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope shapes attack and release in place.
func applyEnvelope(buf []float64, attack, release time.Duration) {
	total := len(buf)
	attackSamples := durationToSamples(attack)
	releaseSamples := durationToSamples(release)

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// mix adds b into a scaled, extending a if b is longer.
func mix(a, b []float64, bScale float64) []float64 {
	if len(b) > len(a) {
		extended := make([]float64, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * bScale
	}
	return a
}

func concat(a, b []float64) []float64 {
	out := make([]float64, len(a)+len(b))
	copy(out, a)
	copy(out[len(a):], b)
	return out
}

func durationToSamples(d time.Duration) int {
	return int(d.Seconds() * SampleRate)
}

// note synthesizes one enveloped tone. A zero frequency is a rest.
func note(waveType int, freq float64, dur time.Duration) []float64 {
	samples := durationToSamples(dur)
	if freq == 0 {
		return make([]float64, samples)
	}
	buf := oscillator(waveType, freq, samples)
	applyEnvelope(buf, 5*time.Millisecond, 30*time.Millisecond)
	return buf
}

// melody concatenates notes of equal duration; zero entries are rests.
func melody(waveType int, step time.Duration, freqs ...float64) []float64 {
	var out []float64
	for _, f := range freqs {
		out = concat(out, note(waveType, f, step))
	}
	return out
}

// stereo16 converts mono float64 to the interleaved stereo int16 LE bytes
// the audio context plays, hard-clipping anything outside unity.
func stereo16(in []float64, gain float64) []byte {
	out := make([]byte, len(in)*4)
	for i, v := range in {
		v *= gain
		if v > 1.0 {
			v = 1.0
		} else if v < -1.0 {
			v = -1.0
		}
		s := int16(v * 32767)
		idx := i * 4
		binary.LittleEndian.PutUint16(out[idx:], uint16(s))
		binary.LittleEndian.PutUint16(out[idx+2:], uint16(s))
	}
	return out
}

// Note frequencies used by the cues and tracks, equal temperament.
const (
	noteC4  = 261.63
	noteD4  = 293.66
	noteE4  = 329.63
	noteF4  = 349.23
	noteG4  = 392.00
	noteA4  = 440.00
	noteB4  = 493.88
	noteC5  = 523.25
	noteD5  = 587.33
	noteE5  = 659.25
	noteG5  = 783.99
	noteA5  = 880.00
	noteB5  = 987.77
	noteE6  = 1318.51
	noteA6  = 1760.00
	noteA3  = 220.00
	noteE3  = 164.81
	noteF3  = 174.61
	noteG3  = 196.00
)

// hitSound is a short harsh buzz for taking damage.
func hitSound() []byte {
	buf := oscillator(waveSaw, 100, durationToSamples(250*time.Millisecond))
	applyEnvelope(buf, 2*time.Millisecond, 180*time.Millisecond)
	return stereo16(buf, 0.8)
}

// goodBallSound is a bright two-note chirp for a matching hit.
func goodBallSound() []byte {
	first := note(waveSquare, noteB5, 70*time.Millisecond)
	second := note(waveSquare, noteE6, 140*time.Millisecond)
	return stereo16(concat(first, second), 0.5)
}

// wrongBallSound sags downward for a mismatched hit.
func wrongBallSound() []byte {
	first := note(waveSquare, noteE4, 110*time.Millisecond)
	second := note(waveSquare, noteC4, 220*time.Millisecond)
	return stereo16(concat(first, second), 0.5)
}

// sugoiSound is a bell for combo milestones: fundamental plus one overtone.
func sugoiSound() []byte {
	samples := durationToSamples(600 * time.Millisecond)
	fund := oscillator(waveSine, noteA5, samples)
	applyEnvelope(fund, 3*time.Millisecond, 500*time.Millisecond)
	over := oscillator(waveSine, noteA6, samples)
	applyEnvelope(over, 3*time.Millisecond, 300*time.Millisecond)
	return stereo16(mix(fund, over, 0.3/0.7), 0.7)
}

// affinitySound is a soft shimmer marking the affinity rotation.
func affinitySound() []byte {
	samples := durationToSamples(450 * time.Millisecond)
	low := oscillator(waveSine, noteA4, samples)
	applyEnvelope(low, 40*time.Millisecond, 350*time.Millisecond)
	high := oscillator(waveSine, noteE5, samples)
	applyEnvelope(high, 80*time.Millisecond, 300*time.Millisecond)
	return stereo16(mix(low, high, 0.6), 0.6)
}

// gameOverSound is a slow falling line for the results screen.
func gameOverSound() []byte {
	buf := melody(waveTriangle, 450*time.Millisecond, noteE4, noteD4, noteC4, noteA3)
	return stereo16(buf, 0.6)
}

// trackA is the upbeat background loop.
func trackA() []byte {
	step := 180 * time.Millisecond
	lead := melody(waveSquare, step,
		noteA4, noteC5, noteE5, noteC5, noteA4, noteC5, noteE5, noteG5,
		noteF4, noteA4, noteC5, noteA4, noteF4, noteA4, noteC5, noteE5,
		noteG4, noteB4, noteD5, noteB4, noteG4, noteB4, noteD5, noteG5,
		noteA4, noteC5, noteE5, noteA5, noteG5, noteE5, noteC5, noteA4,
	)
	bass := melody(waveTriangle, 2*step,
		noteA3, noteA3, noteF3, noteF3, noteG3, noteG3, noteA3, noteA3,
		noteA3, noteA3, noteF3, noteF3, noteG3, noteG3, noteA3, noteA3,
	)
	loop := mix(lead, bass, 0.8)
	var out []float64
	for i := 0; i < 4; i++ {
		out = concat(out, loop)
	}
	return stereo16(out, 0.28)
}

// trackB is the calmer alternate loop.
func trackB() []byte {
	step := 240 * time.Millisecond
	lead := melody(waveTriangle, step,
		noteE5, noteD5, noteC5, noteB4, noteA4, noteB4, noteC5, noteB4,
		noteC5, noteB4, noteA4, noteG4, noteF4, noteG4, noteA4, 0,
		noteE5, noteD5, noteC5, noteB4, noteA4, noteB4, noteC5, noteD5,
		noteE5, noteC5, noteA4, noteC5, noteB4, noteG4, noteA4, 0,
	)
	bass := melody(waveSine, 2*step,
		noteA3, noteA3, noteF3, noteF3, noteG3, noteG3, noteA3, noteA3,
		noteA3, noteA3, noteF3, noteF3, noteG3, noteG3, noteA3, noteA3,
	)
	loop := mix(lead, bass, 0.9)
	var out []float64
	for i := 0; i < 4; i++ {
		out = concat(out, loop)
	}
	return stereo16(out, 0.25)
}
