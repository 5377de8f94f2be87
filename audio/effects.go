package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// noiseStreamer replays a slice of the shared noise table instead of
// generating fresh samples, so every noise-based effect reuses one buffer.
type noiseStreamer struct {
	table    []float64
	pos      int
	duration int
	position int
}

// NewNoiseStreamer streams duration's worth of samples from the table,
// looping when the table is shorter than the effect.
func NewNoiseStreamer(table []float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &noiseStreamer{
		table:    table,
		duration: rate.N(duration),
	}
}

func (ns *noiseStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if len(ns.table) == 0 {
		return 0, false
	}
	for i := range samples {
		if ns.position >= ns.duration {
			return i, false
		}

		val := ns.table[ns.pos]
		samples[i][0] = val
		samples[i][1] = val

		ns.pos++
		if ns.pos >= len(ns.table) {
			ns.pos = 0
		}
		ns.position++
	}
	return len(samples), true
}

func (ns *noiseStreamer) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0

		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// decayEnvelope shapes a stream with a linear attack followed by an
// exponential decay to the end of the effect
type decayEnvelope struct {
	streamer      beep.Streamer
	position      int
	attackSamples int
	totalSamples  int
	tau           float64 // decay time constant in samples
}

// NewDecayEnvelope creates an attack + exponential-decay envelope. The decay
// constant is a fifth of the tail, which fades the effect below audibility
// by its end.
func NewDecayEnvelope(s beep.Streamer, duration, attack time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	if att > total {
		att = total
	}
	tau := float64(total-att) / 5.0
	if tau < 1 {
		tau = 1
	}

	return &decayEnvelope{
		streamer:      s,
		attackSamples: att,
		totalSamples:  total,
		tau:           tau,
	}
}

func (e *decayEnvelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		} else {
			vol = math.Exp(-float64(e.position-e.attackSamples) / e.tau)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *decayEnvelope) Err() error { return e.streamer.Err() }

// FilterMode selects the sweepFilter response
type FilterMode int

const (
	FilterLowPass FilterMode = iota
	FilterHighPass
	FilterBandPass
)

// sweepFilter is a state-variable filter whose cutoff glides between two
// frequencies over the sweep duration, then holds
type sweepFilter struct {
	streamer     beep.Streamer
	mode         FilterMode
	fromHz       float64
	toHz         float64
	sweepSamples int
	position     int
	rate         beep.SampleRate

	low  [2]float64
	band [2]float64
}

// NewSweepFilter filters a stream with a cutoff sweeping fromHz to toHz over
// sweep. Equal endpoints give a fixed-cutoff filter.
func NewSweepFilter(s beep.Streamer, mode FilterMode, fromHz, toHz float64, sweep time.Duration, rate beep.SampleRate) beep.Streamer {
	sweepSamples := rate.N(sweep)
	if sweepSamples < 1 {
		sweepSamples = 1
	}
	return &sweepFilter{
		streamer:     s,
		mode:         mode,
		fromHz:       fromHz,
		toHz:         toHz,
		sweepSamples: sweepSamples,
		rate:         rate,
	}
}

func (f *sweepFilter) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)

	const q = 1.0
	for i := 0; i < n; i++ {
		t := float64(f.position) / float64(f.sweepSamples)
		if t > 1 {
			t = 1
		}
		cutoff := f.fromHz + (f.toHz-f.fromHz)*t

		coef := 2 * math.Sin(math.Pi*cutoff/float64(f.rate))
		if coef > 0.99 {
			coef = 0.99
		}

		for ch := 0; ch < 2; ch++ {
			in := samples[i][ch]
			f.low[ch] += coef * f.band[ch]
			high := in - f.low[ch] - q*f.band[ch]
			f.band[ch] += coef * high

			switch f.mode {
			case FilterLowPass:
				samples[i][ch] = f.low[ch]
			case FilterHighPass:
				samples[i][ch] = high
			case FilterBandPass:
				samples[i][ch] = f.band[ch]
			}
		}
		f.position++
	}

	return n, ok
}

func (f *sweepFilter) Err() error { return f.streamer.Err() }

// newVolume creates a volume effect safely.
// math.Log2(0) is -Inf, so zero volume becomes silent instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
