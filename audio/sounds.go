package audio

import (
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"

	"reelspin/constants"
)

// makeNoiseTable generates the shared mono noise buffer reused by every
// noise-based effect and across spins.
func makeNoiseTable(rate beep.SampleRate) []float64 {
	table := make([]float64, rate.N(constants.NoiseBufferDuration))
	for i := range table {
		table[i] = rand.Float64()*2 - 1
	}
	return table
}

// stagger delays a streamer by prefixing silence.
func stagger(s beep.Streamer, delay time.Duration, rate beep.SampleRate) beep.Streamer {
	if delay <= 0 {
		return s
	}
	return beep.Seq(beep.Silence(rate.N(delay)), s)
}

// CreateWhooshSound generates the spin-start whoosh: low-pass filtered noise
// with the cutoff ramping 200 to 1200 Hz, rising then decaying away
func CreateWhooshSound(cfg *Config, noise []float64) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	src := NewNoiseStreamer(noise, constants.WhooshSoundDuration, rate)
	swept := NewSweepFilter(src, FilterLowPass,
		constants.WhooshSweepFromHz, constants.WhooshSweepToHz,
		constants.WhooshSweepDuration, rate)
	shaped := NewDecayEnvelope(swept, constants.WhooshSoundDuration, constants.WhooshSoundAttack, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundWhoosh]*cfg.MasterVolume)
}

// CreateTickSound generates one reel tick: a short 800 Hz sine blip
func CreateTickSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(constants.TickSoundFreqHz, constants.TickSoundDuration, WaveSine, rate)
	shaped := NewDecayEnvelope(osc, constants.TickSoundDuration, constants.TickSoundAttack, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundTick]*cfg.MasterVolume)
}

// fanfareFreqs is C major triad plus octave (C5 E5 G5 C6)
var fanfareFreqs = []float64{523.25, 659.25, 783.99, 1046.50}

// CreateFanfareSound generates the normal landing fanfare: four ascending
// sine notes staggered 100ms apart, each with a short attack and an
// exponential decay
func CreateFanfareSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	parts := make([]beep.Streamer, 0, len(fanfareFreqs))
	for i, freq := range fanfareFreqs {
		osc := NewOscillator(freq, constants.FanfareNoteDuration, WaveSine, rate)
		note := NewDecayEnvelope(osc, constants.FanfareNoteDuration, constants.FanfareNoteAttack, rate)
		parts = append(parts, stagger(newVolume(note, 0.5), time.Duration(i)*constants.FanfareStagger, rate))
	}

	return newVolume(beep.Mix(parts...), cfg.EffectVolumes[SoundFanfare]*cfg.MasterVolume)
}

// CreatePopSound generates the confetti pop: a band-pass noise burst with
// the center frequency sweeping 1200 down to 600 Hz
func CreatePopSound(cfg *Config, noise []float64) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	src := NewNoiseStreamer(noise, constants.PopSoundDuration, rate)
	swept := NewSweepFilter(src, FilterBandPass,
		constants.PopSweepFromHz, constants.PopSweepToHz,
		constants.PopSoundDuration, rate)
	shaped := NewDecayEnvelope(swept, constants.PopSoundDuration, constants.PopSoundAttack, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundPop]*cfg.MasterVolume)
}

// bonusFreqs is a brighter rising line in D (D5 F#5 A5 D6)
var bonusFreqs = []float64{587.33, 739.99, 880.00, 1174.66}

// CreateBonusFanfareSound generates the rare-event fanfare: a brighter
// four-note rise staggered 120ms apart, layered with a high-pass noise
// shimmer that fades in over 300ms and out by 700ms
func CreateBonusFanfareSound(cfg *Config, noise []float64) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	parts := make([]beep.Streamer, 0, len(bonusFreqs)+1)
	for i, freq := range bonusFreqs {
		osc := NewOscillator(freq, constants.BonusNoteDuration, WaveSine, rate)
		note := NewDecayEnvelope(osc, constants.BonusNoteDuration, constants.BonusNoteAttack, rate)
		parts = append(parts, stagger(newVolume(note, 0.5), time.Duration(i)*constants.BonusStagger, rate))
	}

	shimmerSrc := NewNoiseStreamer(noise, constants.ShimmerDuration, rate)
	shimmer := NewSweepFilter(shimmerSrc, FilterHighPass,
		constants.ShimmerHighPassHz, constants.ShimmerHighPassHz,
		constants.ShimmerDuration, rate)
	shimmerShaped := NewEnvelope(shimmer, constants.ShimmerDuration,
		constants.ShimmerAttack, constants.ShimmerRelease, rate)
	parts = append(parts, newVolume(shimmerShaped, 0.25))

	return newVolume(beep.Mix(parts...), cfg.EffectVolumes[SoundBonusFanfare]*cfg.MasterVolume)
}
