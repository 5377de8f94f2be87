package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams everything from s, returning the samples and total count.
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		total += n
		for j := 0; j < n; j++ {
			if buf[j][0] < -2.0 || buf[j][0] > 2.0 {
				t.Fatalf("sample %d out of sane range: %f", total-n+j, buf[j][0])
			}
		}
		if !ok {
			return total
		}
	}
	t.Fatal("streamer never finished")
	return total
}

// TestOscillatorSine verifies sine wave generation stays in range and ends
// at the configured duration
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok {
		t.Error("Expected stream to return ok=true")
	}
	if n != 100 {
		t.Errorf("Expected to stream 100 samples, got %d", n)
	}

	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d channels differ", i)
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorDuration verifies the oscillator emits exactly the
// requested number of samples
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 25 * time.Millisecond

	osc := NewOscillator(800.0, d, WaveSine, rate)
	if got, want := drain(t, osc), rate.N(d); got != want {
		t.Errorf("streamed %d samples, want %d", got, want)
	}
}

// TestNoiseStreamerReusesTable verifies the shared table loops instead of
// generating fresh samples
func TestNoiseStreamerReusesTable(t *testing.T) {
	rate := beep.SampleRate(1000)
	table := []float64{0.1, -0.2, 0.3}

	ns := NewNoiseStreamer(table, 10*time.Millisecond, rate) // 10 samples
	samples := make([][2]float64, 10)
	n, _ := ns.Stream(samples)
	if n != 10 {
		t.Fatalf("streamed %d samples, want 10", n)
	}

	for i := 0; i < n; i++ {
		if samples[i][0] != table[i%len(table)] {
			t.Errorf("sample %d = %f, want table value %f", i, samples[i][0], table[i%len(table)])
		}
	}
}

// TestDecayEnvelopeShape verifies the attack ramps from silence and the
// tail decays monotonically
func TestDecayEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 100 * time.Millisecond
	attack := 10 * time.Millisecond

	// Constant full-scale source isolates the envelope shape.
	src := NewOscillator(0, d, WaveSquare, rate) // zero Hz square holds +1
	env := NewDecayEnvelope(src, d, attack, rate)

	total := rate.N(d)
	buf := make([][2]float64, total)
	n, _ := env.Stream(buf)
	if n != total {
		t.Fatalf("streamed %d samples, want %d", n, total)
	}

	if buf[0][0] != 0 {
		t.Errorf("attack should start silent, got %f", buf[0][0])
	}

	attackEnd := rate.N(attack)
	prev := buf[attackEnd][0]
	for i := attackEnd + 1; i < n; i++ {
		if buf[i][0] > prev {
			t.Fatalf("decay not monotone at sample %d: %f > %f", i, buf[i][0], prev)
		}
		prev = buf[i][0]
	}
	if last := buf[n-1][0]; last > 0.05 {
		t.Errorf("tail did not decay away: %f", last)
	}
}

// TestEnvelopeAttackRelease verifies the linear envelope fades in and out
func TestEnvelopeAttackRelease(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 100 * time.Millisecond

	src := NewOscillator(0, d, WaveSquare, rate)
	env := NewEnvelope(src, d, 30*time.Millisecond, 30*time.Millisecond, rate)

	total := rate.N(d)
	buf := make([][2]float64, total)
	n, _ := env.Stream(buf)
	if n != total {
		t.Fatalf("streamed %d samples, want %d", n, total)
	}

	if buf[0][0] != 0 {
		t.Errorf("attack should start silent, got %f", buf[0][0])
	}
	mid := buf[total/2][0]
	if mid < 0.99 {
		t.Errorf("sustain should hold full scale, got %f", mid)
	}
	if last := buf[n-1][0]; last > 0.01 {
		t.Errorf("release should end near silence, got %f", last)
	}
}

// TestSweepFilterBounded verifies the swept filter stays stable across the
// full cutoff ramp
func TestSweepFilterBounded(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 300 * time.Millisecond

	noise := NewOscillator(0, d, WaveNoise, rate)
	for _, mode := range []FilterMode{FilterLowPass, FilterHighPass, FilterBandPass} {
		swept := NewSweepFilter(NewOscillator(0, d, WaveNoise, rate), mode, 200, 1200, d, rate)
		drain(t, swept)
	}
	drain(t, noise)
}

// TestSweepFilterLowPassAttenuatesHighs verifies a low cutoff strips most
// energy from a high-frequency tone
func TestSweepFilterLowPassAttenuatesHighs(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 200 * time.Millisecond

	tone := NewOscillator(8000.0, d, WaveSine, rate)
	filtered := NewSweepFilter(tone, FilterLowPass, 150, 150, d, rate)

	total := rate.N(d)
	buf := make([][2]float64, total)
	n, _ := filtered.Stream(buf)

	// Skip the settle-in, then measure RMS.
	var sum float64
	count := 0
	for i := n / 4; i < n; i++ {
		sum += buf[i][0] * buf[i][0]
		count++
	}
	rms := sum / float64(count)
	if rms > 0.01 {
		t.Errorf("low-pass left too much high-frequency energy: rms^2=%f", rms)
	}
}
