package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"reelspin/constants"
)

// Config holds the synthesizer settings
type Config struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultConfig returns the stock audio settings
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.8,
		EffectVolumes: map[SoundType]float64{
			SoundWhoosh:       1.0,
			SoundTick:         0.6,
			SoundFanfare:      1.0,
			SoundPop:          0.9,
			SoundBonusFanfare: 1.0,
		},
		SampleRate: constants.AudioSampleRate,
	}
}

// LoadConfig loads audio configuration from environment variables on top of
// the defaults
func LoadConfig() *Config {
	return ApplyEnv(DefaultConfig())
}

// ApplyEnv overrides cfg with environment variables, so env settings win
// over any file-derived values.
func ApplyEnv(cfg *Config) *Config {
	if enabled := os.Getenv("REELSPIN_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100, converted to 0.0-1.0
	if volume := os.Getenv("REELSPIN_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = float64(val) / 100.0
			if cfg.MasterVolume < 0 {
				cfg.MasterVolume = 0
			}
			if cfg.MasterVolume > 1 {
				cfg.MasterVolume = 1
			}
		}
	}

	// Per-effect volumes from JSON, keyed by effect name
	if effectVols := os.Getenv("REELSPIN_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for st := SoundType(0); st < soundTypeCount; st++ {
				if v, ok := volumes[st.String()]; ok {
					cfg.EffectVolumes[st] = v
				}
			}
		}
	}

	if sampleRate := os.Getenv("REELSPIN_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
