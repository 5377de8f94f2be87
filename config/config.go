package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"reelspin/audio"
	"reelspin/constants"
	"reelspin/reel"
)

// Config is the file-backed tuning surface. Every field has a default; a
// missing file or a partial file is fine.
type Config struct {
	Spin  SpinConfig  `yaml:"spin"`
	Audio AudioConfig `yaml:"audio"`
	Cover CoverConfig `yaml:"cover"`
}

// SpinConfig tunes the rare-event injection. The probabilities and the
// insertion window are presentation values with no deeper semantics, so
// they stay configurable.
type SpinConfig struct {
	BonusLandChance   float64 `yaml:"bonus_land_chance"`
	BonusAppearChance float64 `yaml:"bonus_appear_chance"`
	WindowBefore      int     `yaml:"window_before"`
	WindowAfter       int     `yaml:"window_after"`
}

// AudioConfig tunes the synthesizer. Environment variables still override
// these values after the file is applied.
type AudioConfig struct {
	Enabled      *bool   `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"`
	SampleRate   int     `yaml:"sample_rate"`
}

// CoverConfig points the persist-cover action at its endpoint.
type CoverConfig struct {
	BaseURL string `yaml:"base_url"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		Spin: SpinConfig{
			BonusLandChance:   constants.DefaultBonusLandChance,
			BonusAppearChance: constants.DefaultBonusAppearChance,
			WindowBefore:      constants.BonusWindowBefore,
			WindowAfter:       constants.BonusWindowAfter,
		},
		Cover: CoverConfig{
			BaseURL: "http://localhost:8080",
		},
	}
}

// NewFromYAML loads configuration from a YAML file over the defaults. A
// missing file returns the defaults without error; a malformed file is an
// error.
func NewFromYAML(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// BonusConfig converts the spin section for the session core.
func (c *Config) BonusConfig() reel.BonusConfig {
	return reel.BonusConfig{
		LandChance:   c.Spin.BonusLandChance,
		AppearChance: c.Spin.BonusAppearChance,
		WindowBefore: c.Spin.WindowBefore,
		WindowAfter:  c.Spin.WindowAfter,
	}
}

// AudioConfig builds the synthesizer settings: defaults, then the file,
// then environment overrides.
func (c *Config) AudioConfig() *audio.Config {
	cfg := audio.DefaultConfig()
	if c.Audio.Enabled != nil {
		cfg.Enabled = *c.Audio.Enabled
	}
	if c.Audio.MasterVolume > 0 {
		cfg.MasterVolume = c.Audio.MasterVolume
		if cfg.MasterVolume > 1 {
			cfg.MasterVolume = 1
		}
	}
	if c.Audio.SampleRate > 0 {
		cfg.SampleRate = c.Audio.SampleRate
	}
	return audio.ApplyEnv(cfg)
}
