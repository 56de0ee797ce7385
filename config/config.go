// Package config loads optimizer tuning parameters the way
// hunterforge's services layer deployable config: sensible defaults,
// overridden by an optional TOML preset file, overridden again by
// environment variables.
package config

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// HalvingPreset is one successive-halving parameter set, keyed by
// evaluation mode in OptimizerConfig.Presets.
type HalvingPreset struct {
	BaseSims     int     `toml:"base_sims" json:"base_sims"`
	Rounds       int     `toml:"rounds" json:"rounds"`
	SurvivalRate float64 `toml:"survival_rate" json:"survival_rate"`
}

// OptimizerConfig holds every tunable that isn't part of a single
// BuildConfig: evaluation presets, curriculum toggles, and the worker
// pool size used by the batch evaluator.
type OptimizerConfig struct {
	Presets           map[string]HalvingPreset `toml:"presets" json:"-"`
	AdaptiveLargeTier bool                     `toml:"adaptive_large_tier" json:"adaptive_large_tier"`
	AdaptiveThreshold int                      `toml:"adaptive_threshold" json:"adaptive_threshold"`
	MaxWorkers        int                      `toml:"max_workers" json:"max_workers"`
}

// DefaultOptimizerConfig returns the four named evaluation modes from
// the reference optimizer, plus the adaptive large-tier toggle on by
// default.
func DefaultOptimizerConfig() OptimizerConfig {
	return OptimizerConfig{
		Presets: map[string]HalvingPreset{
			"normal":  {BaseSims: 64, Rounds: 3, SurvivalRate: 0.50},
			"fast":    {BaseSims: 16, Rounds: 4, SurvivalRate: 0.25},
			"massive": {BaseSims: 8, Rounds: 5, SurvivalRate: 0.10},
			"ultra":   {BaseSims: 4, Rounds: 6, SurvivalRate: 0.05},
		},
		AdaptiveLargeTier: true,
		AdaptiveThreshold: 5000,
		MaxWorkers:        0, // 0 means GOMAXPROCS
	}
}

// LoadOptimizerConfigFromEnv loads a .env file if present, starts from
// the defaults, applies an optional TOML preset file named by
// HUNTERFORGE_PRESET_FILE, then applies individual HUNTERFORGE_* env
// overrides.
func LoadOptimizerConfigFromEnv() (OptimizerConfig, error) {
	_ = godotenv.Load()

	cfg := DefaultOptimizerConfig()

	if path := os.Getenv("HUNTERFORGE_PRESET_FILE"); path != "" {
		var fileCfg OptimizerConfig
		md, err := toml.DecodeFile(path, &fileCfg)
		if err != nil {
			return cfg, err
		}
		for mode, preset := range fileCfg.Presets {
			cfg.Presets[mode] = preset
		}
		if md.IsDefined("adaptive_large_tier") {
			cfg.AdaptiveLargeTier = fileCfg.AdaptiveLargeTier
		}
		if fileCfg.AdaptiveThreshold != 0 {
			cfg.AdaptiveThreshold = fileCfg.AdaptiveThreshold
		}
		if fileCfg.MaxWorkers != 0 {
			cfg.MaxWorkers = fileCfg.MaxWorkers
		}
	}

	cfg.AdaptiveLargeTier = getEnvBool("HUNTERFORGE_ADAPTIVE_LARGE_TIER", cfg.AdaptiveLargeTier)
	cfg.AdaptiveThreshold = getEnvInt("HUNTERFORGE_ADAPTIVE_THRESHOLD", cfg.AdaptiveThreshold)
	cfg.MaxWorkers = getEnvInt("HUNTERFORGE_MAX_WORKERS", cfg.MaxWorkers)

	return cfg, nil
}

func getEnvInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func getEnvBool(name string, fallback bool) bool {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}
