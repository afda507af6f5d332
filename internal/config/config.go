package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/printforge/meshmetrics/pkg/analysis"
)

// Config carries the tunable constants of the analysis and ingestion
// pipelines. The unit bands and complexity tiers are heuristic contract
// values; exposing them here keeps the band edges adjustable without a code
// change.
type Config struct {
	Analysis AnalysisConfig `toml:"analysis"`
	Ingest   IngestConfig   `toml:"ingest"`
}

// AnalysisConfig mirrors analysis.Thresholds in TOML form
type AnalysisConfig struct {
	MMBandMin   float64 `toml:"mm_band_min"`
	MMBandMax   float64 `toml:"mm_band_max"`
	MMLooseMax  float64 `toml:"mm_loose_max"`
	InchBandMin float64 `toml:"inch_band_min"`
	SimpleMax   int     `toml:"simple_max"`
	ModerateMax int     `toml:"moderate_max"`
	ComplexMax  int     `toml:"complex_max"`
}

// IngestConfig controls the directory scanner and watcher
type IngestConfig struct {
	Extensions []string `toml:"extensions"`
	DebounceMS int      `toml:"debounce_ms"`
}

// Default returns the built-in configuration
func Default() Config {
	th := analysis.DefaultThresholds()
	return Config{
		Analysis: AnalysisConfig{
			MMBandMin:   th.MMBandMin,
			MMBandMax:   th.MMBandMax,
			MMLooseMax:  th.MMLooseMax,
			InchBandMin: th.InchBandMin,
			SimpleMax:   th.SimpleMax,
			ModerateMax: th.ModerateMax,
			ComplexMax:  th.ComplexMax,
		},
		Ingest: IngestConfig{
			Extensions: []string{".stl"},
			DebounceMS: 500,
		},
	}
}

// Load reads a TOML config file over the defaults, so partial files only
// override the keys they name.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Thresholds converts the analysis section to the analyzer's threshold set
func (a AnalysisConfig) Thresholds() analysis.Thresholds {
	return analysis.Thresholds{
		MMBandMin:   a.MMBandMin,
		MMBandMax:   a.MMBandMax,
		MMLooseMax:  a.MMLooseMax,
		InchBandMin: a.InchBandMin,
		SimpleMax:   a.SimpleMax,
		ModerateMax: a.ModerateMax,
		ComplexMax:  a.ComplexMax,
	}
}
