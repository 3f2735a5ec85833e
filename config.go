package circls

import (
	"os"

	"gopkg.in/yaml.v3"
)

// FlattenOrientation selects whether the camera matrix is walked by rows
// or by columns before detection.
type FlattenOrientation string

const (
	FlattenRows FlattenOrientation = "rows"
	FlattenCols FlattenOrientation = "cols"
)

// SessionConfig holds everything needed to bring up one end of a link:
// scrambler seed material, camera flatten orientation, detector
// thresholds, and the IR channel's pulse timing base. It is loaded from
// YAML, mirroring the surrounding tooling's config.yml convention.
type SessionConfig struct {
	SeedLen         int                `yaml:"seed_len"`
	InitialRegister uint32             `yaml:"initial_register"`
	Flatten         FlattenOrientation `yaml:"flatten"`
	ChromaThreshold float64            `yaml:"chroma_threshold"`
	LightnessThresh float64            `yaml:"lightness_threshold"`
	IrPulseBaseNs   int                `yaml:"ir_pulse_base_ns"`
	DebugLevel      int                `yaml:"debug_level"`
}

// DefaultSessionConfig returns a SessionConfig populated with the
// package's documented defaults.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		SeedLen:         DefaultSeedLen,
		InitialRegister: DefaultInitialRegister,
		Flatten:         FlattenRows,
		ChromaThreshold: DefaultChromaThreshold,
		LightnessThresh: DefaultLightnessThreshold,
		IrPulseBaseNs:   560000,
		DebugLevel:      0,
	}
}

// LoadSessionConfig reads and validates a SessionConfig from a YAML
// file, starting from DefaultSessionConfig so a partial file only
// overrides the fields it sets.
func LoadSessionConfig(path string) (SessionConfig, error) {
	cfg := DefaultSessionConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, wrapErr(SystemError, err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, wrapErr(SystemError, err, "parsing config %s", path)
	}
	if cfg.SeedLen < 1 || cfg.SeedLen > MaxSeedLen {
		return cfg, newErr(BadLength, "config seed_len %d out of range [1,%d]", cfg.SeedLen, MaxSeedLen)
	}
	if cfg.Flatten != FlattenRows && cfg.Flatten != FlattenCols {
		return cfg, newErr(BadLength, "config flatten %q must be %q or %q", cfg.Flatten, FlattenRows, FlattenCols)
	}
	return cfg, nil
}

// NewScrambler builds the Scrambler described by cfg and seed.
func (c SessionConfig) NewScrambler(seed uint32) (*Scrambler, error) {
	return NewScrambler(seed, c.SeedLen, c.InitialRegister)
}

// NewDetector builds the Detector described by cfg's thresholds.
func (c SessionConfig) NewDetector() *Detector {
	return &Detector{
		ChromaThreshold:    c.ChromaThreshold,
		LightnessThreshold: c.LightnessThresh,
	}
}
