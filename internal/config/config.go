// Package config loads algoreplay settings from defaults, an optional YAML
// file and ALGOREPLAY_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/algoreplay/gridbfs"
	"github.com/katalvlaran/algoreplay/playback"
	"github.com/katalvlaran/algoreplay/trace"
)

const (
	configFileName = "algoreplay"
	configFileType = "yaml"
	envPrefix      = "ALGOREPLAY"

	keyPacingShort = "pacing.short"
	keyPacingLong  = "pacing.long"
	keySpeed       = "speed"
	keyMaxSteps    = "limits.max_steps"
	keyMaxCells    = "limits.max_cells"
)

// ErrInvalidConfig is returned for values that fail validation.
var ErrInvalidConfig = fmt.Errorf("%w: config: invalid value", trace.ErrInvalidInput)

// Config is the resolved configuration.
type Config struct {
	// Pacing holds the unscaled tick intervals.
	Pacing playback.Pacing
	// Speed divides both intervals; 2 plays twice as fast.
	Speed    float64
	MaxSteps int
	MaxCells int
	// File is the config file that was read, or "".
	File string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Pacing:   playback.DefaultPacing(),
		Speed:    1,
		MaxSteps: trace.DefaultMaxSteps,
		MaxCells: gridbfs.DefaultMaxCells,
	}
}

// Load resolves the configuration. An explicit path must exist; without one,
// ./algoreplay.yaml is read if present and a missing file is not an error.
func Load(path string) (Config, error) {
	d := Default()

	v := viper.New()
	v.SetDefault(keyPacingShort, d.Pacing.Short)
	v.SetDefault(keyPacingLong, d.Pacing.Long)
	v.SetDefault(keySpeed, d.Speed)
	v.SetDefault(keyMaxSteps, d.MaxSteps)
	v.SetDefault(keyMaxCells, d.MaxCells)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Pacing: playback.Pacing{
			Short: v.GetDuration(keyPacingShort),
			Long:  v.GetDuration(keyPacingLong),
		},
		Speed:    v.GetFloat64(keySpeed),
		MaxSteps: v.GetInt(keyMaxSteps),
		MaxCells: v.GetInt(keyMaxCells),
		File:     v.ConfigFileUsed(),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field against the generator and playback limits.
func (c Config) Validate() error {
	if err := c.Pacing.Validate(); err != nil {
		return fmt.Errorf("%w: pacing: %v", ErrInvalidConfig, err)
	}
	if c.Speed < playback.MinSpeed || c.Speed > playback.MaxSpeed {
		return fmt.Errorf("%w: speed %g outside [%g, %g]", ErrInvalidConfig, c.Speed, playback.MinSpeed, playback.MaxSpeed)
	}
	if c.MaxSteps <= 0 || c.MaxSteps > trace.HardStepCeiling {
		return fmt.Errorf("%w: limits.max_steps %d outside [1, %d]", ErrInvalidConfig, c.MaxSteps, trace.HardStepCeiling)
	}
	if c.MaxCells <= 0 || c.MaxCells > gridbfs.CellCeiling {
		return fmt.Errorf("%w: limits.max_cells %d outside [1, %d]", ErrInvalidConfig, c.MaxCells, gridbfs.CellCeiling)
	}
	return nil
}
