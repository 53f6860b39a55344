// Package config loads the settings of the fet command from defaults, an
// optional config file, FET_ environment variables and command line flags,
// all merged by viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/earfet/fet"
)

// Config is the complete fet configuration.
type Config struct {
	// Degrees is the number of distinct degrees in a listening exercise.
	Degrees int `mapstructure:"degrees"`
	// Exercises is how many major and minor listening exercises to create.
	Exercises int `mapstructure:"exercises"`
	// Tempo in beats per minute.
	Tempo int `mapstructure:"tempo"`
	// Range names a built in pitch range; see PresetNames.
	Range string `mapstructure:"range"`
	// RangeLow and RangeHigh override Range when both are set.
	RangeLow  int `mapstructure:"range_low"`
	RangeHigh int `mapstructure:"range_high"`
	// DirectoryPrefix is prepended to every output path.
	DirectoryPrefix string `mapstructure:"directory_prefix"`
	// Pause is the silence, in seconds, before the note of a singing exercise.
	Pause int `mapstructure:"pause"`
	// AllSingleDegree writes every single degree exercise of every key
	// instead of sampling random ones.
	AllSingleDegree bool `mapstructure:"all_single_degree"`
	// Seed seeds the random source; 0 picks a seed from the clock.
	Seed uint64 `mapstructure:"seed"`
	// MaxAttempts bounds the colliding attempts for a single exercise.
	MaxAttempts int `mapstructure:"max_attempts"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Degrees:         1,
		Exercises:       1,
		Tempo:           120,
		Range:           "piano",
		DirectoryPrefix: ".",
		Pause:           3,
		MaxAttempts:     10000,
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

// SetDefaults registers the values of Default on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("degrees", d.Degrees)
	v.SetDefault("exercises", d.Exercises)
	v.SetDefault("tempo", d.Tempo)
	v.SetDefault("range", d.Range)
	v.SetDefault("range_low", d.RangeLow)
	v.SetDefault("range_high", d.RangeHigh)
	v.SetDefault("directory_prefix", d.DirectoryPrefix)
	v.SetDefault("pause", d.Pause)
	v.SetDefault("all_single_degree", d.AllSingleDegree)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("max_attempts", d.MaxAttempts)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)
}

// Init prepares v: defaults, the config file (cfgFile if given, otherwise
// fet.yaml in the working directory or ConfigDir) and FET_ environment
// variables. A missing config file is not an error.
func Init(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("fet")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(ConfigDir())
	}
	v.SetEnvPrefix("FET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("could not read config: %w", err)
		}
	}
	return nil
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, errs
	}
	return cfg, nil
}

// ConfigDir is the per user directory searched for fet.yaml.
func ConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "fet")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "fet")
}

// PitchRange resolves the pitch range exercises are sampled from.
func (c *Config) PitchRange() (fet.PitchRange, error) {
	if c.RangeLow != 0 || c.RangeHigh != 0 {
		return fet.PitchRange{Low: c.RangeLow, High: c.RangeHigh}, nil
	}
	r, ok := Preset(c.Range)
	if !ok {
		return fet.PitchRange{}, fmt.Errorf("unknown pitch range %q, expected one of %v", c.Range, PresetNames())
	}
	return r, nil
}

// PauseDuration returns Pause as a time.Duration.
func (c *Config) PauseDuration() time.Duration {
	return time.Duration(c.Pause) * time.Second
}
