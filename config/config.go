// Package config holds the tunables of the percolath command, backed by Viper.
//
// Keys (environment override: PERCOLATH_ plus the key upper-cased with '.'
// replaced by '_', e.g. PERCOLATH_SWEEP_STEP):
//
//	engine.seed          int64   0 means seed from the wall clock
//	sweep.t_min          float   0
//	sweep.t_max          float   1
//	sweep.step           float   0.01
//	sweep.simulations    int     1
//	output.path          string  "" (stdout)
//	output.sqlite        string  "" (disabled)
//	output.batch_size    int     500
//	logging.level        string  "info"
package config

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/katalvlaran/percolath/sweep"
)

// EnvPrefix is prepended to environment overrides.
const EnvPrefix = "PERCOLATH"

// Config manages run configuration using Viper
type Config struct {
	v *viper.Viper
}

// NewConfig creates a new configuration with defaults
func NewConfig() *Config {
	v := viper.New()

	def := sweep.DefaultConfig()

	// Engine parameters
	v.SetDefault("engine.seed", int64(0))

	// Sweep grid
	v.SetDefault("sweep.t_min", def.TMin)
	v.SetDefault("sweep.t_max", def.TMax)
	v.SetDefault("sweep.step", def.Step)
	v.SetDefault("sweep.simulations", def.Simulations)

	// Output
	v.SetDefault("output.path", "")
	v.SetDefault("output.sqlite", "")
	v.SetDefault("output.batch_size", 500)

	// Logging parameters
	v.SetDefault("logging.level", "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile loads configuration from file
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	return c.v.ReadInConfig()
}

// Getters
func (c *Config) Seed() int64 { return c.v.GetInt64("engine.seed") }
func (c *Config) TMin() float64 { return c.v.GetFloat64("sweep.t_min") }
func (c *Config) TMax() float64 { return c.v.GetFloat64("sweep.t_max") }
func (c *Config) Step() float64 { return c.v.GetFloat64("sweep.step") }
func (c *Config) Simulations() int { return c.v.GetInt("sweep.simulations") }
func (c *Config) OutputPath() string { return c.v.GetString("output.path") }
func (c *Config) SQLitePath() string { return c.v.GetString("output.sqlite") }
func (c *Config) BatchSize() int { return c.v.GetInt("output.batch_size") }
func (c *Config) LogLevel() string { return c.v.GetString("logging.level") }

// Sweep assembles the sweep grid from the sweep.* keys.
func (c *Config) Sweep() sweep.Config {
	return sweep.Config{
		TMin:        c.TMin(),
		TMax:        c.TMax(),
		Step:        c.Step(),
		Simulations: c.Simulations(),
	}
}

// Set allows dynamic configuration changes
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// CreateLogger creates a zerolog console logger based on config. A nil out
// writes to stderr so tabular output on stdout stays clean.
func (c *Config) CreateLogger(out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stderr
	}
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
		NoColor:    true,
	}).Level(level).With().Timestamp().Str("service", "percolath").Logger()
}
