package astro

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds the module's non-physical runtime settings: output
// paths, default tolerances, and logging verbosity. Physical constants
// (constants.go) are never configurable - only operational knobs are.
//
// Grounded on the teacher's _smdconfig/smdConfig() lazy singleton
// (config.go), generalized from SPICE/VSOP87 ephemeris-backend toggles
// (which this module's Non-goals drop) to the adaptive-step defaults
// and export directory SPEC_FULL.md's ambient stack calls for.
type Config struct {
	OutputDir        string
	DefaultTolerance float64
	DefaultMinStep   float64
	DefaultMaxStep   float64
	LogLevel         string
}

var (
	configLoaded = false
	config       Config
)

// LoadConfig reads astrocore.toml from the directory named by the
// ASTROCORE_CONFIG environment variable, caching the result the same
// way the teacher's smdConfig caches cfgLoaded. Missing configuration
// is not an error here (unlike the teacher, which panics): every field
// has a workable default, since this module's core has no mandatory
// external dependency the way the teacher's SPICE/VSOP87 toggles do.
func LoadConfig() Config {
	if configLoaded {
		return config
	}
	config = Config{
		OutputDir:        ".",
		DefaultTolerance: 1e-9,
		DefaultMinStep:   1e-3,
		DefaultMaxStep:   300,
		LogLevel:         "info",
	}

	confPath := os.Getenv("ASTROCORE_CONFIG")
	if confPath != "" {
		viper.SetConfigName("astrocore")
		viper.AddConfigPath(confPath)
		if err := viper.ReadInConfig(); err == nil {
			if v := viper.GetString("output.directory"); v != "" {
				config.OutputDir = v
			}
			if v := viper.GetFloat64("integration.tolerance"); v != 0 {
				config.DefaultTolerance = v
			}
			if v := viper.GetFloat64("integration.min_step"); v != 0 {
				config.DefaultMinStep = v
			}
			if v := viper.GetFloat64("integration.max_step"); v != 0 {
				config.DefaultMaxStep = v
			}
			if v := viper.GetString("logging.level"); v != "" {
				config.LogLevel = v
			}
		} else {
			fmt.Fprintf(os.Stderr, "astro: could not read config at %s: %v (using defaults)\n", confPath, err)
		}
	}

	configLoaded = true
	return config
}
