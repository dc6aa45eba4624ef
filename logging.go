package astro

import (
	"os"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

// NewLogger returns a go-kit structured logger filtered to LoadConfig's
// LogLevel, writing logfmt to stderr. Grounded on the teacher's go-kit
// usage being implicit (it imports go-kit/kit/log only through its
// transitive dependency tree in a few places); this module promotes
// go-kit logging to the package's explicit diagnostic channel, per
// SPEC_FULL.md's ambient stack requirement, feeding
// AdaptiveStepper.Logger (integrator_adaptive.go) and any future
// component that needs to report a non-fatal condition.
func NewLogger() log.Logger {
	base := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	base = log.With(base, "ts", log.DefaultTimestampUTC)

	cfg := LoadConfig()
	var option level.Option
	switch cfg.LogLevel {
	case "debug":
		option = level.AllowDebug()
	case "warn":
		option = level.AllowWarn()
	case "error":
		option = level.AllowError()
	default:
		option = level.AllowInfo()
	}
	return level.NewFilter(base, option)
}
