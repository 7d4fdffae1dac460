package logger

import (
	"os"

	"moviehub/pkg/config"

	zl "github.com/rs/zerolog"
)

// log is the unexported package-level logger instance
var log *logger

type logger struct {
	engine *zl.Logger
}

func init() {
	// usable before InitLogger runs, e.g. from tests
	engine := zl.New(os.Stdout)
	log = &logger{engine: &engine}
}

// InitLogger initializes the logger with configuration
func InitLogger(cfg *config.Config) {
	logLvl := getLogLevel(cfg.Log.Level)

	zl.SetGlobalLevel(logLvl)
	zl.TimeFieldFormat = zl.TimeFormatUnix

	engine := zl.New(os.Stdout).With().
		Timestamp().
		Caller().
		Logger()

	log = &logger{
		engine: &engine,
	}
}

// getLogLevel returns the log level based on the string input
func getLogLevel(level string) zl.Level {
	switch level {
	case DebugLevel:
		return zl.DebugLevel
	case InfoLevel:
		return zl.InfoLevel
	case WarnLevel:
		return zl.WarnLevel
	case ErrorLevel:
		return zl.ErrorLevel
	default:
		return zl.InfoLevel
	}
}
