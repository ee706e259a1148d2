package tracelog

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Level is the severity of a log record. Lower values are more severe;
// the ordering is fixed and a record passes the threshold check when
// its level value is less than or equal to the threshold value.
type Level int8

const (
	LevelFatal Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
)

var levelNames = map[Level]string{
	LevelFatal: "fatal",
	LevelError: "error",
	LevelWarn:  "warn",
	LevelInfo:  "info",
	LevelDebug: "debug",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "unknown"
}

// Enables reports whether a record at the given level passes a
// threshold of l.
func (l Level) Enables(level Level) bool {
	return level <= l
}

// zerologLevel maps a Level onto the underlying zerolog scale, which
// runs in the opposite direction (higher value = more severe).
func (l Level) zerologLevel() zerolog.Level {
	switch l {
	case LevelFatal:
		return zerolog.FatalLevel
	case LevelError:
		return zerolog.ErrorLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelDebug:
		return zerolog.DebugLevel
	default:
		return zerolog.NoLevel
	}
}

// ParseLevel parses a case-insensitive level name.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fatal":
		return LevelFatal, nil
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	default:
		return LevelInfo, errors.Errorf("unknown log level %q", name)
	}
}
