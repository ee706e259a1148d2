package tracelog

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// newRecordWriter builds the console writer that renders events as
// plain-text records. Leveled records come out as
//
//	[ 2006-01-02 15:04:05 ] LEVEL message
//
// while events without timestamp and level (raw writes, stack dump
// lines) render as the bare message. Parts that are absent from an
// event format to the empty string and are skipped entirely.
func newRecordWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:     out,
		NoColor: true,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			zerolog.MessageFieldName,
		},
		FormatTimestamp: func(i interface{}) string {
			ts, ok := i.(string)
			if !ok || ts == emptyString {
				return emptyString
			}
			if t, err := time.Parse(time.RFC3339, ts); err == nil {
				ts = t.Format(recordTimeFormat)
			}
			return "[ " + ts + " ]"
		},
		FormatLevel: func(i interface{}) string {
			lvl, ok := i.(string)
			if !ok || lvl == emptyString {
				return emptyString
			}
			level, err := ParseLevel(lvl)
			if err != nil {
				return emptyString
			}
			return levelTags[level]
		},
		FormatMessage: func(i interface{}) string {
			if i == nil {
				return emptyString
			}
			return fmt.Sprintf("%s", i)
		},
	}
}

// levelTags are the record prefixes for each severity.
var levelTags = map[Level]string{
	LevelFatal: "FATAL",
	LevelError: "ERROR",
	LevelWarn:  "WARN",
	LevelInfo:  "INFO",
	LevelDebug: "DEBUG",
}
