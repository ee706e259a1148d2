package tracelog

import (
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// Service is a logging context constructed and owned by the caller.
// It assumes a single writer: the log file is opened once and treated
// as exclusively owned for the lifetime of the Service. All writes are
// synchronous; every call returns after both sinks have been written.
type Service struct {
	Config *Config

	threshold Level
	file      *os.File

	logger        atomic.Pointer[zerolog.Logger]
	rawLogger     atomic.Pointer[zerolog.Logger]
	isInitialized atomic.Bool

	mu    sync.Mutex // guards stack
	stack []string
}

// NewService returns a Service for the given config. The service is
// inert until Initialize is called.
func NewService(cfg *Config) *Service {
	return &Service{Config: cfg}
}

// Initialize opens the log file in append mode, wires the sinks and
// emits an "initialised" info record. Calling it again is a no-op that
// returns ErrAlreadyInitialized; the file opened by the first call
// stays in use.
func (s *Service) Initialize() error {
	if s == nil {
		return errors.New(errMsgNilService)
	}
	if s.Config == nil {
		return errors.New(errMsgNilConfig)
	}
	if s.isInitialized.Load() {
		return ErrAlreadyInitialized
	}

	if err := validateConfig(s.Config); err != nil {
		return err
	}

	threshold, err := ParseLevel(s.Config.Threshold)
	if err != nil {
		return errors.Wrap(err, errMsgConfigInvalid)
	}
	s.threshold = threshold

	writers, err := s.initializeWriters()
	if err != nil {
		return err
	}

	cw := newRecordWriter(io.MultiWriter(writers...))

	logger := zerolog.New(cw).Level(threshold.zerologLevel()).With().Timestamp().Logger()
	raw := zerolog.New(cw)

	s.logger.Store(&logger)
	s.rawLogger.Store(&raw)
	s.isInitialized.Store(true)

	s.Info(msgInitialised)
	return nil
}

// initializeWriters opens the configured sinks. File-open failures are
// surfaced as startup errors rather than swallowed.
func (s *Service) initializeWriters() ([]io.Writer, error) {
	var writers []io.Writer

	if s.Config.FileLogging {
		f, err := os.OpenFile(s.Config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, errors.Wrapf(err, "opening log file %s", s.Config.FilePath)
		}
		s.file = f
		writers = append(writers, f)
	}
	if s.Config.ConsoleLogging {
		writers = append(writers, os.Stdout)
	}
	if len(writers) == 0 {
		return nil, errors.New(errMsgNoChannels)
	}
	return writers, nil
}

// Close emits a final shutdown record and closes the log file exactly
// once. It's safe to call Close multiple times.
func (s *Service) Close() error {
	if s == nil || !s.isInitialized.Load() {
		return nil
	}

	s.Info(msgShutdown)
	s.isInitialized.Store(false)
	s.logger.Store(nil)
	s.rawLogger.Store(nil)

	var closeErr error
	if s.file != nil {
		closeErr = errors.Wrap(s.file.Close(), "closing log file")
		s.file = nil
	}
	return closeErr
}

// Initialized reports whether Initialize has completed and Close has
// not yet run.
func (s *Service) Initialized() bool {
	return s != nil && s.isInitialized.Load()
}

// Write emits the message to both sinks unchanged, followed by a line
// terminator. No level filtering, no timestamp. Used internally by the
// leveled API; safe no-op when the service is not initialized.
func (s *Service) Write(message string) {
	if s == nil || !s.isInitialized.Load() {
		return
	}
	raw := s.rawLogger.Load()
	if raw == nil {
		return
	}
	raw.Log().Msg(message)
}

// Log emits a timestamped, level-prefixed record if level is at or
// above the threshold, and returns true. For error-or-worse records it
// additionally dumps the scope stack, most recent label first, framed
// by fixed banner lines. Returns false when filtered out; a filtered
// record has no side effect.
func (s *Service) Log(level Level, message string) bool {
	if s == nil || !s.isInitialized.Load() {
		return false
	}
	if !s.threshold.Enables(level) {
		return false
	}
	logger := s.logger.Load()
	if logger == nil {
		return false
	}

	logger.WithLevel(level.zerologLevel()).Msg(message)

	if level <= LevelError {
		s.dumpStack()
	}
	return true
}

// Fatal logs the message at the fatal level. It does not terminate the
// process.
func (s *Service) Fatal(message string) bool {
	return s.Log(LevelFatal, message)
}

// Error logs the message at the error level and dumps the scope stack.
func (s *Service) Error(message string) bool {
	return s.Log(LevelError, message)
}

// Warn logs the message at the warn level.
func (s *Service) Warn(message string) bool {
	return s.Log(LevelWarn, message)
}

// Info logs the message at the info level.
func (s *Service) Info(message string) bool {
	return s.Log(LevelInfo, message)
}

// Debug logs the message at the debug level.
func (s *Service) Debug(message string) bool {
	return s.Log(LevelDebug, message)
}
