package tracelog

import (
	"io"
	"testing"

	"github.com/rs/zerolog"
)

// newBenchService constructs a Service over a discard sink at the
// given threshold. It bypasses Initialize() to avoid file I/O and
// focuses on pure logging overhead.
func newBenchService(threshold Level) *Service {
	s := &Service{threshold: threshold}
	cw := newRecordWriter(io.Discard)
	logger := zerolog.New(cw).Level(threshold.zerologLevel()).With().Timestamp().Logger()
	raw := zerolog.New(cw)
	s.logger.Store(&logger)
	s.rawLogger.Store(&raw)
	s.isInitialized.Store(true)
	return s
}

func BenchmarkInfo(b *testing.B) {
	s := newBenchService(LevelInfo)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Info("hello")
	}
}

func BenchmarkLog_Filtered(b *testing.B) {
	s := newBenchService(LevelWarn)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Debug("dropped")
	}
}

func BenchmarkError_WithStackDump(b *testing.B) {
	s := newBenchService(LevelError)
	s.Push("outer")
	s.Push("middle")
	s.Push("inner")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Error("oops")
	}
}

func BenchmarkPushPop(b *testing.B) {
	s := newBenchService(LevelWarn)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Push("scope")
		s.Pop()
	}
}

func BenchmarkWrite(b *testing.B) {
	s := newBenchService(LevelInfo)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Write("raw")
	}
}
