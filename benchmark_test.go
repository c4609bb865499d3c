package resilog

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// The session pays for two availability probes around every write;
// the zap comparison shows what that resilience costs against a
// plain synchronous file logger.

func newBenchSession(b *testing.B) *Session {
	b.Helper()
	s, err := New(Config{
		Dir:      b.TempDir(),
		BaseName: "bench",
		Name:     "bench",
		Level:    "d",
		Reporter: &fakeReporter{},
	})
	if err != nil {
		b.Fatalf("New() error = %v", err)
	}
	b.Cleanup(func() { s.Close() })
	return s
}

func newBenchZap(b *testing.B) *zap.Logger {
	b.Helper()
	f, err := os.OpenFile(filepath.Join(b.TempDir(), "bench.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		b.Fatalf("OpenFile() error = %v", err)
	}
	b.Cleanup(func() { f.Close() })

	enc := zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(f), zap.DebugLevel))
}

func BenchmarkSessionFileLogging(b *testing.B) {
	s := newBenchSession(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Info("benchmark message")
	}
}

func BenchmarkZapFileLogging(b *testing.B) {
	l := newBenchZap(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("benchmark message")
	}
}
