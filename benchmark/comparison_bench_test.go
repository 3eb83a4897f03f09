package benchmark

import (
	"io"
	"log/slog"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dkovralev/goutil/log"
	"github.com/dkovralev/goutil/log/driver"
	"github.com/dkovralev/goutil/log/format"
)

// newPipelineChannel returns a channel writing text to io.Discard
// through the console driver.
func newPipelineChannel() *log.Group {
	c := driver.NewConsole(driver.ConsoleConfig{
		Writer:    io.Discard,
		Formatter: format.NewText(),
	})
	ch := log.NewGroup(c)
	ch.RegisterPolicies(log.NewSeverityPolicy(log.TraceLevel))
	return ch
}

// newZapLogger returns a zap.Logger that writes to io.Discard.
func newZapLogger() *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zapcore.DebugLevel)
	return zap.New(core)
}

// newSlogLogger returns a slog.Logger that writes to io.Discard.
func newSlogLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func BenchmarkPipeline_ConsoleText(b *testing.B) {
	ch := newPipelineChannel()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		log.New().Info("benchmark message").Channel(ch).Submit()
	}
}

func BenchmarkPipeline_NoopDriver(b *testing.B) {
	ch := log.NewGroup(newNoopDriver())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		log.New().Info("benchmark message").Channel(ch).Submit()
	}
}

func BenchmarkPipeline_FilteredOut(b *testing.B) {
	ch := log.NewGroup(newNoopDriver())
	ch.RegisterPolicies(log.NewSeverityPolicy(log.ErrorLevel))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		log.New().Debug("dropped message").Channel(ch).Submit()
	}
}

func BenchmarkZap_Console(b *testing.B) {
	l := newZapLogger()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("benchmark message")
	}
}

func BenchmarkSlog_Text(b *testing.B) {
	l := newSlogLogger()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("benchmark message")
	}
}
