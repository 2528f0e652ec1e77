// Package logging constructs the zap logger cratepack uses everywhere
// outside internal/engine and internal/model, which stay silent.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

// New builds a zap logger at the given level ("debug", "info", "warn",
// "error"). Output is a human-readable console encoder when stdout is a
// terminal, JSON otherwise, so piping cratepack's output to a log
// collector gets structured lines without a flag.
func New(level string) (*zap.Logger, error) {
	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		zapLevel = zapcore.InfoLevel
	}

	var encoder zapcore.Encoder
	if isTerminal(os.Stdout) {
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(ec)
	} else {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), zap.NewAtomicLevelAt(zapLevel))
	return zap.New(core), nil
}

// Noop returns a logger that discards everything, for tests and library
// callers that do not want cratepack's own logging.
func Noop() *zap.Logger {
	return zap.NewNop()
}
