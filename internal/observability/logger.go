package observability

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	*zap.SugaredLogger
}

// NewLogger builds a console logger at the given level. Output goes to
// stderr so stdout stays reserved for program output.
func NewLogger(level string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	l, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return &Logger{l.Sugar()}, nil
}

func NewNop() *Logger { return &Logger{zap.NewNop().Sugar()} }

func ParseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return lvl, errors.Wrapf(err, "log level %q", level)
	}
	return lvl, nil
}

func (l *Logger) Sync() error { return l.SugaredLogger.Sync() }
