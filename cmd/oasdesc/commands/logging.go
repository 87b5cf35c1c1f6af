package commands

import (
	"fmt"

	"github.com/erraggy/oasdesc/builder"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a development zap logger writing to stderr. verbose forces
// the debug level; otherwise level is parsed, with "" meaning warn.
func newLogger(verbose bool, level string) (*zap.Logger, error) {
	if verbose {
		level = "debug"
	}
	if level == "" {
		level = "warn"
	}

	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{"stderr"}
	config.Level = zap.NewAtomicLevelAt(zapLevel)

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// zapAdapter implements builder.Logger on a zap logger.
type zapAdapter struct {
	logger *zap.SugaredLogger
}

func newZapAdapter(logger *zap.Logger) *zapAdapter {
	return &zapAdapter{logger: logger.Sugar()}
}

func (z *zapAdapter) Debug(msg string, attrs ...any) { z.logger.Debugw(msg, attrs...) }
func (z *zapAdapter) Info(msg string, attrs ...any)  { z.logger.Infow(msg, attrs...) }
func (z *zapAdapter) Warn(msg string, attrs ...any)  { z.logger.Warnw(msg, attrs...) }
func (z *zapAdapter) Error(msg string, attrs ...any) { z.logger.Errorw(msg, attrs...) }

func (z *zapAdapter) With(attrs ...any) builder.Logger {
	return &zapAdapter{logger: z.logger.With(attrs...)}
}

var _ builder.Logger = (*zapAdapter)(nil)
