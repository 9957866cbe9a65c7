package cli

import (
	"github.com/rkristelijn/glab-tui-install/internal/provision"
	"go.uber.org/zap"
)

// zapLogger adapts a zap.SugaredLogger to provision.Logger.
type zapLogger struct {
	s *zap.SugaredLogger
}

func (l zapLogger) Debug(msg string, kv ...interface{}) { l.s.Debugw(msg, kv...) }
func (l zapLogger) Info(msg string, kv ...interface{})  { l.s.Infow(msg, kv...) }
func (l zapLogger) Warn(msg string, kv ...interface{})  { l.s.Warnw(msg, kv...) }
func (l zapLogger) Error(msg string, kv ...interface{}) { l.s.Errorw(msg, kv...) }

// newLogger returns a development logger on stderr when verbose is set and
// a no-op logger otherwise.
func newLogger(verbose bool) (provision.Logger, error) {
	if !verbose {
		return zapLogger{s: zap.NewNop().Sugar()}, nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return zapLogger{s: l.Sugar()}, nil
}
