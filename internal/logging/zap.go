// Package logging adapts zap to the Nakama runtime.Logger interface so RPC handlers
// can run outside the Nakama server, e.g. from the command line harness.
package logging

import (
	"github.com/heroiclabs/nakama-common/runtime"
	"go.uber.org/zap"
)

type zapLogger struct {
	s      *zap.SugaredLogger
	fields map[string]interface{}
}

// NewZapLogger wraps a zap logger as a runtime.Logger.
func NewZapLogger(l *zap.Logger) runtime.Logger {
	return &zapLogger{s: l.Sugar(), fields: map[string]interface{}{}}
}

// NewDevelopment returns a human readable logger, at debug level when verbose is set.
func NewDevelopment(verbose bool) (runtime.Logger, func(), error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, nil, err
	}
	return NewZapLogger(l), func() { _ = l.Sync() }, nil
}

func (l *zapLogger) Debug(format string, v ...interface{}) { l.s.Debugf(format, v...) }
func (l *zapLogger) Info(format string, v ...interface{})  { l.s.Infof(format, v...) }
func (l *zapLogger) Warn(format string, v ...interface{})  { l.s.Warnf(format, v...) }
func (l *zapLogger) Error(format string, v ...interface{}) { l.s.Errorf(format, v...) }

func (l *zapLogger) WithField(key string, v interface{}) runtime.Logger {
	return l.WithFields(map[string]interface{}{key: v})
}

func (l *zapLogger) WithFields(fields map[string]interface{}) runtime.Logger {
	merged := make(map[string]interface{}, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	args := make([]interface{}, 0, 2*len(fields))
	for k, v := range fields {
		merged[k] = v
		args = append(args, k, v)
	}
	return &zapLogger{s: l.s.With(args...), fields: merged}
}

func (l *zapLogger) Fields() map[string]interface{} {
	out := make(map[string]interface{}, len(l.fields))
	for k, v := range l.fields {
		out[k] = v
	}
	return out
}
