package kinematics

import "log/slog"

var _ Logger = &slogLogger{}

type slogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger adapts a *slog.Logger to Logger.
func NewSlogLogger(logger *slog.Logger) Logger {
	return &slogLogger{logger: logger}
}

func (l *slogLogger) Info(msg string, keyValues ...any) {
	l.logger.Info(msg, keyValues...)
}

func (l *slogLogger) Warn(msg string, keyValues ...any) {
	l.logger.Warn(msg, keyValues...)
}

func (l *slogLogger) Error(msg string, keyValues ...any) {
	l.logger.Error(msg, keyValues...)
}

func (l *slogLogger) Debug(msg string, keyValues ...any) {
	l.logger.Debug(msg, keyValues...)
}
