package pulsar

import (
	"context"
	"fmt"

	pulsarlog "github.com/apache/pulsar-client-go/pulsar/log"

	"github.com/klwxsrx/go-session-gate/pkg/log"
)

// loggerAdapter lowers the client's info messages to debug, they are about connection housekeeping.
type loggerAdapter struct {
	logger log.Logger
}

func newLoggerAdapter(logger log.Logger) pulsarlog.Logger {
	return loggerAdapter{logger.WithField("component", "pulsar")}
}

func (l loggerAdapter) SubLogger(fields pulsarlog.Fields) pulsarlog.Logger {
	return loggerAdapter{l.logger.With(log.Fields(fields))}
}

func (l loggerAdapter) WithFields(fields pulsarlog.Fields) pulsarlog.Entry {
	return loggerAdapter{l.logger.With(log.Fields(fields))}
}

func (l loggerAdapter) WithField(name string, value any) pulsarlog.Entry {
	return loggerAdapter{l.logger.WithField(name, value)}
}

func (l loggerAdapter) WithError(err error) pulsarlog.Entry {
	return loggerAdapter{l.logger.WithError(err)}
}

func (l loggerAdapter) Debug(args ...any) {
	l.log(log.LevelDebug, fmt.Sprint(args...))
}

func (l loggerAdapter) Info(args ...any) {
	l.log(log.LevelDebug, fmt.Sprint(args...))
}

func (l loggerAdapter) Warn(args ...any) {
	l.log(log.LevelWarn, fmt.Sprint(args...))
}

func (l loggerAdapter) Error(args ...any) {
	l.log(log.LevelError, fmt.Sprint(args...))
}

func (l loggerAdapter) Debugf(format string, args ...any) {
	l.log(log.LevelDebug, fmt.Sprintf(format, args...))
}

func (l loggerAdapter) Infof(format string, args ...any) {
	l.log(log.LevelDebug, fmt.Sprintf(format, args...))
}

func (l loggerAdapter) Warnf(format string, args ...any) {
	l.log(log.LevelWarn, fmt.Sprintf(format, args...))
}

func (l loggerAdapter) Errorf(format string, args ...any) {
	l.log(log.LevelError, fmt.Sprintf(format, args...))
}

func (l loggerAdapter) log(level log.Level, msg string) {
	l.logger.Log(context.Background(), level, msg)
}
