package logging

import (
	"github.com/sirupsen/logrus"
	"github.com/wailsapp/wails/v2/pkg/logger"
)

// WailsLogger routes the desktop runtime's log output through logrus
type WailsLogger struct {
	Entry *logrus.Entry
}

var _ logger.Logger = (*WailsLogger)(nil)

func (l *WailsLogger) Print(message string)   { l.Entry.Print(message) }
func (l *WailsLogger) Trace(message string)   { l.Entry.Trace(message) }
func (l *WailsLogger) Debug(message string)   { l.Entry.Debug(message) }
func (l *WailsLogger) Info(message string)    { l.Entry.Info(message) }
func (l *WailsLogger) Warning(message string) { l.Entry.Warn(message) }
func (l *WailsLogger) Error(message string)   { l.Entry.Error(message) }

// Fatal logs at error level; the runtime decides whether to exit.
func (l *WailsLogger) Fatal(message string) { l.Entry.Error(message) }

// WailsLevel converts a logrus level into the runtime's log level
func WailsLevel(level logrus.Level) logger.LogLevel {
	switch level {
	case logrus.TraceLevel:
		return logger.TRACE
	case logrus.DebugLevel:
		return logger.DEBUG
	case logrus.InfoLevel:
		return logger.INFO
	case logrus.WarnLevel:
		return logger.WARNING
	default:
		return logger.ERROR
	}
}
