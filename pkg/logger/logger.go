package logger

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Leveled logging for the buurtmarkt services, backed by logrus.
// Provides Debug/Info/Warn/Error/Fatal variants and Init(level).

// Init sets the global log level (case-insensitive: debug, info, warn, error, fatal).
// Call early during startup. Default level is Info.
func Init(level string) {
	formatter := new(logrus.TextFormatter)
	formatter.TimestampFormat = "2006-01-02 15:04:05"
	formatter.FullTimestamp = true
	logrus.SetFormatter(formatter)
	logrus.SetLevel(parseLevel(level))
}

func parseLevel(s string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	default:
		return logrus.InfoLevel
	}
}

// WithField returns an entry carrying one structured field.
func WithField(key string, value interface{}) *logrus.Entry {
	return logrus.WithField(key, value)
}

func Debugf(format string, v ...interface{}) { logrus.Debugf(format, v...) }
func Infof(format string, v ...interface{})  { logrus.Infof(format, v...) }
func Warnf(format string, v ...interface{})  { logrus.Warnf(format, v...) }
func Errorf(format string, v ...interface{}) { logrus.Errorf(format, v...) }
func Fatalf(format string, v ...interface{}) { logrus.Fatalf(format, v...) }

func Debug(v string) { logrus.Debug(v) }
func Info(v string)  { logrus.Info(v) }
func Warn(v string)  { logrus.Warn(v) }
func Error(v string) { logrus.Error(v) }

// LevelString returns the current level as text.
func LevelString() string {
	switch logrus.GetLevel() {
	case logrus.DebugLevel:
		return "debug"
	case logrus.WarnLevel:
		return "warn"
	case logrus.ErrorLevel:
		return "error"
	case logrus.FatalLevel:
		return "fatal"
	}
	return "info"
}
