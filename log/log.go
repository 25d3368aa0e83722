package log

import "github.com/sirupsen/logrus"

type Level logrus.Level

const (
	FatalLevel = Level(logrus.FatalLevel)
	ErrorLevel = Level(logrus.ErrorLevel)
	WarnLevel  = Level(logrus.WarnLevel)
	InfoLevel  = Level(logrus.InfoLevel)
	DebugLevel = Level(logrus.DebugLevel)
)

var Logger *logrus.Logger

func init() {
	Logger = logrus.New()
	Logger.Formatter = &logrus.TextFormatter{
		DisableLevelTruncation: true,
		PadLevelText:           true,
		TimestampFormat:        "2006/01/02 15:04:05",
		FullTimestamp:          true,
	}
}

func SetLevel(level Level) {
	Logger.SetLevel(logrus.Level(level))
}

func Logf(level Level, fmt string, args ...any) {
	Logger.Logf(logrus.Level(level), fmt, args...)
}
func Log(level Level, args ...any) {
	Logger.Logln(logrus.Level(level), args...)
}

func Debugf(fmt string, args ...any) {
	Logf(DebugLevel, fmt, args...)
}
func Debug(args ...any) {
	Log(DebugLevel, args...)
}

func Infof(fmt string, args ...any) {
	Logf(InfoLevel, fmt, args...)
}
func Info(args ...any) {
	Log(InfoLevel, args...)
}

func Warnf(fmt string, args ...any) {
	Logf(WarnLevel, fmt, args...)
}
func Warn(args ...any) {
	Log(WarnLevel, args...)
}

func Errorf(fmt string, args ...any) {
	Logf(ErrorLevel, fmt, args...)
}
func Error(args ...any) {
	Log(ErrorLevel, args...)
}

func Fatalf(fmt string, args ...any) {
	Logger.Fatalf(fmt, args...)
}
func Fatal(args ...any) {
	Logger.Fatalln(args...)
}
