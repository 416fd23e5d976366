package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logFileMaxSizeMB  = 10
	logFileMaxBackups = 3
	logFileMaxAgeDays = 28
)

// logger configures the logrus standard logger according
// to the root command flags and returns it. Only warnings
// and errors are logged unless verbose is set.
func (rcc *rootCmdConfig) logger() *log.Logger {
	l := log.StandardLogger()
	l.SetLevel(log.WarnLevel)
	if rcc.verbose {
		l.SetLevel(log.DebugLevel)
	}
	if rcc.logFile == "" {
		l.SetOutput(os.Stderr)
		return l
	}
	l.SetFormatter(&log.JSONFormatter{})
	l.SetOutput(&lumberjack.Logger{
		Filename:   rcc.logFile,
		MaxSize:    logFileMaxSizeMB,
		MaxBackups: logFileMaxBackups,
		MaxAge:     logFileMaxAgeDays,
	})
	return l
}
