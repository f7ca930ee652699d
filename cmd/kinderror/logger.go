package main

import (
	"io"
	"log"
)

// Logger prints progress to stderr. Debug messages are printed only in
// verbose mode.
type Logger struct {
	verbose bool
	log     *log.Logger
}

func NewLogger(w io.Writer, verbose bool) *Logger {
	return &Logger{
		verbose: verbose,
		log:     log.New(w, "kinderror: ", 0),
	}
}

func (l *Logger) Debug(format string, v ...any) {
	if l.verbose {
		l.log.Printf("[DEBUG] "+format, v...)
	}
}

func (l *Logger) Info(format string, v ...any) {
	l.log.Printf(format, v...)
}
