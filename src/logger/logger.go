// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Logger defines the interface for logging operations.
// It provides methods for formatted output and switching destinations.
//
// Standard output belongs to the plugin status line, so every implementation
// in this package writes to standard error unless told otherwise.
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for human-readable diagnostics such as "index.txt: permission denied".
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger writing to standard error with
// timestamps and prefixes disabled.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stderr, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// Discard returns a Logger that drops everything written to it.
func Discard() Logger { return &CLILogger{logger: log.New(io.Discard, "", 0)} }

// JSONLogger implements Logger on top of [zerolog], emitting one JSON object
// per message with "level", "time" and "message" keys. It suits monitoring
// hosts that collect plugin stderr into a log pipeline.
//
// JSONLogger is safe for concurrent use by multiple goroutines.
//
// [zerolog]: https://github.com/rs/zerolog
type JSONLogger struct {
	mu     sync.Mutex
	logger zerolog.Logger
}

// NewJSONLogger creates a JSON logger writing to writer, or to io.Discard
// when writer is nil. A silent logger suppresses all output.
func NewJSONLogger(writer io.Writer, silent bool) *JSONLogger {
	if writer == nil {
		writer = io.Discard
	}

	zl := zerolog.New(writer).With().Timestamp().Logger()
	if silent {
		zl = zl.Level(zerolog.Disabled)
	}
	return &JSONLogger{logger: zl}
}

// Printf formats and logs a message at info level.
func (j *JSONLogger) Printf(format string, v ...any) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.logger.Info().Msg(fmt.Sprintf(format, v...))
}

// Println logs a message at info level. Operands are joined the way
// fmt.Sprintln joins them, without the trailing newline.
func (j *JSONLogger) Println(v ...any) {
	msg := fmt.Sprintln(v...)
	msg = msg[:len(msg)-1]

	j.mu.Lock()
	defer j.mu.Unlock()
	j.logger.Info().Msg(msg)
}

// SetOutput sets the output destination for the JSON logger.
// A nil writer discards output.
func (j *JSONLogger) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	j.logger = j.logger.Output(w)
}
