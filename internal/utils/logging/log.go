// Package logging prints coloured terminal messages and mirrors them to a log file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"blobdl/internal/domain/consts"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	fileLogger zerolog.Logger = zerolog.Nop()
	logFile    *os.File
	loggable   bool

	// RunID tags every file log entry of this process.
	RunID = uuid.NewString()
)

// Regular expression to match ANSI escape codes
var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// SetupLogging creates and/or opens the log file.
func SetupLogging(logPath string) error {
	if logPath == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(logPath), consts.PermsLogDir); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, consts.PermsLogFile)
	if err != nil {
		return fmt.Errorf("failed to open log file %q: %w", logPath, err)
	}

	mu.Lock()
	defer mu.Unlock()

	logFile = f
	zerolog.TimeFieldFormat = time.RFC3339
	fileLogger = zerolog.New(f).With().Timestamp().Str("run", RunID).Logger()
	loggable = true

	fileLogger.Info().Msg("=========== log opened ===========")
	return nil
}

// CloseLogging flushes and closes the log file, if one was opened.
func CloseLogging() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	loggable = false
	fileLogger = zerolog.Nop()
	return err
}

// writeLog writes a message to the log file. Callers hold mu.
func writeLog(lvl zerolog.Level, msg string) {
	if !loggable {
		return
	}
	fileLogger.WithLevel(lvl).Msg(strings.TrimSpace(stripAnsiCodes(msg)))
}

// stripAnsiCodes removes ANSI escape codes from a string
func stripAnsiCodes(input string) string {
	return ansiEscape.ReplaceAllString(input, "")
}
