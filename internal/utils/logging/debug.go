package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"blobdl/internal/domain/consts"

	"github.com/rs/zerolog"
)

var (
	// Level is the debug level. D messages print when their level is at or below it.
	Level int = 0

	// Console receives every terminal message.
	Console io.Writer = os.Stdout

	mu sync.Mutex
)

// E prints and logs an error with the calling function's location.
func E(format string, args ...any) string {
	mu.Lock()
	defer mu.Unlock()

	var b strings.Builder
	b.WriteString(consts.RedError)
	writeFormatted(&b, format, args...)
	writeCaller(&b, 2)

	msg := b.String()
	fmt.Fprint(Console, msg)
	writeLog(zerolog.ErrorLevel, msg)

	return msg
}

// W prints and logs a warning.
func W(format string, args ...any) string {
	return plain(zerolog.WarnLevel, consts.YellowWarn, format, args...)
}

// S prints and logs a success message.
func S(format string, args ...any) string {
	return plain(zerolog.InfoLevel, consts.GreenSuccess, format, args...)
}

// I prints and logs an informational message.
func I(format string, args ...any) string {
	return plain(zerolog.InfoLevel, consts.BlueInfo, format, args...)
}

// P prints and logs a message with no prefix.
func P(format string, args ...any) string {
	return plain(zerolog.InfoLevel, "", format, args...)
}

// D prints and logs a debug message if l is within the current debug level.
func D(l int, format string, args ...any) string {
	if l > Level {
		return ""
	}

	mu.Lock()
	defer mu.Unlock()

	var b strings.Builder
	b.WriteString(consts.YellowDebug)
	writeFormatted(&b, format, args...)
	writeCaller(&b, 2)

	msg := b.String()
	fmt.Fprint(Console, msg)
	writeLog(zerolog.DebugLevel, msg)

	return msg
}

func plain(lvl zerolog.Level, prefix, format string, args ...any) string {
	mu.Lock()
	defer mu.Unlock()

	var b strings.Builder
	b.Grow(len(prefix) + len(format) + 1 + (len(args) * 32))
	b.WriteString(prefix)
	writeFormatted(&b, format, args...)
	b.WriteString("\n")

	msg := b.String()
	fmt.Fprint(Console, msg)
	writeLog(lvl, msg)

	return msg
}

func writeFormatted(b *strings.Builder, format string, args ...any) {
	if len(args) != 0 {
		fmt.Fprintf(b, format, args...)
	} else {
		b.WriteString(format)
	}
}

// writeCaller appends a "[Function - File : Line]" tag.
func writeCaller(b *strings.Builder, skip int) {
	pc, file, line, _ := runtime.Caller(skip)
	file = filepath.Base(file)
	funcName := filepath.Base(runtime.FuncForPC(pc).Name())

	b.WriteString(" [")
	b.WriteString(consts.ColorBlue)
	b.WriteString("Function: ")
	b.WriteString(consts.ColorReset)
	b.WriteString(funcName)
	b.WriteString(" - ")
	b.WriteString(consts.ColorBlue)
	b.WriteString("File: ")
	b.WriteString(consts.ColorReset)
	b.WriteString(file)
	b.WriteString(" : ")
	b.WriteString(consts.ColorBlue)
	b.WriteString("Line: ")
	b.WriteString(consts.ColorReset)
	b.WriteString(strconv.Itoa(line))
	b.WriteString("]\n")
}
