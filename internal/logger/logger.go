// Package logger is the process-wide logger used by the wallers command line.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// Fields is a type alias for log fields to make the API cleaner
type Fields = logrus.Fields

var (
	logger *logrus.Logger

	// testOutput is used to capture log output during tests
	testOutput   io.Writer
	testOutputMu sync.Mutex
)

// SetTestOutput sets the output writer for testing purposes
func SetTestOutput(w io.Writer) {
	testOutputMu.Lock()
	defer testOutputMu.Unlock()
	testOutput = w
}

// UnsetTestOutput resets the test output to nil
func UnsetTestOutput() {
	testOutputMu.Lock()
	defer testOutputMu.Unlock()
	testOutput = nil
}

func getOutput() io.Writer {
	testOutputMu.Lock()
	defer testOutputMu.Unlock()
	if testOutput != nil {
		return testOutput
	}
	return os.Stderr
}

// InitLogger initializes the global logger for CLI operations.
// Colors are used only when writing to a terminal and noColor is false.
func InitLogger(logLevel string, noColor bool) {
	logger = logrus.New()
	output := getOutput()
	logger.SetOutput(output)

	level, err := logrus.ParseLevel(strings.ToLower(logLevel))
	if err != nil {
		level = logrus.InfoLevel // fallback to info level
	}
	logger.SetLevel(level)

	if noColor || !isTerminal(output) {
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors:    true,
			DisableTimestamp: true,
		})
		return
	}
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:   true,
		FullTimestamp: false,
	})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// GetLogger returns the configured logger instance
func GetLogger() *logrus.Logger {
	if logger == nil {
		// Initialize with default settings if not already initialized
		InitLogger("info", false)
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...Fields) {
	GetLogger().WithFields(mergeFields(fields...)).Info(msg)
}

// Debug logs a debug message (only shown when debug level is enabled)
func Debug(msg string, fields ...Fields) {
	GetLogger().WithFields(mergeFields(fields...)).Debug(msg)
}

// Warn logs a warning message
func Warn(msg string, fields ...Fields) {
	GetLogger().WithFields(mergeFields(fields...)).Warn(msg)
}

// Error logs an error message
func Error(msg string, fields ...Fields) {
	GetLogger().WithFields(mergeFields(fields...)).Error(msg)
}

// Success logs a success message as info with success indicator
func Success(msg string, fields ...Fields) {
	merged := mergeFields(fields...)
	merged["status"] = "success"
	GetLogger().WithFields(merged).Info(msg)
}

// mergeFields merges multiple Fields into one
func mergeFields(fields ...Fields) Fields {
	result := make(Fields)
	for _, field := range fields {
		for k, v := range field {
			result[k] = v
		}
	}
	return result
}
