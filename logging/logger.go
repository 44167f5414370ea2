package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// GlobalLogger describes a Logger that is disabled by default and is enabled by the CLI once configuration is
// resolved. Each package should create its own sub-logger so that log output is attributable to a module.
var GlobalLogger *Logger

// Logger describes a logging object that wraps zerolog and can emit unstructured output to console as well as
// structured output to any number of arbitrary writers.
type Logger struct {
	// level describes the log level
	level zerolog.Level

	// multiLogger describes a logger that will be used to output structured logs to any arbitrary channel(s).
	multiLogger zerolog.Logger

	// consoleLogger describes a logger that will be used to output unstructured output to console.
	consoleLogger zerolog.Logger

	// writers describes the list of io.Writer objects where structured log output will go.
	writers []io.Writer
}

// NewLogger will create a new Logger object with a specific log level. The Logger can output to console, if
// enabled, and output structured logs to any number of arbitrary io.Writer channels.
func NewLogger(level zerolog.Level, consoleEnabled bool, writers ...io.Writer) *Logger {
	// Both base loggers start out disabled so that we do not get nil dereferences down the line
	baseMultiLogger := zerolog.New(os.Stdout).Level(zerolog.Disabled)
	baseConsoleLogger := zerolog.New(os.Stdout).Level(zerolog.Disabled)

	// If we are provided a list of writers, update the multi logger
	if len(writers) > 0 {
		baseMultiLogger = zerolog.New(zerolog.MultiLevelWriter(writers...)).Level(level).With().Timestamp().Logger()
	}

	// If console logging is enabled, update the console logger
	if consoleEnabled {
		consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout}
		baseConsoleLogger = zerolog.New(consoleWriter).Level(level)
	}

	return &Logger{
		level:         level,
		multiLogger:   baseMultiLogger,
		consoleLogger: baseConsoleLogger,
		writers:       writers,
	}
}

// NewSubLogger will create a new Logger with unique context in the form of a key-value pair. The expected use of
// this function is for each package to have its own logger so that parsing of logs is "grep-able" based on some key.
func (l *Logger) NewSubLogger(key string, value string) *Logger {
	subMultiLogger := l.multiLogger.With().Str(key, value).Logger()
	subConsoleLogger := l.consoleLogger.With().Str(key, value).Logger()
	return &Logger{
		level:         l.level,
		multiLogger:   subMultiLogger,
		consoleLogger: subConsoleLogger,
		writers:       l.writers,
	}
}

// AddWriter will add a writer to the list of channels where structured log output will be sent.
func (l *Logger) AddWriter(writer io.Writer) {
	// Check to see if the writer is already in the list of writers
	for _, w := range l.writers {
		if writer == w {
			return
		}
	}

	// Add it to the list of writers and update the multi logger
	l.writers = append(l.writers, writer)
	l.multiLogger = zerolog.New(zerolog.MultiLevelWriter(l.writers...)).Level(l.level).With().Timestamp().Logger()
}

// Level will get the log level of the Logger
func (l *Logger) Level() zerolog.Level {
	return l.level
}

// SetLevel will update the log level of the Logger
func (l *Logger) SetLevel(level zerolog.Level) {
	l.level = level
	l.multiLogger = l.multiLogger.Level(level)
	l.consoleLogger = l.consoleLogger.Level(level)
}

// Trace is a wrapper function that will log a trace event
func (l *Logger) Trace(msg string) {
	l.multiLogger.Trace().Msg(msg)
	l.consoleLogger.Trace().Msg(msg)
}

// Debug is a wrapper function that will log a debug event
func (l *Logger) Debug(msg string) {
	l.multiLogger.Debug().Msg(msg)
	l.consoleLogger.Debug().Msg(msg)
}

// Info is a wrapper function that will log an info event
func (l *Logger) Info(msg string) {
	l.multiLogger.Info().Msg(msg)
	l.consoleLogger.Info().Msg(msg)
}

// Warn is a wrapper function that will log a warning event
func (l *Logger) Warn(msg string) {
	l.multiLogger.Warn().Msg(msg)
	l.consoleLogger.Warn().Msg(msg)
}

// Error is a wrapper function that will log an error event along with the error itself
func (l *Logger) Error(msg string, err error) {
	l.multiLogger.Error().Stack().Err(err).Msg(msg)
	l.consoleLogger.Error().Err(err).Msg(msg)
}

// Panic is a wrapper function that will log a panic event and then panic with the given error
func (l *Logger) Panic(msg string, err error) {
	l.multiLogger.Panic().Stack().Err(err).Msg(msg)
	l.consoleLogger.Panic().Err(err).Msg(msg)
}
