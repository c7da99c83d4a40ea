package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"cloud.google.com/go/logging"
	"github.com/mgutz/ansi"
	"golang.org/x/net/context"
	"google.golang.org/api/option"
)

// Logger writes severity-tagged entries to Cloud Logging when a project is
// configured, and to a local writer otherwise.
type Logger struct {
	stackDriverLogger *logging.Logger
	loggingClient     *logging.Client
	local             *log.Logger

	logName         string
	prefix          string
	debug           bool
	color           bool
	writer          io.Writer
	defaultSeverity logging.Severity
	clientOptions   []option.ClientOption
}

// Option configures a Logger.
type Option func(*Logger)

func WithDebug(debug bool) Option {
	return func(l *Logger) { l.debug = debug }
}

// WithDefaultSeverity sets the severity used by Printf.
func WithDefaultSeverity(severity logging.Severity) Option {
	return func(l *Logger) { l.defaultSeverity = severity }
}

func WithLogName(logName string) Option {
	return func(l *Logger) { l.logName = logName }
}

func WithPrefix(prefix string) Option {
	return func(l *Logger) { l.prefix = prefix }
}

// WithColor colors local severities with ANSI escapes.
func WithColor(color bool) Option {
	return func(l *Logger) { l.color = color }
}

// WithWriter sets where local entries go. Defaults to stderr.
func WithWriter(w io.Writer) Option {
	return func(l *Logger) { l.writer = w }
}

func WithCredentialsFile(path string) Option {
	return func(l *Logger) {
		l.clientOptions = append(l.clientOptions, option.WithCredentialsFile(path))
	}
}

// New returns a Logger. An empty projectID, or a client that can't be created,
// logs locally.
func New(projectID string, opts ...Option) *Logger {
	logger := &Logger{
		logName:         "montecarlo",
		writer:          os.Stderr,
		defaultSeverity: logging.Info,
	}
	for _, opt := range opts {
		opt(logger)
	}
	logger.local = log.New(logger.writer, "", log.LstdFlags)
	if projectID == "" {
		return logger
	}
	loggingClient, err := logging.NewClient(context.Background(), projectID, logger.clientOptions...)
	if err != nil {
		logger.Errorf("Failed to create logging client, logging locally: %v", err)
		return logger
	}
	logger.loggingClient = loggingClient
	logger.stackDriverLogger = loggingClient.Logger(logger.logName)
	return logger
}

func (logger *Logger) Info(message interface{}) {
	logger.log(logging.Entry{
		Payload:  message,
		Severity: logging.Info,
	})
}
func (logger *Logger) Debug(message interface{}) {
	if !logger.debug {
		return
	}
	logger.log(logging.Entry{
		Payload:  message,
		Severity: logging.Debug,
	})
}
func (logger *Logger) Error(message interface{}) {
	logger.log(logging.Entry{
		Payload:  message,
		Severity: logging.Error,
	})
}
func (logger *Logger) Critical(message interface{}) {
	logger.log(logging.Entry{
		Payload:  message,
		Severity: logging.Critical,
	})
}
func (logger *Logger) log(entry logging.Entry) {
	if s, ok := entry.Payload.(string); ok && logger.prefix != "" {
		entry.Payload = logger.prefix + s
	}
	if logger.stackDriverLogger != nil {
		logger.stackDriverLogger.Log(entry)
		return
	}
	logger.local.Printf("%s: %v", logger.severityLabel(entry.Severity), entry.Payload)
}

var severityColors = map[logging.Severity]string{
	logging.Debug:    "cyan",
	logging.Info:     "green",
	logging.Error:    "red",
	logging.Critical: "red+b",
}

func (logger *Logger) severityLabel(s logging.Severity) string {
	label := strings.ToUpper(s.String())
	if !logger.color {
		return label
	}
	if c, ok := severityColors[s]; ok {
		return ansi.Color(label, c)
	}
	return label
}

func (logger *Logger) Infof(format string, a ...interface{}) {
	logger.Info(fmt.Sprintf(format, a...))
}
func (logger *Logger) Debugf(format string, a ...interface{}) {
	logger.Debug(fmt.Sprintf(format, a...))
}
func (logger *Logger) Errorf(format string, a ...interface{}) {
	logger.Error(fmt.Sprintf(format, a...))
}
func (logger *Logger) Criticalf(format string, a ...interface{}) {
	logger.Critical(fmt.Sprintf(format, a...))
}

// Printf logs at the default severity.
func (logger *Logger) Printf(format string, a ...interface{}) {
	if logger.defaultSeverity == logging.Debug {
		logger.Debugf(format, a...)
		return
	}
	logger.log(logging.Entry{
		Payload:  fmt.Sprintf(format, a...),
		Severity: logger.defaultSeverity,
	})
}

// Close flushes buffered cloud entries.
func (logger *Logger) Close() error {
	if logger.loggingClient == nil {
		return nil
	}
	return logger.loggingClient.Close()
}

// Printf, Println and Fatalf write through the standard logger, for use
// before a Logger exists.
func Printf(format string, v ...interface{}) { log.Printf(format, v...) }
func Println(v ...interface{})               { log.Println(v...) }
func Fatalf(format string, v ...interface{}) { log.Fatalf(format, v...) }
