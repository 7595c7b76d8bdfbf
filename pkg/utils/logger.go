package utils

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	log      *LoggerService
	initOnce sync.Once
)

// Fields are attached to a single log line.
type Fields map[string]interface{}

type Logger interface {
	Debug(msg string, fields Fields)
	Info(msg string)
	InfoFields(msg string, fields Fields)
	Warn(msg string)
	Error(msg string, err error)
	Fatal(msg string, err error)
}

type LoggerService struct {
	log zerolog.Logger
}

func NewLoggerService() *LoggerService {
	return NewConsoleLoggerService(os.Stdout)
}

// NewConsoleLoggerService writes human-readable lines to out.
func NewConsoleLoggerService(out io.Writer) *LoggerService {
	return NewLoggerServiceWithWriter(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
}

// NewLoggerServiceWithWriter logs to w, which tests use to capture output.
func NewLoggerServiceWithWriter(w io.Writer) *LoggerService {
	logger := zerolog.New(w).With().Timestamp().Logger()
	return &LoggerService{
		log: logger,
	}
}

func InitLoggerOnce() {
	initOnce.Do(func() {
		log = NewLoggerService()
		log.Info("[LOG]: Logger initialized successfully")
	})
}

func GetLogger() *LoggerService {
	if log == nil {
		InitLoggerOnce()
	}
	return log
}

// SetLevel accepts zerolog level names ("debug", "info", "warn", ...).
func (l *LoggerService) SetLevel(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	l.log = l.log.Level(lvl)
	return nil
}

// With returns a child logger carrying fields on every line.
func (l *LoggerService) With(fields Fields) *LoggerService {
	return &LoggerService{log: l.log.With().Fields(map[string]interface{}(fields)).Logger()}
}

func (l *LoggerService) Debug(msg string, fields Fields) {
	l.log.Debug().Fields(map[string]interface{}(fields)).Msg(msg)
}

func (l *LoggerService) Info(msg string) {
	l.log.Info().Msg(msg)
}

func (l *LoggerService) InfoFields(msg string, fields Fields) {
	l.log.Info().Fields(map[string]interface{}(fields)).Msg(msg)
}

func (l *LoggerService) Warn(msg string) {
	l.log.Warn().Msg(msg)
}

func (l *LoggerService) Error(msg string, err error) {
	l.log.Error().Err(err).Msg(msg)
}

// Fatal logs at fatal level. Unlike zerolog's Fatal() it does not exit;
// callers decide how to stop the process.
func (l *LoggerService) Fatal(msg string, err error) {
	l.log.WithLevel(zerolog.FatalLevel).Err(err).Msg(msg)
}
