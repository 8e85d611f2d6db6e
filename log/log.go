package log

import (
	"io"
	"os"

	console "github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/corpix/transcoder/errors"
)

type (
	Level   = zerolog.Level
	Logger  = zerolog.Logger
	Event   = zerolog.Event
	Context = zerolog.Context

	Option  func(*options)
	options struct {
		output  io.Writer
		console *bool
	}
)

const (
	LevelTrace = zerolog.TraceLevel
	LevelDebug = zerolog.DebugLevel
	LevelInfo  = zerolog.InfoLevel
	LevelWarn  = zerolog.WarnLevel
	LevelError = zerolog.ErrorLevel
	LevelPanic = zerolog.PanicLevel
	LevelFatal = zerolog.FatalLevel
)

var log = zerolog.New(os.Stderr).With().Timestamp().Logger()

func Debug() *Event                                { return log.Debug() }
func Err(err error) *Event                         { return log.Err(err) }
func Error() *Event                                { return log.Error() }
func Fatal() *Event                                { return log.Fatal() }
func Info() *Event                                 { return log.Info() }
func Log() *Event                                  { return log.Log() }
func Panic() *Event                                { return log.Panic() }
func Print(v ...interface{})                       { log.Print(v...) }
func Printf(format string, v ...interface{})       { log.Printf(format, v...) }
func Trace() *Event                                { return log.Trace() }
func UpdateContext(update func(c Context) Context) { log.UpdateContext(update) }
func Warn() *Event                                 { return log.Warn() }
func WithLevel(level Level) *Event                 { return log.WithLevel(level) }
func With() Context                                { return log.With() }

//

type Config struct {
	Level string `yaml:"level"`
}

func (c *Config) Default() {
	if c.Level == "" {
		c.Level = LevelInfo.String()
	}
}

func (c *Config) Validate() error {
	_, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		return errors.Wrapf(err, "invalid logging level %q", c.Level)
	}
	return nil
}

//

// WithOutput replaces stderr as the log destination.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.output = w }
}

// WithConsole forces console formatting on or off instead of detecting a terminal.
func WithConsole(enable bool) Option {
	return func(o *options) { o.console = &enable }
}

func New(level string, opts ...Option) (Logger, error) {
	var (
		o = &options{output: os.Stderr}

		log      Logger
		logLevel Level
		err      error
		w        io.Writer
	)

	for _, opt := range opts {
		opt(o)
	}

	isConsole := false
	if o.console != nil {
		isConsole = *o.console
	} else if f, ok := o.output.(*os.File); ok {
		isConsole = console.IsTerminal(f.Fd())
	}

	if isConsole {
		w = zerolog.ConsoleWriter{Out: o.output}
	} else {
		w = o.output
	}

	if level == "" {
		level = LevelInfo.String()
	}
	logLevel, err = zerolog.ParseLevel(level)
	if err != nil {
		return log, errors.Wrapf(err, "failed to parse logging level %q", level)
	}

	log = zerolog.New(w).With().
		Timestamp().Logger().
		Level(logLevel)

	return log, nil
}

func Init(level string, opts ...Option) error {
	l, err := New(level, opts...)
	if err != nil {
		return err
	}

	log = l

	return nil
}
