// nolint: sloglint
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"
)

const (
	// DefaultLevel is the default minimum reporting level for the logger
	DefaultLevel = slog.LevelInfo
)

// DefaultSecretKeys are attribute keys whose values never reach the output.
var DefaultSecretKeys = []string{"private_key", "mnemonic", "infura_key", "password"}

var (
	// minimum reporting level for the logger
	lvl = new(slog.LevelVar)

	// top-level logger
	logger *slog.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:       lvl,
		ReplaceAttr: levelAttrReplacer,
	}))
)

// Set default slog logger
func init() {
	lvl.Set(DefaultLevel)
	slog.SetDefault(logger)
}

// Config is the logger configuration.
type Config struct {
	// Output is the logger output format.
	// Possible values:
	//  - Text (default)
	//  - JSON
	//  - GCP: Output format for Stackdriver Logging/Cloud Logging or others GCP services.
	Output string `mapstructure:"output"`

	// Debug is enabled logger level debug. (default: false)
	Debug bool `mapstructure:"debug"`

	// SecretKeys are attribute keys to redact, in addition to DefaultSecretKeys.
	SecretKeys []string `mapstructure:"secret_keys"`
}

// Init initializes global logger and slog logger with given configuration.
//
// Logs are written to stderr, stdout is reserved for the mint progress and exports.
func Init(cfg Config) error {
	logger = New(os.Stderr, cfg)
	slog.SetDefault(logger)
	return nil
}

// New creates a logger writing to w. It shares the global reporting level, so the
// last Init or New call decides it.
func New(w io.Writer, cfg Config) *slog.Logger {
	replacers := []attrReplacer{
		levelAttrReplacer,
		errorAttrReplacer,
		secretAttrReplacer(append(DefaultSecretKeys, cfg.SecretKeys...)),
	}
	options := &slog.HandlerOptions{Level: lvl}

	var middlewares []middleware
	lvl.Set(DefaultLevel)
	if cfg.Debug {
		lvl.Set(slog.LevelDebug)
		options.AddSource = true
		middlewares = append(middlewares, middlewareErrorStackTrace())
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Output) {
	case "json":
		options.ReplaceAttr = chainReplacers(append(replacers, durationToMsAttrReplacer)...)
		handler = slog.NewJSONHandler(w, options)
	case "gcp":
		options.AddSource = true
		options.ReplaceAttr = chainReplacers(append([]attrReplacer{gcpAttrReplacer}, replacers...)...)
		handler = slog.NewJSONHandler(w, options)
	default:
		options.ReplaceAttr = chainReplacers(replacers...)
		handler = slog.NewTextHandler(w, options)
	}

	return slog.New(newMiddlewareHandler(handler, middlewares...))
}

// SetLevel sets the minimum reporting level for the logger
func SetLevel(level slog.Level) (old slog.Level) {
	old = lvl.Level()
	lvl.Set(level)
	return old
}

// With returns a Logger that includes the given attributes
// in each output operation. Arguments are converted to
// attributes as if by [Logger.Log].
func With(args ...any) *slog.Logger {
	return logger.With(args...)
}

// Panic logs at [LevelPanic] and then panics.
func Panic(msg string, args ...any) {
	log(context.Background(), logger, LevelPanic, msg, args...)
	panic(msg)
}

// LogAttrs is a more efficient version of [Logger.Log] that accepts only Attrs.
func LogAttrs(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr) {
	logAttrs(ctx, FromContext(ctx), level, msg, attrs...)
}

// log is the low-level logging method for methods that take ...any.
// It must always be called directly by an exported logging method
// or function, because it uses a fixed call depth to obtain the pc.
func log(ctx context.Context, l *slog.Logger, level slog.Level, msg string, args ...any) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !l.Enabled(ctx, level) {
		return
	}

	r := slog.NewRecord(time.Now(), level, msg, callerPC())
	r.Add(args...)
	_ = l.Handler().Handle(ctx, r)
}

// logAttrs is like [log], but for methods that take ...Attr.
func logAttrs(ctx context.Context, l *slog.Logger, level slog.Level, msg string, attrs ...slog.Attr) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !l.Enabled(ctx, level) {
		return
	}

	r := slog.NewRecord(time.Now(), level, msg, callerPC())
	r.AddAttrs(attrs...)
	_ = l.Handler().Handle(ctx, r)
}

// callerPC returns the pc of the exported function's caller.
func callerPC() uintptr {
	var pcs [1]uintptr
	// skip [runtime.Callers, callerPC, log, exported function]
	runtime.Callers(4, pcs[:])
	return pcs[0]
}
