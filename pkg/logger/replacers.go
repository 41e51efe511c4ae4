package logger

import (
	"fmt"
	"log/slog"

	"github.com/samber/lo"
)

// Keys for log attributes.
const (
	ErrorKey           = "error"
	ErrorVerboseKey    = "error_verbose"
	ErrorStackTraceKey = "error_stacktrace"
)

const (
	LevelCritical = slog.Level(12)
	LevelPanic    = slog.Level(14)
	LevelFatal    = slog.Level(16)
)

const redacted = "[REDACTED]"

type attrReplacer = func(groups []string, attr slog.Attr) slog.Attr

func chainReplacers(replacers ...attrReplacer) attrReplacer {
	return func(groups []string, attr slog.Attr) slog.Attr {
		for _, replace := range replacers {
			attr = replace(groups, attr)
		}
		return attr
	}
}

// levelAttrReplacer names the levels above error.
func levelAttrReplacer(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) > 0 || attr.Key != slog.LevelKey {
		return attr
	}
	l, ok := attr.Value.Any().(slog.Level)
	if !ok || l < LevelCritical {
		return attr
	}

	base, name := LevelFatal, "FATAL"
	switch {
	case l < LevelPanic:
		base, name = LevelCritical, "CRITICAL"
	case l < LevelFatal:
		base, name = LevelPanic, "PANIC"
	}
	if l != base {
		name = fmt.Sprintf("%s%+d", name, l-base)
	}
	return slog.String(attr.Key, name)
}

func errorAttrReplacer(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) == 0 && attr.Key == ErrorKey {
		if err, ok := attr.Value.Any().(error); ok && err != nil {
			return slog.String(ErrorKey, err.Error())
		}
	}
	return attr
}

func durationToMsAttrReplacer(_ []string, attr slog.Attr) slog.Attr {
	if attr.Value.Kind() == slog.KindDuration {
		return slog.Int64(attr.Key, attr.Value.Duration().Milliseconds())
	}
	return attr
}

// secretAttrReplacer masks the value of any attribute named after a secret, in any group.
func secretAttrReplacer(keys []string) attrReplacer {
	secrets := lo.SliceToMap(keys, func(key string) (string, struct{}) {
		return key, struct{}{}
	})
	return func(_ []string, attr slog.Attr) slog.Attr {
		if _, ok := secrets[attr.Key]; ok && attr.Value.Kind() != slog.KindGroup {
			return slog.String(attr.Key, redacted)
		}
		return attr
	}
}

// gcpAttrReplacer replaces the default attribute keys with the GCP logging attribute keys.
func gcpAttrReplacer(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return attr
	}
	switch attr.Key {
	case slog.MessageKey:
		attr.Key = "message"
	case slog.SourceKey:
		attr.Key = "logging.googleapis.com/sourceLocation"
	case slog.LevelKey:
		attr.Key = "severity"
		if l, ok := attr.Value.Any().(slog.Level); ok {
			attr.Value = slog.StringValue(gcpSeverity(l))
		}
	}
	return attr
}

// https://cloud.google.com/logging/docs/reference/v2/rest/v2/LogEntry#logseverity
func gcpSeverity(l slog.Level) string {
	switch {
	case l < slog.LevelInfo:
		return "DEBUG"
	case l < slog.LevelWarn:
		return "INFO"
	case l < slog.LevelError:
		return "WARNING"
	case l < LevelCritical:
		return "ERROR"
	case l < LevelPanic:
		return "CRITICAL"
	case l < LevelFatal:
		return "ALERT"
	default:
		return "EMERGENCY"
	}
}
