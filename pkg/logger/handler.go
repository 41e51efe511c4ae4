package logger

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/cockroachdb/errors/errbase"
)

type (
	handleFunc func(context.Context, slog.Record) error
	middleware func(handleFunc) handleFunc
)

// middlewareHandler runs every record through middlewares before the wrapped handler.
type middlewareHandler struct {
	slog.Handler
	middlewares []middleware
	handle      handleFunc
}

func newMiddlewareHandler(handler slog.Handler, middlewares ...middleware) *middlewareHandler {
	handle := handler.Handle
	for i := len(middlewares) - 1; i >= 0; i-- {
		handle = middlewares[i](handle)
	}
	return &middlewareHandler{Handler: handler, middlewares: middlewares, handle: handle}
}

func (h *middlewareHandler) Handle(ctx context.Context, rec slog.Record) error {
	return h.handle(ctx, rec)
}

func (h *middlewareHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newMiddlewareHandler(h.Handler.WithAttrs(attrs), h.middlewares...)
}

func (h *middlewareHandler) WithGroup(name string) slog.Handler {
	return newMiddlewareHandler(h.Handler.WithGroup(name), h.middlewares...)
}

// middlewareErrorStackTrace adds the verbose error and its stack trace
// to every record carrying an error attribute.
func middlewareErrorStackTrace() middleware {
	return func(next handleFunc) handleFunc {
		return func(ctx context.Context, rec slog.Record) error {
			rec.Attrs(func(attr slog.Attr) bool {
				if attr.Key != ErrorKey {
					return true
				}
				err, ok := attr.Value.Any().(error)
				if !ok || err == nil {
					return true
				}
				rec.AddAttrs(slog.String(ErrorVerboseKey, fmt.Sprintf("%+v", err)))
				if x, ok := err.(errbase.StackTraceProvider); ok {
					rec.AddAttrs(slog.Any(ErrorStackTraceKey, stackFrames(x.StackTrace())))
				}
				return false
			})
			return next(ctx, rec)
		}
	}
}

// stackFrames renders a stack trace as "function file:line", innermost call first.
func stackFrames(trace errbase.StackTrace) []string {
	pcs := make([]uintptr, len(trace))
	for i, pc := range trace {
		pcs[i] = uintptr(pc)
	}

	var lines []string
	frames := runtime.CallersFrames(pcs)
	for {
		frame, more := frames.Next()
		if frame.Function != "" && frame.Function != "runtime.goexit" && frame.Function != "runtime.main" {
			lines = append(lines, fmt.Sprintf("%s %s:%d", frame.Function, frame.File, frame.Line))
		}
		if !more {
			break
		}
	}
	return lines
}
