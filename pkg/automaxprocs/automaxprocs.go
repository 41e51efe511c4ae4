// Package automaxprocs sets GOMAXPROCS to the container CPU quota for the long running metadata server.
package automaxprocs

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/rainbow-minter/pkg/logger"
	"github.com/gaze-network/rainbow-minter/pkg/logger/slogx"
	"go.uber.org/automaxprocs/maxprocs"
)

var (
	undo func()

	// initialMaxProcs is GOMAXPROCS at process start.
	initialMaxProcs = Current()
)

func Init() error {
	ctx := logger.WithContext(context.Background(),
		slogx.String("package", "automaxprocs"),
		slogx.Int("prev_maxprocs", initialMaxProcs),
	)

	printf := func(format string, v ...any) {
		args := []any{slogx.String("event", "set_gomaxprocs")}
		// maxprocs passes the new value, except when undoing.
		if val, ok := utils.Optional(v); ok {
			// an explicit GOMAXPROCS environment variable wins
			if _, exists := os.LookupEnv("GOMAXPROCS"); exists {
				val = Current()
			}
			if n, ok := val.(int); ok {
				args = append(args, slogx.Int("set_maxprocs", n))
			}
		}
		logger.InfoContext(ctx, fmt.Sprintf(format, v...), args...)
	}

	revert, err := maxprocs.Set(maxprocs.Logger(printf), maxprocs.Min(1))
	if err != nil {
		return errors.WithStack(err)
	}
	undo = revert
	return nil
}

// Undo restores GOMAXPROCS to its value before Init and returns it.
func Undo() int {
	if undo != nil {
		undo()
		undo = nil
		return Current()
	}
	runtime.GOMAXPROCS(initialMaxProcs)
	return initialMaxProcs
}

// Current returns the current value of GOMAXPROCS.
func Current() int {
	return runtime.GOMAXPROCS(0)
}
