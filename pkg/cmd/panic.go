package cmd

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/klwxsrx/go-session-gate/pkg/log"
)

// HandleAppPanic logs msg, the result of recover() taken in the caller's deferred func.
func HandleAppPanic(ctx context.Context, logger log.Logger, msg any) (panicCaught bool) {
	if msg == nil {
		return false
	}

	logger.WithField("panic", log.Fields{
		"message": fmt.Sprintf("%v", msg),
		"stack":   string(debug.Stack()),
	}).Error(ctx, "app failed with panic")
	return true
}
