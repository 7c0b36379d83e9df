package async

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
)

// Dispatch runs handler in a new goroutine on a context detached from the
// caller's cancellation, so side effects outlive the originating request.
// The caller's logger is carried over. Panics are recovered and logged with
// a stack trace, and errors returned by handler are logged.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	detached := detach(ctx)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ctxlog.From(detached).Error("panic in async handler",
					"recover", r,
					"stack", string(debug.Stack()))
			}
		}()

		if err := handler(detached); err != nil {
			ctxlog.From(detached).Error("error in async handler", "error", err)
		}
	}()
}

// detach returns a background context carrying ctx's logger.
func detach(ctx context.Context) context.Context {
	return ctxlog.With(context.Background(), ctxlog.From(ctx))
}
