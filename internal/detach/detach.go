// Package detach derives contexts for work that must outlive the request that
// started it.
package detach

import (
	"context"
	"time"
)

type detached struct {
	parent context.Context
}

// Context returns a context carrying the values of ctx that is never cancelled
// and has no deadline, whatever happens to ctx.
func Context(ctx context.Context) context.Context {
	return detached{parent: ctx}
}

// WithTimeout detaches ctx and bounds the new context by timeout.
func WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(Context(ctx), timeout)
}

func (d detached) Deadline() (time.Time, bool) { return time.Time{}, false }
func (d detached) Done() <-chan struct{}       { return nil }
func (d detached) Err() error                  { return nil }
func (d detached) Value(key any) any           { return d.parent.Value(key) }
