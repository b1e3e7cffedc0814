package detach

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type ctxKey string

func TestContext(t *testing.T) {
	parent, cancel := context.WithCancel(context.WithValue(context.Background(), ctxKey("request"), "abc"))
	ctx := Context(parent)
	cancel()

	assert.Error(t, parent.Err())
	assert.NoError(t, ctx.Err())
	assert.Nil(t, ctx.Done())
	_, ok := ctx.Deadline()
	assert.False(t, ok)
	assert.Equal(t, "abc", ctx.Value(ctxKey("request")))
}

func TestWithTimeout(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	ctx, stop := WithTimeout(parent, time.Minute)
	defer stop()
	cancel()

	assert.NoError(t, ctx.Err())
	deadline, ok := ctx.Deadline()
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
}
