package requestctx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActor(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, DefaultActor, ActorFromContext(ctx))
	assert.Equal(t, DefaultActor, ActorFromContext(WithActor(ctx, "   ")))
	assert.Equal(t, "maria", ActorFromContext(WithActor(ctx, " maria ")))
}

func TestRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", RequestIDFromContext(ctx))
	assert.Equal(t, "", RequestIDFromContext(context.Background()))
}
