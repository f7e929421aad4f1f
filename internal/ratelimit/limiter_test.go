package ratelimit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNonPositiveRateIsUnlimited(t *testing.T) {
	l := New("TMDB", 0)
	assert.Nil(t, l)
	assert.Equal(t, "unlimited", l.Name())
	require.NoError(t, l.Wait(context.Background()))
}

func TestWaitHonoursCancelledContext(t *testing.T) {
	l := New("TMDB", 1)
	require.NotNil(t, l)

	// drain the single token
	require.NoError(t, l.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := l.Wait(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit wait for TMDB")
}
