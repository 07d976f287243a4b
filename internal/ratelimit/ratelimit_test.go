package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"github.com/fitfi/fitfi-server/internal/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllow_WithinBurst(t *testing.T) {
	krl := ratelimit.New(1, 3)
	defer krl.Stop()

	for i := 0; i < 3; i++ {
		assert.True(t, krl.Allow("user-1"), "request %d should be allowed", i)
	}
	assert.False(t, krl.Allow("user-1"), "burst exhausted")
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	krl := ratelimit.New(1, 1)
	defer krl.Stop()

	assert.True(t, krl.Allow("user-1"))
	assert.False(t, krl.Allow("user-1"))

	// A different key has its own bucket.
	assert.True(t, krl.Allow("user-2"))
}

func TestWait_RespectsContextCancellation(t *testing.T) {
	krl := ratelimit.New(0.001, 1)
	defer krl.Stop()

	// Drain the bucket.
	require.True(t, krl.Allow("user-1"))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := krl.Wait(ctx, "user-1")
	assert.Error(t, err)
}

func TestStop_Idempotent(t *testing.T) {
	krl := ratelimit.New(1, 1)
	krl.Stop()
	krl.Stop()
}
