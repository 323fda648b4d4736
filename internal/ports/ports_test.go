package ports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubChecker is a configurable HealthChecker for registry tests.
type stubChecker struct {
	name  string
	err   error
	delay time.Duration
}

func (s *stubChecker) Name() string { return s.name }

func (s *stubChecker) Check(ctx context.Context) error {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return s.err
}

func TestHealthRegistry_Register(t *testing.T) {
	registry := NewHealthRegistry()

	err := registry.Register(&stubChecker{name: "quote-source"})
	require.NoError(t, err)

	err = registry.Register(&stubChecker{name: "favorites-store"})
	require.NoError(t, err)
}

func TestHealthRegistry_RegisterDuplicate(t *testing.T) {
	registry := NewHealthRegistry()

	require.NoError(t, registry.Register(&stubChecker{name: "quote-source"}))

	err := registry.Register(&stubChecker{name: "quote-source"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateChecker))
}

func TestHealthRegistry_CheckAll_Empty(t *testing.T) {
	registry := NewHealthRegistry()

	result := registry.CheckAll(context.Background())

	assert.Equal(t, HealthStatusHealthy, result.Status)
	assert.Empty(t, result.Checks)
	assert.False(t, result.Timestamp.IsZero())
}

func TestHealthRegistry_CheckAll_AllHealthy(t *testing.T) {
	registry := NewHealthRegistry()
	require.NoError(t, registry.Register(&stubChecker{name: "quote-source"}))
	require.NoError(t, registry.Register(&stubChecker{name: "favorites-store"}))

	result := registry.CheckAll(context.Background())

	assert.Equal(t, HealthStatusHealthy, result.Status)
	require.Len(t, result.Checks, 2)
	assert.Equal(t, HealthStatusHealthy, result.Checks["quote-source"].Status)
	assert.Equal(t, HealthStatusHealthy, result.Checks["favorites-store"].Status)
}

func TestHealthRegistry_CheckAll_OneUnhealthy(t *testing.T) {
	registry := NewHealthRegistry()
	require.NoError(t, registry.Register(&stubChecker{name: "quote-source", err: errors.New("connection refused")}))
	require.NoError(t, registry.Register(&stubChecker{name: "favorites-store"}))

	result := registry.CheckAll(context.Background())

	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Equal(t, HealthStatusUnhealthy, result.Checks["quote-source"].Status)
	assert.Equal(t, "connection refused", result.Checks["quote-source"].Message)
	assert.Equal(t, HealthStatusHealthy, result.Checks["favorites-store"].Status)
}

func TestHealthRegistry_CheckAll_RespectsContext(t *testing.T) {
	registry := NewHealthRegistry()
	require.NoError(t, registry.Register(&stubChecker{name: "slow", delay: time.Second}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	result := registry.CheckAll(ctx)

	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Contains(t, result.Checks["slow"].Message, "context deadline exceeded")
}
