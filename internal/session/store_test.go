package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/skt-storefront/pkg/metrics"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestStoreResolveIssuesAndReuses(t *testing.T) {
	store := NewStore(StoreConfig{})
	t.Cleanup(store.Close)

	first, created := store.Resolve("")
	require.True(t, created)
	require.NotEmpty(t, first.ID())

	again, created := store.Resolve(first.ID())
	assert.False(t, created)
	assert.Same(t, first, again)

	other, created := store.Resolve("not-a-session")
	assert.True(t, created)
	assert.NotEqual(t, first.ID(), other.ID())
	assert.Equal(t, 2, store.Len())
}

func TestStoreSessionsAreIsolated(t *testing.T) {
	store := NewStore(StoreConfig{})
	t.Cleanup(store.Close)

	a := store.Create()
	b := store.Create()
	_, err := a.AddToCart("tee", "M")
	require.NoError(t, err)
	assert.Equal(t, 1, a.Cart().ItemCount)
	assert.Equal(t, 0, b.Cart().ItemCount)
}

func TestStoreExpiresIdleSessions(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	reg := prometheus.NewRegistry()
	store := NewStore(StoreConfig{TTL: time.Minute, Now: clock.Now, Metrics: metrics.NewStorefront(reg)})
	t.Cleanup(store.Close)

	idle := store.Create()
	busy := store.Create()
	assert.Equal(t, 2, store.Len())

	clock.Advance(45 * time.Second)
	_, ok := store.Get(busy.ID())
	require.True(t, ok)

	clock.Advance(30 * time.Second)
	_, ok = store.Get(idle.ID())
	assert.False(t, ok, "expired sessions are gone before the sweep")

	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 1, store.Len())
	_, ok = store.Get(busy.ID())
	assert.True(t, ok)
}

func TestStoreDelete(t *testing.T) {
	store := NewStore(StoreConfig{})
	sess := store.Create()
	assert.True(t, store.Delete(sess.ID()))
	assert.False(t, store.Delete(sess.ID()))
	assert.Equal(t, 0, store.Len())
}

func TestStoreRunStopsWithContext(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	store := NewStore(StoreConfig{TTL: time.Minute, SweepInterval: 5 * time.Millisecond, Now: clock.Now})
	t.Cleanup(store.Close)
	store.Create()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- store.Run(ctx) }()

	clock.Advance(2 * time.Minute)
	require.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestStoreReportsActiveSessions(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewStorefront(reg)
	store := NewStore(StoreConfig{Metrics: m})

	store.Create()
	store.Create()
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(sessionsGauge(2)), "skt_sessions_active"))

	store.Close()
	assert.Equal(t, 0, store.Len())
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(sessionsGauge(0)), "skt_sessions_active"))
}

func sessionsGauge(n int) string {
	return fmt.Sprintf(`# HELP skt_sessions_active Storefront sessions currently held in memory.
# TYPE skt_sessions_active gauge
skt_sessions_active %d
`, n)
}
