package numbering

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "JV-000001", Format("JV", 1))
	assert.Equal(t, "GJ-1234567", Format("GJ", 1234567))
}

func TestServiceNextNumber(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryCounter(), "")

	first, err := svc.NextNumber(ctx, "org-1")
	require.NoError(t, err)
	second, err := svc.NextNumber(ctx, "org-1")
	require.NoError(t, err)
	other, err := svc.NextNumber(ctx, "org-2")
	require.NoError(t, err)

	assert.Equal(t, "JV-000001", first)
	assert.Equal(t, "JV-000002", second)
	assert.Equal(t, "JV-000001", other, "sequences are per scope")
}

func TestMemoryCounterConcurrent(t *testing.T) {
	ctx := context.Background()
	counter := NewMemoryCounter()

	const workers = 50
	seen := make(chan int64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := counter.Next(ctx, "org-1")
			assert.NoError(t, err)
			seen <- n
		}()
	}
	wg.Wait()
	close(seen)

	unique := make(map[int64]struct{})
	for n := range seen {
		unique[n] = struct{}{}
	}
	assert.Len(t, unique, workers)
}

func TestMemoryCounterCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMemoryCounter().Next(ctx, "org-1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRedisCounter(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	svc := NewService(NewRedisCounter(client), "JV")
	ctx := context.Background()

	n1, err := svc.NextNumber(ctx, "org-1")
	require.NoError(t, err)
	n2, err := svc.NextNumber(ctx, "org-1")
	require.NoError(t, err)

	assert.Equal(t, "JV-000001", n1)
	assert.Equal(t, "JV-000002", n2)

	stored, err := mr.Get("ledger:journal_seq:org-1")
	require.NoError(t, err)
	assert.Equal(t, "2", stored)
}

func TestRedisCounterBackendDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	mr.Close()
	_, err := NewRedisCounter(client).Next(context.Background(), "org-1")
	assert.Error(t, err)
}

type failingCounter struct {
	calls int
	err   error
}

func (f *failingCounter) Next(context.Context, string) (int64, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	return int64(f.calls), nil
}

func TestBreakerCounterOpensAfterFailures(t *testing.T) {
	backend := &failingCounter{err: errors.New("connection refused")}
	counter := NewBreakerCounter("numbering-test", backend, BreakerSettings{
		ConsecutiveFailures: 2,
		OpenTimeout:         time.Minute,
		MaxHalfOpenRequests: 1,
	}, zap.NewNop())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := counter.Next(ctx, "org-1")
		assert.ErrorIs(t, err, backend.err)
	}
	assert.Equal(t, gobreaker.StateOpen, counter.State())

	_, err := counter.Next(ctx, "org-1")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 2, backend.calls, "an open breaker must not reach the backend")
}

func TestBreakerCounterPassesThrough(t *testing.T) {
	counter := NewBreakerCounter("numbering-test", &failingCounter{}, DefaultBreakerSettings, nil)
	n, err := counter.Next(context.Background(), "org-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, gobreaker.StateClosed, counter.State())
}
