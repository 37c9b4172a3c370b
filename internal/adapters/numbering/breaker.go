package numbering

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// BreakerSettings tunes the circuit breaker around a remote counter.
type BreakerSettings struct {
	ConsecutiveFailures uint32
	OpenTimeout         time.Duration
	MaxHalfOpenRequests uint32
}

// DefaultBreakerSettings trips after five straight failures and probes again after 30s.
var DefaultBreakerSettings = BreakerSettings{
	ConsecutiveFailures: 5,
	OpenTimeout:         30 * time.Second,
	MaxHalfOpenRequests: 1,
}

// BreakerCounter fails fast while the wrapped counter keeps failing, instead
// of letting every journal creation wait on a dead backend.
type BreakerCounter struct {
	next    Counter
	breaker *gobreaker.CircuitBreaker
}

func NewBreakerCounter(name string, next Counter, settings BreakerSettings, logger *zap.Logger) *BreakerCounter {
	if logger == nil {
		logger = zap.L()
	}
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: settings.MaxHalfOpenRequests,
		Timeout:     settings.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= settings.ConsecutiveFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Numbering circuit breaker changed state",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})
	return &BreakerCounter{next: next, breaker: cb}
}

func (c *BreakerCounter) Next(ctx context.Context, scope string) (int64, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.next.Next(ctx, scope)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return 0, fmt.Errorf("numbering backend unavailable (%s): %w", c.breaker.Name(), err)
		}
		return 0, err
	}
	return result.(int64), nil
}

// State reports the breaker state, for health checks.
func (c *BreakerCounter) State() gobreaker.State {
	return c.breaker.State()
}
