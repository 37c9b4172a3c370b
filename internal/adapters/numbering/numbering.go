// Package numbering issues sequential journal numbers such as JV-000001.
// A Counter hands out raw sequence values per scope and Service formats them.
package numbering

import (
	"context"
	"fmt"
	"strings"

	portssvc "github.com/SscSPs/ledger_posting_engine/internal/core/ports/services"
)

// DefaultPrefix is used when no prefix is configured.
const DefaultPrefix = "JV"

// Counter returns the next value of the sequence named by scope. Values start
// at 1 and are never handed out twice.
type Counter interface {
	Next(ctx context.Context, scope string) (int64, error)
}

// Service implements portssvc.NumberingSvc on top of a Counter.
type Service struct {
	counter Counter
	prefix  string
}

var _ portssvc.NumberingSvc = (*Service)(nil)

// NewService creates a numbering service. An empty prefix falls back to DefaultPrefix.
func NewService(counter Counter, prefix string) *Service {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Service{counter: counter, prefix: prefix}
}

func (s *Service) NextNumber(ctx context.Context, scope string) (string, error) {
	n, err := s.counter.Next(ctx, scope)
	if err != nil {
		return "", fmt.Errorf("failed to get next journal number for %s: %w", scope, err)
	}
	return Format(s.prefix, n), nil
}

// Format renders a sequence value as PREFIX-000001.
func Format(prefix string, n int64) string {
	return fmt.Sprintf("%s-%06d", prefix, n)
}
