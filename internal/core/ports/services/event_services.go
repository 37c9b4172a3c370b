package services

import (
	"context"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
)

// EventPublisher announces committed journal lifecycle changes.
type EventPublisher interface {
	PublishJournalEvent(ctx context.Context, event domain.JournalEvent) error
}
