package events

import (
	"context"

	"go.uber.org/zap"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_posting_engine/internal/core/ports/services"
)

// LogPublisher writes events to the log. It is used when no broker is configured.
type LogPublisher struct {
	logger *zap.Logger
}

var _ portssvc.EventPublisher = (*LogPublisher)(nil)

func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) PublishJournalEvent(_ context.Context, event domain.JournalEvent) error {
	p.logger.Debug("Journal event",
		zap.String("event_id", event.EventID),
		zap.String("type", string(event.Type)),
		zap.String("org_id", event.OrgID),
		zap.String("journal_id", event.JournalID),
		zap.String("journal_number", event.JournalNumber),
		zap.String("status", string(event.Status)))
	return nil
}
