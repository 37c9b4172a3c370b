package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
)

type MockChannel struct {
	mock.Mock
}

var _ Channel = (*MockChannel)(nil)

func (m *MockChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	return m.Called(name, kind, durable, autoDelete, internal, noWait, args).Error(0)
}

func (m *MockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	return m.Called(ctx, exchange, key, mandatory, immediate, msg).Error(0)
}

func (m *MockChannel) Close() error {
	return m.Called().Error(0)
}

func sampleEvent() domain.JournalEvent {
	return domain.JournalEvent{
		EventID:       "evt-1",
		Type:          domain.JournalPostedEvent,
		OrgID:         "org-1",
		JournalID:     "j-1",
		JournalNumber: "JV-000001",
		Status:        domain.Posted,
		UserID:        "user-1",
		OccurredAt:    time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRabbitMQPublisher_Publish(t *testing.T) {
	ch := new(MockChannel)
	ch.On("ExchangeDeclare", DefaultExchange, amqp.ExchangeTopic, true, false, false, false, amqp.Table(nil)).Return(nil)

	var published amqp.Publishing
	ch.On("PublishWithContext", mock.Anything, DefaultExchange, "journal.posted", false, false, mock.AnythingOfType("amqp091.Publishing")).
		Run(func(args mock.Arguments) { published = args.Get(5).(amqp.Publishing) }).
		Return(nil)

	pub, err := NewPublisherOnChannel(ch, "")
	require.NoError(t, err)
	require.NoError(t, pub.PublishJournalEvent(context.Background(), sampleEvent()))

	assert.Equal(t, "application/json", published.ContentType)
	assert.Equal(t, amqp.Persistent, published.DeliveryMode)
	assert.Equal(t, "evt-1", published.MessageId)

	var decoded domain.JournalEvent
	require.NoError(t, json.Unmarshal(published.Body, &decoded))
	assert.Equal(t, "JV-000001", decoded.JournalNumber)
	assert.Equal(t, domain.Posted, decoded.Status)
	ch.AssertExpectations(t)
}

func TestRabbitMQPublisher_DeclareFails(t *testing.T) {
	ch := new(MockChannel)
	ch.On("ExchangeDeclare", "custom", amqp.ExchangeTopic, true, false, false, false, amqp.Table(nil)).
		Return(errors.New("access refused"))

	_, err := NewPublisherOnChannel(ch, "custom")
	assert.ErrorContains(t, err, "custom")
}

func TestRabbitMQPublisher_PublishFails(t *testing.T) {
	ch := new(MockChannel)
	ch.On("ExchangeDeclare", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	ch.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(amqp.ErrClosed)
	ch.On("Close").Return(nil)

	pub, err := NewPublisherOnChannel(ch, "")
	require.NoError(t, err)

	err = pub.PublishJournalEvent(context.Background(), sampleEvent())
	assert.ErrorIs(t, err, amqp.ErrClosed)
	assert.NoError(t, pub.Close())
}

func TestLogPublisher(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	pub := NewLogPublisher(zap.New(core))

	require.NoError(t, pub.PublishJournalEvent(context.Background(), sampleEvent()))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "journal.posted", logs.All()[0].ContextMap()["type"])
}
