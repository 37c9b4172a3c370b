package services

import (
	"context"
	"errors"

	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	"github.com/SscSPs/ledger_posting_engine/internal/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("github.com/SscSPs/ledger_posting_engine/internal/core/services")

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the request-scoped logger from context
func (s *BaseService) GetLogger(ctx context.Context) *zap.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogFailure logs err at warn level when the caller can correct it and at
// error level otherwise.
func (s *BaseService) LogFailure(ctx context.Context, err error, msg string, fields ...zap.Field) {
	logger := s.GetLogger(ctx)
	fields = append(fields, zap.Error(err))
	if code := apperrors.CodeOf(err); code != "" && code != apperrors.CodeTransactionFailed {
		logger.Warn(msg, append(fields, zap.String("code", string(code)))...)
		return
	}
	logger.Error(msg, fields...)
}

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// classify leaves ledger errors untouched and turns anything else coming out
// of storage into a TRANSACTION_FAILED error carrying the cause.
func classify(message string, err error) error {
	var le *apperrors.LedgerError
	if errors.As(err, &le) {
		return err
	}
	if errors.Is(err, apperrors.ErrDuplicate) {
		return &apperrors.LedgerError{Code: apperrors.CodeDuplicate, Message: message, Kind: apperrors.ErrDuplicate, Err: err}
	}
	return apperrors.NewTransactionError(message, err)
}

func requireScope(orgID, userID string) error {
	if orgID == "" || userID == "" {
		return apperrors.NewValidationError(apperrors.CodeInvalidInput, "Organization and user are required")
	}
	return nil
}
