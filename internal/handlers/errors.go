package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	"github.com/SscSPs/ledger_posting_engine/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error string              `json:"error"`
	Code  apperrors.ErrorCode `json:"code,omitempty"`
}

// statusFor maps the ledger error kinds onto HTTP status codes. A LedgerError
// answers with its own Kind, not with whatever its cause wraps.
func statusFor(err error) int {
	var le *apperrors.LedgerError
	if errors.As(err, &le) && le.Kind != nil {
		err = le.Kind
	}
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrInvalidState), errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrTransaction):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as JSON. Classified errors keep their message;
// anything else is logged and hidden behind a generic message.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if !apperrors.IsClassified(err) {
		logger.Error(fallback, zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Error: fallback})
		return
	}

	status := statusFor(err)

	if status >= http.StatusInternalServerError {
		logger.Error(fallback, zap.Error(err))
	} else {
		logger.Warn(fallback, zap.Error(err))
	}
	c.JSON(status, errorResponse{Error: err.Error(), Code: apperrors.CodeOf(err)})
}

// respondBindError reports a request that failed binding or struct validation.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Invalid request", zap.Error(err))

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
		}
		c.JSON(http.StatusBadRequest, errorResponse{
			Error: "Invalid request: " + strings.Join(fields, "; "),
			Code:  apperrors.CodeInvalidInput,
		})
		return
	}
	c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request format", Code: apperrors.CodeInvalidInput})
}

// actingUser pulls the authenticated user id, writing a 401 when absent.
func actingUser(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
		return "", false
	}
	return userID, true
}
