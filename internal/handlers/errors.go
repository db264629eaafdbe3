package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/agarrido2001/XaveMarket/internal/apperrors"
	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	"github.com/agarrido2001/XaveMarket/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string          `json:"error"`
	Kind    string          `json:"kind,omitempty"`
	TokenID *domain.TokenID `json:"tokenId,omitempty"`
}

// statusFor maps a service error to an HTTP status.
func statusFor(err error) int {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrReentrantCall):
		return http.StatusConflict
	case errors.As(err, &appErr) && appErr.Code == http.StatusConflict:
		return http.StatusConflict
	}

	switch apperrors.Classify(err) {
	case apperrors.KindValidation:
		return http.StatusBadRequest
	case apperrors.KindBusiness:
		return http.StatusUnprocessableEntity
	case apperrors.KindExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as JSON. Internal failures are logged and hidden
// behind a generic message.
func respondError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := statusFor(err)

	resp := ErrorResponse{Error: err.Error(), Kind: string(apperrors.Classify(err))}
	if token, ok := apperrors.TokenOf(err); ok {
		id := domain.TokenID(token)
		resp.TokenID = &id
	}

	if status >= http.StatusInternalServerError && status != http.StatusBadGateway {
		logger.Error(action+" failed", slog.String("error", err.Error()))
		resp.Error = fmt.Sprintf("Failed to %s", strings.ToLower(action))
	} else {
		logger.Warn(action+" rejected", slog.String("error", err.Error()), slog.Int("status", status))
	}
	c.JSON(status, resp)
}

// respondBindError reports a malformed request body or query.
func respondBindError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request: " + strings.Join(fields, "; "), Kind: string(apperrors.KindValidation)})
		return
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error(), Kind: string(apperrors.KindValidation)})
}

// callerOrAbort returns the authenticated caller, answering 401 when absent.
func callerOrAbort(c *gin.Context) (domain.Address, bool) {
	caller, ok := middleware.GetCallerFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Caller not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return domain.ZeroAddress, false
	}
	return caller, true
}

// addressParam parses a path parameter as an address, answering 400 when malformed.
func addressParam(c *gin.Context, name string) (domain.Address, bool) {
	addr, err := domain.ParseAddress(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("invalid %s: %s", name, err.Error()), Kind: string(apperrors.KindValidation)})
		return domain.ZeroAddress, false
	}
	return addr, true
}

// tokenParam parses a path parameter as a token id, answering 400 when malformed.
func tokenParam(c *gin.Context, name string) (domain.TokenID, bool) {
	id, err := domain.ParseTokenID(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("invalid %s: %s", name, err.Error()), Kind: string(apperrors.KindValidation)})
		return 0, false
	}
	return id, true
}
