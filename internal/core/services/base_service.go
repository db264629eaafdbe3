package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/agarrido2001/XaveMarket/internal/apperrors"
	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	portssvc "github.com/agarrido2001/XaveMarket/internal/core/ports/services"
	"github.com/agarrido2001/XaveMarket/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Authorizer portssvc.RoleAuthorizerSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()), slog.String("error_kind", string(apperrors.Classify(err))))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogWarn logs an expected failure, such as a rejected input
func (s *BaseService) LogWarn(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()), slog.String("error_kind", string(apperrors.Classify(err))))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Warn(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// logFailure logs err at warn level for validation and business failures
// and at error level for everything else.
func (s *BaseService) logFailure(ctx context.Context, err error, msg string, keyvals ...any) {
	switch apperrors.Classify(err) {
	case apperrors.KindValidation, apperrors.KindBusiness:
		s.LogWarn(ctx, err, msg, keyvals...)
	default:
		s.LogError(ctx, err, msg, keyvals...)
	}
}

// AuthorizeCaller checks that caller holds role. Without an authorizer every
// privileged call is refused.
func (s *BaseService) AuthorizeCaller(ctx context.Context, caller domain.Address, role domain.Role) error {
	if s.Authorizer == nil {
		s.LogDebug(ctx, "No role authorizer configured, access denied",
			slog.String("caller", caller.String()),
			slog.String("required_role", string(role)))
		return fmt.Errorf("%w: missing role %s", apperrors.ErrUnauthorized, role)
	}
	return s.Authorizer.AuthorizeCaller(ctx, caller, role)
}
