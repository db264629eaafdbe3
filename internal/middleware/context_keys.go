package middleware

import (
	"context"

	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// callerKey is the key used to store the authenticated caller address.
const callerKey = contextKey("caller")

// WithCaller returns a copy of ctx carrying the caller address.
func WithCaller(ctx context.Context, caller domain.Address) context.Context {
	return context.WithValue(ctx, callerKey, caller)
}

// GetCallerFromContext retrieves the authenticated caller address from the
// Gin context. It returns false when the request was not authenticated.
func GetCallerFromContext(c *gin.Context) (domain.Address, bool) {
	if v, exists := c.Get(string(callerKey)); exists {
		if caller, ok := v.(domain.Address); ok {
			return caller, true
		}
	}
	caller, ok := c.Request.Context().Value(callerKey).(domain.Address)
	return caller, ok
}

// CallerFromCtx retrieves the caller address from a standard context.
func CallerFromCtx(ctx context.Context) (domain.Address, bool) {
	caller, ok := ctx.Value(callerKey).(domain.Address)
	return caller, ok
}
