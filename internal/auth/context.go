package auth

import (
	"context"

	"github.com/google/uuid"
)

// Method identifies how a request was authenticated
type Method string

const (
	MethodJWT    Method = "jwt"
	MethodAPIKey Method = "api_key"
)

// SystemUserID identifies requests authenticated with the admin API key
var SystemUserID = uuid.MustParse("00000000-0000-0000-0000-000000000000")

// UserContext holds authenticated admin information
type UserContext struct {
	UserID      uuid.UUID
	DisplayName string
	Email       string
	Method      Method
}

type contextKey string

const userContextKey contextKey = "userContext"

// WithUserContext adds user context to the context
func WithUserContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// FromContext extracts user context from the context
func FromContext(ctx context.Context) (*UserContext, bool) {
	user, ok := ctx.Value(userContextKey).(*UserContext)
	return user, ok && user != nil
}

// MustFromContext extracts user context or panics
func MustFromContext(ctx context.Context) *UserContext {
	user, ok := FromContext(ctx)
	if !ok {
		panic("user context not found in context")
	}
	return user
}

// IsSystem reports whether the request came from an API key rather than a signed-in admin
func (u *UserContext) IsSystem() bool {
	return u.Method == MethodAPIKey
}
