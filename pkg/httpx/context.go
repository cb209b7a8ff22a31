package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID ctxKey = "user_id"
	CtxKeyEmail  ctxKey = "email"
	CtxKeyBearer ctxKey = "bearer" // raw presented token, needed for refresh rotation
)

// UserIDFromContext returns the authenticated user's id, or "" when the
// request did not pass through AuthnMiddleware.
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}

// BearerFromContext returns the raw bearer token the request presented.
func BearerFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyBearer).(string); ok {
		return v
	}
	return ""
}
