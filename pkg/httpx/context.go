package httpx

import "context"

type ctxKey string

const (
	CtxKeyMemberEmail ctxKey = "member_email"
	CtxKeyMemberRole  ctxKey = "member_role"
)

// MemberFromContext returns the authenticated member's email and role, as
// injected by AuthnMiddleware. ok is false on unauthenticated requests.
func MemberFromContext(ctx context.Context) (email, role string, ok bool) {
	email, ok = ctx.Value(CtxKeyMemberEmail).(string)
	if !ok || email == "" {
		return "", "", false
	}
	role, _ = ctx.Value(CtxKeyMemberRole).(string)
	return email, role, true
}
