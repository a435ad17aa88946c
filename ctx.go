package appclient

import "context"

var sessionCtxKey = &contextKey{"session"}

type contextKey struct {
	name string
}

// WithSessionContext snapshots the session at request start. Pair it with
// SessionChanged so a response that resolves after a logout is discarded
// instead of repopulating UI state as if still authenticated.
func WithSessionContext(ctx context.Context, session Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey, session)
}

// SessionFromContext returns the snapshot stored by WithSessionContext.
func SessionFromContext(ctx context.Context) (Session, bool) {
	raw, ok := ctx.Value(sessionCtxKey).(Session)
	return raw, ok
}

// SessionChanged reports whether the identity moved between the snapshot
// in ctx and the resolver's current view. Callers should drop in-flight
// responses when it returns true.
func SessionChanged(ctx context.Context, resolver *SessionResolver) bool {
	snapshot, ok := SessionFromContext(ctx)
	if !ok {
		return false
	}
	current := resolver.Current(ctx)
	return snapshot.Authenticated != current.Authenticated ||
		snapshot.Subject() != current.Subject()
}
