package appclient

import (
	"context"
	"time"
)

// SessionResolver derives the current identity from the token store on
// demand. It never memoizes: a Clear elsewhere is observed on the very
// next call, so there is no stale-read window.
type SessionResolver struct {
	store  TokenStore
	cfg    Config
	logger Logger
	now    func() time.Time
}

func NewSessionResolver(store TokenStore, cfg Config) *SessionResolver {
	return &SessionResolver{
		store:  store,
		cfg:    cfg,
		logger: defLogger{},
		now:    time.Now,
	}
}

func (r *SessionResolver) WithLogger(logger Logger) *SessionResolver {
	r.logger = logger
	return r
}

// WithClock overrides the time source used for advisory expiry checks.
func (r *SessionResolver) WithClock(now func() time.Time) *SessionResolver {
	r.now = now
	return r
}

// Current returns the session derived from the stored token.
//
// Authenticated means a token is present, not that it is valid: an expired
// or tampered token reads as authenticated until a server call rejects it
// through the gateway. When Config.GetExpiryCheck is on, a past exp claim
// reads as unauthenticated, but the token is left in place; only the
// server decides when a credential is truly dead.
//
// A token that fails to decode is treated as no session and the store is
// cleared so the client does not keep tripping over garbage state.
func (r *SessionResolver) Current(ctx context.Context) Session {
	token, err := r.store.Get(ctx)
	if err != nil {
		r.logger.Error("session resolver failed to read token store", "error", err)
		return Session{}
	}

	if token == "" {
		return Session{}
	}

	claims, err := DecodeToken(token)
	if err != nil {
		r.logger.Error("session resolver discarding undecodable token", "error", err)
		if cerr := r.store.Clear(ctx); cerr != nil {
			r.logger.Error("session resolver failed to clear corrupt token", "error", cerr)
		}
		return Session{}
	}

	if r.cfg.GetExpiryCheck() {
		if exp := claims.Expires(); !exp.IsZero() && exp.Before(r.now()) {
			r.logger.Debug("session token past expiry, treating as unauthenticated", "exp", exp)
			return Session{}
		}
	}

	return Session{
		Authenticated: true,
		Identity:      claims,
		Roles:         claims.Roles(),
	}
}
