package appclient

import (
	"context"
	"fmt"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

// TokenStore is the only place a token may be written. Every other
// component treats it as read only; absence of a token means no session.
type TokenStore interface {
	// Get returns the current token, or the empty string when none is set.
	Get(ctx context.Context) (string, error)
	// Set overwrites the stored token unconditionally.
	Set(ctx context.Context, token string) error
	// Clear removes the stored token. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}

// Session is the resolver's point-in-time view of the authentication state.
// It is always derived from the token, never stored.
type Session struct {
	Authenticated bool
	Identity      *AuthClaims
	Roles         RoleSet
}

// Subject returns the account identifier or the empty string for an
// anonymous session.
func (s Session) Subject() string {
	if s.Identity == nil {
		return ""
	}
	return s.Identity.Subject()
}

// Navigator receives redirect signals from the gateway and the guard.
type Navigator interface {
	Push(path string)
}

// NoticeType mirrors the severity channels of the UI notification surface.
type NoticeType string

const (
	NoticeNegative NoticeType = "negative"
	NoticeWarning  NoticeType = "warning"
)

// Notice is a user-visible signal. Auth rejections always surface as a
// notice plus redirect, never as a raw network error.
type Notice struct {
	Type    NoticeType
	Message string
}

// Notifier delivers notices to the user.
type Notifier interface {
	Notify(notice Notice)
}

// Config holds client session options.
type Config interface {
	GetBaseURL() string
	GetTokenKey() string
	GetAuthScheme() string
	GetLoginPath() string
	GetLandingPath() string
	GetForbiddenPath() string
	GetRedirectParam() string
	// GetExpiryCheck reports whether the resolver should treat a past exp
	// claim as unauthenticated. Advisory only; the server remains the
	// authority on token validity.
	GetExpiryCheck() bool
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] APPCLIENT "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] APPCLIENT "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] APPCLIENT "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}

type noopNavigator struct{}

func (noopNavigator) Push(string) {}

type noopNotifier struct{}

func (noopNotifier) Notify(Notice) {}
