package appclient

import (
	"strings"

	"github.com/goliatone/go-errors"
)

const (
	TextCodeTokenMalformed   = "session_token_malformed"
	TextCodeTokenExpired     = "session_token_expired"
	TextCodeSignInRequired   = "session_sign_in_required"
	TextCodePermissionDenied = "session_permission_denied"
	TextCodeInvalidCreds     = "session_invalid_credentials"
	TextCodeBadLoginReply    = "session_bad_login_response"
	TextCodeRouteConfig      = "session_route_config"
)

// ErrTokenMalformed is returned when a stored credential cannot be parsed
// as a token. It is recovered locally: the resolver treats the session as
// anonymous and clears the store.
var ErrTokenMalformed = errors.New("unable to decode session token", errors.CategoryAuth).
	WithTextCode(TextCodeTokenMalformed).
	WithCode(errors.CodeUnauthorized)

// ErrTokenExpired is returned when advisory expiry checking is enabled and
// the exp claim is in the past.
var ErrTokenExpired = errors.New("session token expired", errors.CategoryAuth).
	WithTextCode(TextCodeTokenExpired).
	WithCode(errors.CodeUnauthorized)

// ErrSignInRequired is returned when the server rejected a call with 401.
// The gateway has already invalidated the session by the time callers see it.
var ErrSignInRequired = errors.New("sign-in required", errors.CategoryAuth).
	WithTextCode(TextCodeSignInRequired).
	WithCode(errors.CodeUnauthorized)

// ErrPermissionDenied is returned on a 403. The user is authenticated but
// not authorized for the resource, so the token is left untouched.
var ErrPermissionDenied = errors.New("insufficient permissions", errors.CategoryAuthz).
	WithTextCode(TextCodePermissionDenied).
	WithCode(errors.CodeForbidden)

// ErrInvalidCredentials is returned when a login attempt is rejected.
var ErrInvalidCredentials = errors.New("the credentials provided are invalid", errors.CategoryAuth).
	WithTextCode(TextCodeInvalidCreds).
	WithCode(errors.CodeUnauthorized)

// ErrBadLoginResponse is returned when the login endpoint answered 200 but
// the body carried no usable token.
var ErrBadLoginResponse = errors.New("login response missing access token", errors.CategoryInternal).
	WithTextCode(TextCodeBadLoginReply).
	WithCode(errors.CodeInternal)

// ErrRouteConfig flags an invalid route declaration: conflicting guard
// flags, or a redirect target that is itself guarded. These are caught at
// table construction, never at navigation time.
var ErrRouteConfig = errors.New("invalid route requirement configuration", errors.CategoryValidation).
	WithTextCode(TextCodeRouteConfig).
	WithCode(errors.CodeBadRequest)

// IsTokenMalformedError will check for undecodable token errors
func IsTokenMalformedError(err error) bool {
	if err == nil {
		return false
	}
	var rich *errors.Error
	if errors.As(err, &rich) && rich.TextCode == TextCodeTokenMalformed {
		return true
	}
	return strings.Contains(err.Error(), "token is malformed") ||
		strings.Contains(err.Error(), "token contains an invalid number of segments")
}

// IsPermissionDeniedError will check for 403 style rejections
func IsPermissionDeniedError(err error) bool {
	if err == nil {
		return false
	}
	var rich *errors.Error
	if errors.As(err, &rich) {
		return rich.TextCode == TextCodePermissionDenied
	}
	return false
}

// IsSignInRequiredError will check for 401 style rejections
func IsSignInRequiredError(err error) bool {
	if err == nil {
		return false
	}
	var rich *errors.Error
	if errors.As(err, &rich) {
		return rich.TextCode == TextCodeSignInRequired
	}
	return false
}
