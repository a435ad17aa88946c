package appclient

import (
	"context"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/goliatone/go-errors"
)

// Credentials is the login payload: subject identifier plus secret.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c Credentials) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(
			&c.Email,
			validation.Required,
			is.Email,
		),
		validation.Field(
			&c.Password,
			validation.Required,
		),
	)
}

// SessionStore is the application-facing facade over the session core.
// Login and Logout are the only mutating entry points; everything else
// reads through the resolver. Subscribers get a fresh Session after every
// mutation, so UI state can bind to it the way the original stores did.
type SessionStore struct {
	api      *Client
	store    TokenStore
	resolver *SessionResolver
	logger   Logger

	mu   sync.Mutex
	subs map[int]func(Session)
	next int
}

func NewSessionStore(api *Client, store TokenStore, resolver *SessionResolver) *SessionStore {
	return &SessionStore{
		api:      api,
		store:    store,
		resolver: resolver,
		logger:   defLogger{},
		subs:     map[int]func(Session){},
	}
}

func (s *SessionStore) WithLogger(logger Logger) *SessionStore {
	s.logger = logger
	return s
}

// Current returns the session derived from the stored token.
func (s *SessionStore) Current(ctx context.Context) Session {
	return s.resolver.Current(ctx)
}

// Login submits credentials, stores the returned token, and returns the
// session derived from it. On any failure the store is left empty so a
// half-applied login cannot linger.
func (s *SessionStore) Login(ctx context.Context, creds Credentials) (Session, error) {
	if err := creds.Validate(); err != nil {
		return Session{}, errors.Wrap(err, errors.CategoryValidation, "invalid login payload")
	}

	res, err := s.api.Login(ctx, creds)
	if err != nil {
		s.logger.Error("login failed", "error", err)
		if cerr := s.store.Clear(ctx); cerr != nil {
			s.logger.Error("failed to clear token after login failure", "error", cerr)
		}
		return Session{}, err
	}

	if res.AccessToken == "" {
		return Session{}, ErrBadLoginResponse
	}

	if err := s.store.Set(ctx, res.AccessToken); err != nil {
		return Session{}, errors.Wrap(err, errors.CategoryInternal, "failed to store token")
	}

	session := s.resolver.Current(ctx)
	if !session.Authenticated {
		// The resolver found the fresh token undecodable and already
		// cleared it.
		return Session{}, ErrBadLoginResponse
	}

	s.logger.Info("login succeeded", "subject", session.Subject())
	s.publish(session)
	return session, nil
}

// Logout clears the token and notifies subscribers. Logging out twice is
// harmless.
func (s *SessionStore) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to clear token")
	}
	s.logger.Info("logged out")
	s.publish(Session{})
	return nil
}

// Subscribe registers a listener invoked after every login and logout.
// The returned function unsubscribes it.
func (s *SessionStore) Subscribe(fn func(Session)) func() {
	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *SessionStore) publish(session Session) {
	s.mu.Lock()
	listeners := make([]func(Session), 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(session)
	}
}
