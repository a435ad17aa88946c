package appclient

import (
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// HeaderRequestID correlates client calls with server logs.
const HeaderRequestID = "X-Request-ID"

// MsgSessionExpired is shown when the server rejects the session.
const MsgSessionExpired = "Your session has expired, please sign in again"

var _ http.RoundTripper = &RequestGateway{}

// RequestGateway wraps every outbound call. Outbound it attaches the
// bearer credential from the token store when one exists; requests are
// never blocked locally for a missing credential, the server decides
// whether one was required. Inbound a 401 invalidates the session and
// signals a single redirect to the login surface, a 403 is surfaced as a
// permission error without touching the token, anything else passes
// through untouched. This layer does not retry.
type RequestGateway struct {
	store     TokenStore
	cfg       Config
	base      http.RoundTripper
	navigator Navigator
	notifier  Notifier
	logger    Logger

	// guards the clear-and-signal sequence so concurrent 401s coalesce
	// into one logout
	mu sync.Mutex
}

func NewRequestGateway(store TokenStore, cfg Config) *RequestGateway {
	return &RequestGateway{
		store:     store,
		cfg:       cfg,
		base:      http.DefaultTransport,
		navigator: noopNavigator{},
		notifier:  noopNotifier{},
		logger:    defLogger{},
	}
}

func (g *RequestGateway) WithTransport(rt http.RoundTripper) *RequestGateway {
	g.base = rt
	return g
}

func (g *RequestGateway) WithNavigator(nav Navigator) *RequestGateway {
	g.navigator = nav
	return g
}

func (g *RequestGateway) WithNotifier(n Notifier) *RequestGateway {
	g.notifier = n
	return g
}

func (g *RequestGateway) WithLogger(logger Logger) *RequestGateway {
	g.logger = logger
	return g
}

// Client returns an http.Client routed through the gateway.
func (g *RequestGateway) Client() *http.Client {
	return &http.Client{Transport: g}
}

func (g *RequestGateway) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())

	token, err := g.store.Get(req.Context())
	if err != nil {
		g.logger.Error("gateway failed to read token store", "error", err)
		token = ""
	}

	if token != "" {
		out.Header.Set("Authorization", g.cfg.GetAuthScheme()+" "+token)
	}

	if out.Header.Get(HeaderRequestID) == "" {
		out.Header.Set(HeaderRequestID, uuid.NewString())
	}

	res, err := g.base.RoundTrip(out)
	if err != nil {
		return nil, err
	}

	switch res.StatusCode {
	case http.StatusUnauthorized:
		// Session collapses before the caller's error handler runs.
		g.invalidate(req)
	case http.StatusForbidden:
		g.logger.Info("gateway call forbidden", "path", req.URL.Path)
	}

	return res, nil
}

// invalidate clears the session and signals a redirect to login carrying
// the originally intended destination. When several in-flight calls 401
// at once, the first one through performs the clear; the rest find the
// store already empty and stay quiet.
func (g *RequestGateway) invalidate(req *http.Request) {
	g.mu.Lock()
	token, err := g.store.Get(req.Context())
	if err != nil {
		g.mu.Unlock()
		g.logger.Error("gateway failed to read token store during invalidation", "error", err)
		return
	}
	if token == "" {
		g.mu.Unlock()
		g.logger.Debug("gateway ignoring 401, already logged out", "path", req.URL.Path)
		return
	}
	if cerr := g.store.Clear(req.Context()); cerr != nil {
		g.mu.Unlock()
		g.logger.Error("gateway failed to clear token on 401", "error", cerr)
		return
	}
	g.mu.Unlock()

	g.logger.Info("gateway invalidated session on 401", "path", req.URL.Path)
	g.notifier.Notify(Notice{Type: NoticeNegative, Message: MsgSessionExpired})
	g.navigator.Push(LoginRedirect(g.cfg, req.URL.Path))
}

// LoginRedirect builds the login surface path carrying the originally
// requested destination so login can forward there on success.
func LoginRedirect(cfg Config, intended string) string {
	if intended == "" {
		return cfg.GetLoginPath()
	}
	q := url.Values{}
	q.Set(cfg.GetRedirectParam(), intended)
	return cfg.GetLoginPath() + "?" + q.Encode()
}

// ForwardPath resolves where to go after a successful login: the redirect
// parameter carried by the login surface when present, otherwise the
// landing path.
func ForwardPath(cfg Config, loginPath string) string {
	if i := strings.IndexByte(loginPath, '?'); i >= 0 {
		if q, err := url.ParseQuery(loginPath[i+1:]); err == nil {
			if target := q.Get(cfg.GetRedirectParam()); target != "" {
				return target
			}
		}
	}
	return cfg.GetLandingPath()
}
