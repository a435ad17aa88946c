package appclient

import "context"

// User-visible guard notices.
const (
	MsgSignInRequired   = "You need to sign in to access this section"
	MsgPermissionDenied = "You do not have permission to access this section"
)

// DecisionAction is the outcome of a guard evaluation.
type DecisionAction int

const (
	// DecisionAllow lets the transition proceed.
	DecisionAllow DecisionAction = iota
	// DecisionRedirect initiates a new transition to Target, which
	// re-enters the guard with the new destination.
	DecisionRedirect
	// DecisionDeny blocks the transition; Target points at the forbidden
	// surface.
	DecisionDeny
)

// DecisionReason explains a non-allow outcome. Unauthenticated and
// unauthorized are distinct: destination and message differ.
type DecisionReason string

const (
	ReasonGuestOnly       DecisionReason = "guest_only"
	ReasonUnauthenticated DecisionReason = "unauthenticated"
	ReasonUnauthorized    DecisionReason = "unauthorized"
)

// Decision is the terminal state of a guard evaluation.
type Decision struct {
	Action DecisionAction
	Target string
	Reason DecisionReason
	Notice *Notice
}

func (d Decision) Allowed() bool {
	return d.Action == DecisionAllow
}

// NavigationGuard decides, once per attempted route transition, whether
// the transition may proceed. It consults the resolver fresh on every
// evaluation so a logout is observed immediately.
type NavigationGuard struct {
	resolver *SessionResolver
	table    *RouteTable
	cfg      Config
	notifier Notifier
	logger   Logger
}

func NewNavigationGuard(resolver *SessionResolver, table *RouteTable, cfg Config) *NavigationGuard {
	return &NavigationGuard{
		resolver: resolver,
		table:    table,
		cfg:      cfg,
		notifier: noopNotifier{},
		logger:   defLogger{},
	}
}

func (g *NavigationGuard) WithNotifier(n Notifier) *NavigationGuard {
	g.notifier = n
	return g
}

func (g *NavigationGuard) WithLogger(logger Logger) *NavigationGuard {
	g.logger = logger
	return g
}

// Session returns the resolver's current view.
func (g *NavigationGuard) Session(ctx context.Context) Session {
	return g.resolver.Current(ctx)
}

// EvaluatePath looks up the destination's declared requirement and
// evaluates it against the current session.
func (g *NavigationGuard) EvaluatePath(ctx context.Context, path string) Decision {
	return g.Evaluate(path, g.table.Requirement(path), g.resolver.Current(ctx))
}

// Evaluate applies the guard rules in order; the first matching rule wins.
// Guest-only is checked before auth-only so a route misdeclaring both can
// never fire twice, and before roles so a logged-in user bouncing off a
// guest page is sent to the landing surface regardless of role metadata.
func (g *NavigationGuard) Evaluate(path string, req RouteRequirement, session Session) Decision {
	if req.RequiresGuest && session.Authenticated {
		g.logger.Debug("guard redirecting authenticated user off guest route", "path", path)
		return Decision{
			Action: DecisionRedirect,
			Target: g.cfg.GetLandingPath(),
			Reason: ReasonGuestOnly,
		}
	}

	if req.RequiresAuth && !session.Authenticated {
		notice := Notice{Type: NoticeNegative, Message: MsgSignInRequired}
		g.notifier.Notify(notice)
		g.logger.Info("guard requiring sign-in", "path", path)
		return Decision{
			Action: DecisionRedirect,
			Target: LoginRedirect(g.cfg, path),
			Reason: ReasonUnauthenticated,
			Notice: &notice,
		}
	}

	if len(req.Roles) > 0 && session.Authenticated {
		if req.Roles.Intersects(session.Roles) {
			return Decision{Action: DecisionAllow}
		}
		notice := Notice{Type: NoticeNegative, Message: MsgPermissionDenied}
		g.notifier.Notify(notice)
		g.logger.Info(
			"guard denying transition, insufficient roles",
			"path", path,
			"required", req.Roles.String(),
			"session", session.Roles.String(),
		)
		return Decision{
			Action: DecisionDeny,
			Target: g.cfg.GetForbiddenPath(),
			Reason: ReasonUnauthorized,
			Notice: &notice,
		}
	}

	return Decision{Action: DecisionAllow}
}
