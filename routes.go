package appclient

import (
	"sort"
	"strings"
)

// RouteRequirement is the declarative access policy attached to a
// navigable destination. RequiresAuth and RequiresGuest are mutually
// exclusive; an empty Roles set means no role restriction.
type RouteRequirement struct {
	RequiresAuth  bool
	RequiresGuest bool
	Roles         RoleSet
}

// RouteTable maps destination paths to requirements. Lookup falls through
// to the longest declared prefix, so children of /main inherit its policy
// unless they declare their own.
type RouteTable struct {
	routes map[string]RouteRequirement
	// prefix paths sorted longest first for fallthrough matching
	prefixes []string
}

// NewRouteTable validates the declarations and builds the table.
// Misconfigured guards are rejected here, at construction, so redirect
// loops cannot exist at navigation time:
//   - a route may not require both auth and guest
//   - a guest-only route may not carry role restrictions
//   - the login surface may not require auth or roles
//   - the landing surface may not require guest nor carry roles
//   - the forbidden surface must be entirely unguarded
func NewRouteTable(cfg Config, routes map[string]RouteRequirement) (*RouteTable, error) {
	for path, req := range routes {
		if req.RequiresAuth && req.RequiresGuest {
			return nil, routeConfigError(path, "requiresAuth and requiresGuest are mutually exclusive")
		}
		if req.RequiresGuest && len(req.Roles) > 0 {
			return nil, routeConfigError(path, "a guest-only route cannot restrict roles")
		}
	}

	if req, ok := routes[cfg.GetLoginPath()]; ok {
		if req.RequiresAuth || len(req.Roles) > 0 {
			return nil, routeConfigError(cfg.GetLoginPath(), "login surface must be reachable unauthenticated")
		}
	}

	if req, ok := routes[cfg.GetLandingPath()]; ok {
		if req.RequiresGuest || len(req.Roles) > 0 {
			return nil, routeConfigError(cfg.GetLandingPath(), "landing surface must admit any authenticated user")
		}
	}

	if req, ok := routes[cfg.GetForbiddenPath()]; ok {
		if req.RequiresAuth || req.RequiresGuest || len(req.Roles) > 0 {
			return nil, routeConfigError(cfg.GetForbiddenPath(), "forbidden surface must be unguarded")
		}
	}

	prefixes := make([]string, 0, len(routes))
	for path := range routes {
		prefixes = append(prefixes, path)
	}
	sort.Slice(prefixes, func(i, j int) bool {
		return len(prefixes[i]) > len(prefixes[j])
	})

	return &RouteTable{routes: routes, prefixes: prefixes}, nil
}

// Requirement returns the policy for a destination, ignoring any query
// string. Unknown destinations carry no requirement.
func (t *RouteTable) Requirement(path string) RouteRequirement {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	path = normalizePath(path)

	if req, ok := t.routes[path]; ok {
		return req
	}

	for _, prefix := range t.prefixes {
		if prefix == "/" {
			continue
		}
		if strings.HasPrefix(path, prefix+"/") {
			return t.routes[prefix]
		}
	}

	return RouteRequirement{}
}

func normalizePath(path string) string {
	if path == "" {
		return "/"
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}

func routeConfigError(path, reason string) error {
	clone := ErrRouteConfig.Clone()
	if clone == nil {
		return ErrRouteConfig
	}
	clone.Message = "invalid route requirement for " + path + ": " + reason
	clone.Source = ErrRouteConfig
	return clone.WithMetadata(map[string]any{"path": path})
}

// DefaultRoutes declares the application surfaces: presentation and auth
// pages are guest territory, everything under /main needs a session, and
// the employee admin screens are reserved for management.
func DefaultRoutes(cfg Config) map[string]RouteRequirement {
	routes := map[string]RouteRequirement{
		"/":              {},
		"/auth/register": {RequiresGuest: true},
		"/main/employees": {
			RequiresAuth: true,
			Roles:        NewRoleSet(RoleAdmin, RoleManager),
		},
	}
	routes[cfg.GetLoginPath()] = RouteRequirement{RequiresGuest: true}
	routes[cfg.GetLandingPath()] = RouteRequirement{RequiresAuth: true}
	routes[cfg.GetForbiddenPath()] = RouteRequirement{}
	return routes
}
