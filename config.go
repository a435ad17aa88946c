package appclient

// API route fragments shared by the gateway, the API client, and the demo
// server. Resources hang off the versioned base path.
const (
	V1Route          = "/v1"
	AuthRoute        = "/auth"
	LoginRoute       = "/login"
	RegisterRoute    = "/register-manager"
	UsersRoute       = "/users"
	EmployeeRoute    = "/employees"
	ConsumptionRoute = "/consumptions"
	AttendanceRoute  = "/attendances"
	ScheduleRoute    = "/schedules"
	ReportRoute      = "/reports"
	KPIRoute         = "/kpis"
)

// Default values for SimpleConfig.
const (
	DefaultTokenKey      = "authToken"
	DefaultAuthScheme    = "Bearer"
	DefaultLoginPath     = "/auth/login"
	DefaultLandingPath   = "/main"
	DefaultForbiddenPath = "/forbidden"
	DefaultRedirectParam = "redirect"
)

var _ Config = &SimpleConfig{}

// SimpleConfig is a plain Config implementation with sensible defaults.
// Zero-value fields resolve to the Default* constants so callers only set
// what they need.
type SimpleConfig struct {
	BaseURL       string
	TokenKey      string
	AuthScheme    string
	LoginPath     string
	LandingPath   string
	ForbiddenPath string
	RedirectParam string
	// ExpiryCheck enables advisory local expiry inspection in the
	// resolver. Off by default: validity is the server's call.
	ExpiryCheck bool
}

func (c *SimpleConfig) GetBaseURL() string {
	return c.BaseURL
}

func (c *SimpleConfig) GetTokenKey() string {
	return valueOrDefault(c.TokenKey, DefaultTokenKey)
}

func (c *SimpleConfig) GetAuthScheme() string {
	return valueOrDefault(c.AuthScheme, DefaultAuthScheme)
}

func (c *SimpleConfig) GetLoginPath() string {
	return valueOrDefault(c.LoginPath, DefaultLoginPath)
}

func (c *SimpleConfig) GetLandingPath() string {
	return valueOrDefault(c.LandingPath, DefaultLandingPath)
}

func (c *SimpleConfig) GetForbiddenPath() string {
	return valueOrDefault(c.ForbiddenPath, DefaultForbiddenPath)
}

func (c *SimpleConfig) GetRedirectParam() string {
	return valueOrDefault(c.RedirectParam, DefaultRedirectParam)
}

func (c *SimpleConfig) GetExpiryCheck() bool {
	return c.ExpiryCheck
}

func valueOrDefault(val, def string) string {
	if val == "" {
		return def
	}
	return val
}
