package appclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/goliatone/go-errors"
)

// LoginResponse is the fixed login contract: the server answers with an
// accessToken field. Historical variants that answered token are gone.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

// Client is the thin resource API client the session core collaborates
// with. The core does not know resource shapes beyond status codes; the
// typed surface here covers only the auth endpoints the session needs.
type Client struct {
	baseURL string
	http    *http.Client
	logger  Logger
}

// NewClient builds a client whose calls flow through the gateway, so
// every request carries the bearer credential and every 401 collapses the
// session.
func NewClient(cfg Config, gateway *RequestGateway) *Client {
	return &Client{
		baseURL: cfg.GetBaseURL(),
		http:    gateway.Client(),
		logger:  defLogger{},
	}
}

func (c *Client) WithLogger(logger Logger) *Client {
	c.logger = logger
	return c
}

// Login exchanges credentials for a token. It does not store the token;
// that is SessionStore's job.
func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResponse, error) {
	out := new(LoginResponse)
	err := c.postJSON(ctx, V1Route+AuthRoute+LoginRoute, creds, out)
	if err != nil {
		if IsSignInRequiredError(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return out, nil
}

// RegisterManager creates the initial manager account. The payload shape
// is owned by the server; the client passes it through.
func (c *Client) RegisterManager(ctx context.Context, payload any) error {
	return c.postJSON(ctx, V1Route+AuthRoute+RegisterRoute, payload, nil)
}

// GetJSON issues an authenticated GET and decodes the response into out.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to build request")
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to encode payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.do(req, out)
}

// do executes the request and maps auth rejections onto the shared error
// taxonomy, so business callers never need bespoke 401 handling.
func (c *Client) do(req *http.Request, out any) error {
	res, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "request failed")
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusUnauthorized:
		// The gateway already invalidated the session.
		return ErrSignInRequired
	case res.StatusCode == http.StatusForbidden:
		return ErrPermissionDenied
	case res.StatusCode >= 400:
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		c.logger.Error("api call failed", "status", res.StatusCode, "path", req.URL.Path)
		return errors.New("api call failed: "+string(msg), errors.CategoryInternal).
			WithMetadata(map[string]any{"status": res.StatusCode, "path": req.URL.Path})
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to decode response")
	}
	return nil
}
