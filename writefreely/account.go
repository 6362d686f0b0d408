package writefreely

import (
	"context"
	"net/http"

	"github.com/olgasafonova/writefreely-mcp-server/metrics"
)

// Login authenticates with alias and password, stores the returned access
// token, and returns the full login payload.
func (c *Client) Login(ctx context.Context, user, password string) (*AuthResult, error) {
	const path = "/api/auth/login"
	data, err := c.call(ctx, OpLogin, http.MethodPost, path, map[string]string{
		"alias": user,
		"pass":  password,
	})
	if err != nil {
		if IsHTTPStatus(err, http.StatusUnauthorized) || IsHTTPStatus(err, http.StatusForbidden) {
			metrics.RecordAuthFailure(metrics.AuthReasonLoginFailed)
		}
		return nil, err
	}

	var result AuthResult
	if err := decodeData(path, data, &result); err != nil {
		return nil, err
	}
	if result.AccessToken == "" {
		return nil, &MalformedResponseError{Path: path, Reason: "missing access_token"}
	}

	c.setToken(result.AccessToken)
	c.Logger.Info("Logged in to WriteFreely", "host", c.host, "user", user)
	return &result, nil
}

// Logout invalidates the access token on the instance. The local token is
// dropped only when the request succeeds; on failure it is kept.
func (c *Client) Logout(ctx context.Context) error {
	if _, err := c.call(ctx, OpLogout, http.MethodDelete, "/api/auth/me", nil); err != nil {
		return err
	}
	c.setToken("")
	c.Logger.Info("Logged out of WriteFreely", "host", c.host)
	return nil
}

// Me returns the authenticated user's basic data.
func (c *Client) Me(ctx context.Context) (*User, error) {
	const path = "/api/me"
	data, err := c.call(ctx, OpMe, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var user User
	if err := decodeData(path, data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
