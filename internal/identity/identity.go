// Package identity is a thin client for the hosted identity provider. The
// rest of the application consumes only "who is the current user": an
// identifier, display name, email, and role.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sahayakai/sahayak/internal/observe"
)

const defaultBaseURL = "https://identitytoolkit.googleapis.com/v1"

// Profile identifies the signed-in user.
type Profile struct {
	UID         string `json:"uid"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}

// Session is the result of a successful sign-in or sign-up.
type Session struct {
	Profile      Profile `json:"profile"`
	IDToken      string  `json:"idToken"`
	RefreshToken string  `json:"refreshToken"`
}

// AuthError carries the provider's error code, e.g. INVALID_PASSWORD or
// EMAIL_EXISTS.
type AuthError struct {
	Code string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.Code)
}

// Client talks to the identity provider's REST endpoints.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	obs     *observe.Observer
}

func NewClient(apiKey string, obs *observe.Observer) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
		obs:     obs,
	}
}

// NewClientWithBaseURL is used by tests to point at a local server.
func NewClientWithBaseURL(apiKey, baseURL string, obs *observe.Observer) *Client {
	c := NewClient(apiKey, obs)
	c.baseURL = baseURL
	return c
}

// SignIn exchanges email and password for a session.
func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	var resp struct {
		LocalID      string `json:"localId"`
		DisplayName  string `json:"displayName"`
		Email        string `json:"email"`
		IDToken      string `json:"idToken"`
		RefreshToken string `json:"refreshToken"`
	}
	err := c.post(ctx, "accounts:signInWithPassword", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &Session{
		Profile: Profile{
			UID:         resp.LocalID,
			DisplayName: resp.DisplayName,
			Email:       resp.Email,
			Role:        "teacher",
		},
		IDToken:      resp.IDToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

// SignUp registers a new account and returns its session.
func (c *Client) SignUp(ctx context.Context, email, password, displayName string) (*Session, error) {
	var resp struct {
		LocalID      string `json:"localId"`
		Email        string `json:"email"`
		IDToken      string `json:"idToken"`
		RefreshToken string `json:"refreshToken"`
	}
	err := c.post(ctx, "accounts:signUp", map[string]any{
		"email":             email,
		"password":          password,
		"displayName":       displayName,
		"returnSecureToken": true,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &Session{
		Profile: Profile{
			UID:         resp.LocalID,
			DisplayName: displayName,
			Email:       resp.Email,
			Role:        "teacher",
		},
		IDToken:      resp.IDToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

// SendPasswordReset asks the provider to email a reset link.
func (c *Client) SendPasswordReset(ctx context.Context, email string) error {
	return c.post(ctx, "accounts:sendOobCode", map[string]any{
		"requestType": "PASSWORD_RESET",
		"email":       email,
	}, nil)
}

// Lookup fetches the profile behind an ID token.
func (c *Client) Lookup(ctx context.Context, idToken string) (*Profile, error) {
	var resp struct {
		Users []struct {
			LocalID     string `json:"localId"`
			DisplayName string `json:"displayName"`
			Email       string `json:"email"`
		} `json:"users"`
	}
	err := c.post(ctx, "accounts:lookup", map[string]any{
		"idToken": idToken,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if len(resp.Users) == 0 {
		return nil, &AuthError{Code: "USER_NOT_FOUND"}
	}

	u := resp.Users[0]
	return &Profile{
		UID:         u.LocalID,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		Role:        "teacher",
	}, nil
}

func (c *Client) post(ctx context.Context, endpoint string, body map[string]any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s?key=%s", c.baseURL, endpoint, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			c.obs.Log().Warn().Str("endpoint", endpoint).Str("code", apiErr.Error.Message).Msg("identity request rejected")
			return &AuthError{Code: apiErr.Error.Message}
		}
		return fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}
