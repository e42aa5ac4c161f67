package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/karim/quizrush/internal/logger"
)

// User is the identity provider's view of an account. Only the fields
// the game needs are decoded.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *logger.Logger
}

func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        logger.Default().WithPrefix("identity"),
	}
}

// RedirectURL fetches the Google OAuth consent URL the client should be
// sent to.
func (c *Client) RedirectURL(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx).WithPrefix("identity")
	log.Debug("fetching oauth redirect url")

	var out struct {
		RedirectURL string `json:"redirectUrl"`
	}
	if err := c.do(ctx, http.MethodGet, "/oauth/google/redirect_url", nil, &out); err != nil {
		return "", err
	}
	return out.RedirectURL, nil
}

// ExchangeCode trades an OAuth authorization code for a session token.
func (c *Client) ExchangeCode(ctx context.Context, code string) (string, error) {
	log := logger.FromContext(ctx).WithPrefix("identity")
	log.Debug("exchanging oauth code")

	payload := map[string]string{"code": code}
	var out struct {
		SessionToken string `json:"sessionToken"`
	}
	if err := c.do(ctx, http.MethodPost, "/sessions", payload, &out); err != nil {
		return "", err
	}
	log.Info("oauth code exchanged")
	return out.SessionToken, nil
}

// ResolveSession returns the user a session token belongs to, or nil if
// the provider no longer recognizes the token.
func (c *Client) ResolveSession(ctx context.Context, token string) (*User, error) {
	log := logger.FromContext(ctx).WithPrefix("identity")
	log.Debug("resolving session token")

	var user User
	err := c.do(ctx, http.MethodGet, "/sessions/"+url.PathEscape(token), nil, &user)
	if err != nil {
		var se *statusError
		if asStatusError(err, &se) && (se.code == http.StatusUnauthorized || se.code == http.StatusNotFound) {
			log.Debug("session token not recognized")
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// DeleteSession revokes a session token with the provider.
func (c *Client) DeleteSession(ctx context.Context, token string) error {
	log := logger.FromContext(ctx).WithPrefix("identity")
	log.Debug("deleting session")

	return c.do(ctx, http.MethodDelete, "/sessions/"+url.PathEscape(token), nil, nil)
}

type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("identity status %d: %s", e.code, e.body)
}

func asStatusError(err error, target **statusError) bool {
	se, ok := err.(*statusError)
	if ok {
		*target = se
	}
	return ok
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	log := logger.FromContext(ctx).WithPrefix("identity")

	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		log.Error("failed to create request: %v", err)
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("request failed: %s %s: %v", method, path, err)
		return err
	}
	defer resp.Body.Close()

	log.Debug("response received in %v, status=%d", time.Since(start), resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Error("request failed: %s %s: status=%d, body=%s", method, path, resp.StatusCode, string(b))
		return &statusError{code: resp.StatusCode, body: string(b)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Error("failed to decode response: %v", err)
		return err
	}
	return nil
}
