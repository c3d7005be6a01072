// Package api is the HTTP facade over the remote expense service. It
// attaches the bearer token to protected calls and folds the server's
// message-field error convention into typed errors, so callers get a
// plain (payload, error) pair and never inspect response shapes.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"paisa.dev/kharcha/pkg/expense"
)

const authTokenHeader = "x-auth-token"

// TokenSource supplies the current bearer token, if any. The session
// manager satisfies this.
type TokenSource interface {
	Token() (string, bool)
}

// Client talks to the expense API. It does not retry, cache, or block
// unauthenticated calls; the server rejects those itself.
type Client struct {
	base   string
	client *http.Client
	tokens TokenSource
	log    *slog.Logger
}

// New creates a Client for the API at baseURL.
func New(baseURL string, tokens TokenSource) *Client {
	return &Client{
		base:   strings.TrimRight(baseURL, "/"),
		client: &http.Client{},
		tokens: tokens,
		log:    slog.Default(),
	}
}

// SetHTTPClient swaps the underlying http.Client, e.g. for timeouts.
func (c *Client) SetHTTPClient(hc *http.Client) {
	if hc != nil {
		c.client = hc
	}
}

type loginRequest struct {
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

// LoginResponse is the successful login payload.
type LoginResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
	Token  string `json:"token"`
}

// Login exchanges credentials for an identity and token. Unprotected.
func (c *Client) Login(ctx context.Context, mobile, password string) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", loginRequest{Mobile: mobile, Password: password}, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type registerRequest struct {
	Name     string `json:"name"`
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

// Register creates an account. Unprotected; the success payload is
// server-defined and discarded.
func (c *Client) Register(ctx context.Context, name, mobile, password string) error {
	return c.do(ctx, http.MethodPost, "/api/auth/register", registerRequest{Name: name, Mobile: mobile, Password: password}, false, nil)
}

// AddExpense records a new expense. Protected.
func (c *Client) AddExpense(ctx context.Context, d expense.Draft) error {
	return c.do(ctx, http.MethodPost, "/api/expenses", d, true, nil)
}

// Expenses fetches the ordered expense sequence for a period. Protected.
func (c *Client) Expenses(ctx context.Context, p expense.Period) ([]expense.Expense, error) {
	var out []expense.Expense
	if err := c.do(ctx, http.MethodGet, "/api/expenses/"+string(p), nil, true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Report fetches the server-computed aggregation for a period. Protected.
func (c *Client) Report(ctx context.Context, p expense.Period) (*expense.Report, error) {
	var out expense.Report
	if err := c.do(ctx, http.MethodGet, "/api/expenses/report/"+string(p), nil, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, protected bool, out any) error {
	var rdr io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: encode request: %w", err)
		}
		rdr = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rdr)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if protected {
		// Absent token is not blocked here; gating unauthenticated
		// access is the route guard's job, and the server rejects
		// tokenless calls anyway.
		if tok, ok := c.tokens.Token(); ok {
			req.Header.Set(authTokenHeader, tok)
		}
	}

	c.log.Debug("api request", "method", method, "path", path, "protected", protected)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api: %s %s: read response: %w", method, path, err)
	}

	// A message field means failure no matter the status code.
	if apiErr := applicationError(data, resp.StatusCode); apiErr != nil {
		return apiErr
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("api: %s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("api: %s %s: decode response: %w", method, path, err)
	}
	return nil
}

func applicationError(data []byte, status int) *Error {
	var probe struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &probe); err == nil && probe.Message != "" {
		return &Error{StatusCode: status, Message: probe.Message}
	}
	return nil
}
