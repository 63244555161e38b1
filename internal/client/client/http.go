package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/vineauth/internal/client/models"
	"github.com/dmitrijs2005/vineauth/internal/common"
)

// APIClient implements Client over the vineauth REST API.
type APIClient struct {
	root    string
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

func NewAPIClient(serverAddr, routePrefix string, timeout time.Duration) *APIClient {
	root := strings.TrimRight(serverAddr, "/")
	return &APIClient{
		root:    root,
		baseURL: root + "/" + strings.Trim(routePrefix, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type errorBody struct {
	Success *bool        `json:"success"`
	Error   string       `json:"error"`
	Errors  []FieldError `json:"errors"`
}

type tokenBody struct {
	Success   bool         `json:"success"`
	AuthToken string       `json:"authToken"`
	User      *models.User `json:"user"`
}

func (c *APIClient) Register(ctx context.Context, r models.Registration) error {
	var out tokenBody
	if err := c.post(ctx, "/createuser", r, false, &out); err != nil {
		return err
	}
	c.setToken(out.AuthToken)
	return nil
}

func (c *APIClient) Login(ctx context.Context, email, password string) (*models.User, error) {
	in := map[string]string{"email": email, "password": password}

	var out tokenBody
	if err := c.post(ctx, "/login", in, false, &out); err != nil {
		return nil, err
	}
	c.setToken(out.AuthToken)
	return out.User, nil
}

func (c *APIClient) GetUser(ctx context.Context) (*models.Profile, error) {
	if c.Token() == "" {
		return nil, ErrNotLoggedIn
	}

	var out struct {
		User *models.Profile `json:"user"`
	}
	if err := c.post(ctx, "/getuser", struct{}{}, true, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

func (c *APIClient) ForgotPassword(ctx context.Context, email string) error {
	var out struct {
		Success bool `json:"success"`
	}
	return c.post(ctx, "/forgotpassword", map[string]string{"email": email}, false, &out)
}

// Ping checks the server's health endpoint, which lives outside the route
// prefix.
func (c *APIClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.root+"/healthz", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	return nil
}

func (c *APIClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *APIClient) Logout() { c.setToken("") }

func (c *APIClient) setToken(t string) {
	c.mu.Lock()
	c.token = t
	c.mu.Unlock()
}

// post sends in as JSON and decodes a successful answer into out. Answers
// with a non-2xx status or "success":false become *APIError.
func (c *APIClient) post(ctx context.Context, path string, in any, authed bool, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set(common.AuthTokenHeaderName, c.Token())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	var eb errorBody
	isJSON := json.Unmarshal(raw, &eb) == nil

	if resp.StatusCode >= 300 || (isJSON && eb.Success != nil && !*eb.Success) {
		apiErr := &APIError{Status: resp.StatusCode}
		switch {
		case isJSON:
			apiErr.Message = eb.Error
			apiErr.Fields = eb.Errors
		default:
			apiErr.Message = strings.TrimSpace(string(raw))
		}
		if apiErr.Message == "" && len(apiErr.Fields) == 0 {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

var _ Client = (*APIClient)(nil)
