package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-adminforms/pkg/schema"
)

const defaultTimeout = 30 * time.Second

// Client talks JSON over HTTP to the collection backend. It is safe for
// concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger

	mu    sync.RWMutex
	token string
}

// Option customises the client configuration.
type Option func(*Client)

// WithHTTPClient injects a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.http = httpClient
		}
	}
}

// WithLogger attaches a structured logger. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithToken seeds the auth token, e.g. from a saved session.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// New constructs a Client for the backend at baseURL.
func New(baseURL string, options ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errors.New("backend: base URL is required")
	}
	if _, err := url.ParseRequestURI(trimmed); err != nil {
		return nil, fmt.Errorf("backend: invalid base URL %q: %w", baseURL, err)
	}

	client := &Client{
		baseURL: trimmed,
		http:    &http.Client{Timeout: defaultTimeout},
		log:     zap.NewNop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(client)
		}
	}
	return client, nil
}

// Token returns the current auth token, empty when unauthenticated.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken replaces the auth token used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Collection fetches the full collection definition, fields in server order.
func (c *Client) Collection(ctx context.Context, name string) (schema.Collection, error) {
	var col schema.Collection
	path := "/api/collections/" + url.PathEscape(name)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &col); err != nil {
		return schema.Collection{}, err
	}
	if err := col.Check(); err != nil {
		return schema.Collection{}, err
	}
	return col, nil
}

// Schema returns the ordered field descriptors for a collection. It satisfies
// the pipeline's schema source contract.
func (c *Client) Schema(ctx context.Context, collection string) ([]schema.Field, error) {
	col, err := c.Collection(ctx, collection)
	if err != nil {
		return nil, err
	}
	return col.Fields, nil
}

// List fetches one page of records. Page and perPage pass through to the
// backend untouched; zero values let the server apply its defaults.
func (c *Client) List(ctx context.Context, collection string, page, perPage int) (ListResult, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		query.Set("perPage", strconv.Itoa(perPage))
	}

	var result ListResult
	path := "/api/collections/" + url.PathEscape(collection) + "/records"
	if err := c.do(ctx, http.MethodGet, path, query, nil, &result); err != nil {
		return ListResult{}, err
	}
	return result, nil
}

// Create persists a prepared record and returns the stored version.
func (c *Client) Create(ctx context.Context, collection string, record map[string]any) (Record, error) {
	var created Record
	path := "/api/collections/" + url.PathEscape(collection) + "/records"
	if err := c.do(ctx, http.MethodPost, path, nil, record, &created); err != nil {
		return nil, err
	}
	return created, nil
}

// Update patches an existing record and returns the stored version.
func (c *Client) Update(ctx context.Context, collection, id string, record map[string]any) (Record, error) {
	var updated Record
	path := "/api/collections/" + url.PathEscape(collection) + "/records/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodPatch, path, nil, record, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a record.
func (c *Client) Delete(ctx context.Context, collection, id string) error {
	path := "/api/collections/" + url.PathEscape(collection) + "/records/" + url.PathEscape(id)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// AuthWithPassword exchanges credentials for a token against an auth
// collection. The token is captured for subsequent requests; the protocol
// itself belongs to the server.
func (c *Client) AuthWithPassword(ctx context.Context, collection, identity, password string) (AuthResult, error) {
	payload := map[string]any{
		"identity": identity,
		"password": password,
	}

	var result AuthResult
	path := "/api/collections/" + url.PathEscape(collection) + "/auth-with-password"
	if err := c.do(ctx, http.MethodPost, path, nil, payload, &result); err != nil {
		return AuthResult{}, err
	}
	c.SetToken(result.Token)
	return result, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if ctx == nil {
		return errors.New("backend: context is required")
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("backend: encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("backend: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", token)
	}

	c.log.Debug("backend request", zap.String("method", method), zap.String("path", path))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("backend: decode response for %s %s: %w", method, path, err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err == nil && len(payload) > 0 {
		var envelope struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(payload, &envelope) == nil {
			apiErr.Message = envelope.Message
		}
	}
	return apiErr
}
