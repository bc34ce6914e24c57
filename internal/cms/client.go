package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/luxeshop/storefront-api/internal/config"
	apperrors "github.com/luxeshop/storefront-api/pkg/errors"
)

// Client talks to the external data/auth service over its REST API.
// Persistence, auth and the query language all live on the other side of
// this boundary; the client only shuttles documents.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new data-service client
func NewClient(cfg config.CMSConfig, logger *zap.Logger) *Client {
	// Normalize base URL - remove trailing slashes
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")

	return &Client{
		baseURL:  baseURL,
		apiToken: cfg.APIToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// statusError carries a non-2xx response so callers can map well-known
// statuses to domain error kinds before falling back to ErrUpstream.
type statusError struct {
	Code int
	Body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("data service returned status %d: %s", e.Code, e.Body)
}

// isStatus reports whether err is a data-service response with the given
// HTTP status code.
func isStatus(err error, code int) bool {
	se, ok := err.(*statusError)
	return ok && se.Code == code
}

// do executes one JSON round trip against the data service. An empty
// userToken falls back to the server-held API token.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}, userToken string) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.setAuth(req, userToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &apperrors.ErrUpstream{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &apperrors.ErrUpstream{Op: method + " " + path, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &statusError{Code: resp.StatusCode, Body: string(respBody)}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return &apperrors.ErrUpstream{Op: method + " " + path, Err: err}
		}
	}

	return nil
}

func (c *Client) setAuth(req *http.Request, userToken string) {
	if userToken != "" {
		req.Header.Set("Authorization", "Bearer "+userToken)
		return
	}
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}
}

// upstream converts any remaining error into ErrUpstream unless it is
// already one of the typed kinds.
func upstream(op string, err error) error {
	switch err.(type) {
	case *apperrors.ErrUpstream, *apperrors.ErrNotFound, *apperrors.ErrUnauthenticated:
		return err
	}
	return &apperrors.ErrUpstream{Op: op, Err: err}
}
