// Package backend is the HTTP client for the EventZone REST API.  Every
// screen of the gateway talks to the backend exclusively through this
// package.  Calls are never retried: a failure is reported to the user and
// the action must be re-triggered.
package backend

import (
    "bytes"
    "context"
    "encoding/json"
    "fmt"
    "io"
    "net/http"
    "strings"
    "time"
)

// maxErrBody caps how much of an error response body is read back for
// display.
const maxErrBody = 4 << 10

// Client talks to one EventZone backend instance.
type Client struct {
    baseURL string
    http    *http.Client
}

// New builds a Client for the given base URL.  The timeout bounds every
// individual request; there is no request-level cancellation beyond it and
// the caller's context.
func New(baseURL string, timeout time.Duration) *Client {
    return &Client{
        baseURL: strings.TrimRight(baseURL, "/"),
        http:    &http.Client{Timeout: timeout},
    }
}

// do issues one request.  A non-empty token travels as a bearer token, the
// way the backend's JWT filter expects it.  Transport problems come back
// wrapped in ErrConexion; non-2xx statuses come back as *StatusError with
// the body text preserved.  On success the caller owns the response body.
func (c *Client) do(ctx context.Context, method, path, token string, body io.Reader, contentType string) (*http.Response, error) {
    req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
    if err != nil {
        return nil, err
    }
    if contentType != "" {
        req.Header.Set("Content-Type", contentType)
    }
    if token != "" {
        req.Header.Set("Authorization", "Bearer "+token)
    }
    resp, err := c.http.Do(req)
    if err != nil {
        return nil, fmt.Errorf("%w: %v", ErrConexion, err)
    }
    if resp.StatusCode >= 300 {
        msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))
        _ = resp.Body.Close()
        return nil, &StatusError{Status: resp.StatusCode, Mensaje: strings.TrimSpace(string(msg))}
    }
    return resp, nil
}

// getJSON performs a GET and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, path, token string, out any) error {
    resp, err := c.do(ctx, http.MethodGet, path, token, nil, "")
    if err != nil {
        return err
    }
    defer func() { _ = resp.Body.Close() }()
    return json.NewDecoder(resp.Body).Decode(out)
}

// sendJSON marshals in as the request body and, when out is non-nil,
// decodes the response into it.
func (c *Client) sendJSON(ctx context.Context, method, path, token string, in, out any) error {
    b, err := json.Marshal(in)
    if err != nil {
        return err
    }
    resp, err := c.do(ctx, method, path, token, bytes.NewReader(b), "application/json")
    if err != nil {
        return err
    }
    defer func() { _ = resp.Body.Close() }()
    if out == nil {
        return nil
    }
    return json.NewDecoder(resp.Body).Decode(out)
}
