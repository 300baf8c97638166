// Package api is the HTTP client for the upstream REST service that
// owns all console data. Responses arrive in a common envelope,
// {success, data, message, errors}; the client unwraps it and maps
// failures onto *Error so callers never inspect raw payloads.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// GenericErrorMessage is shown when the upstream gives us nothing better.
const GenericErrorMessage = "An error occurred"

// FieldError is a structured per-field validation failure.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Error is a failed upstream call. Message is safe to surface verbatim;
// Fields is populated when the upstream returned per-field errors.
type Error struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string {
	return e.Message
}

// Unauthorized reports whether the upstream rejected the bearer token.
func (e *Error) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// AsError unwraps err into *Error when the failure came from the
// upstream rather than from transport.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Errors  []FieldError    `json:"errors"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// do performs a request and decodes the envelope's data field into out.
// token may be empty for the unauthenticated auth endpoints; out may be
// nil when the caller only cares about success.
func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		// A malformed body is treated like any other upstream failure.
		return &Error{Status: resp.StatusCode, Message: GenericErrorMessage}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		return newError(resp.StatusCode, &env)
	}

	if out == nil {
		return nil
	}
	if len(env.Data) == 0 {
		return &Error{Status: resp.StatusCode, Message: GenericErrorMessage}
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &Error{Status: resp.StatusCode, Message: GenericErrorMessage}
	}
	return nil
}

func newError(status int, env *envelope) *Error {
	apiErr := &Error{
		Status:  status,
		Message: env.Message,
	}
	if apiErr.Message == "" {
		apiErr.Message = GenericErrorMessage
	}
	if len(env.Errors) > 0 {
		apiErr.Fields = make(map[string]string, len(env.Errors))
		for _, fe := range env.Errors {
			apiErr.Fields[fe.Path] = fe.Message
		}
	}
	return apiErr
}

func withQuery(path string, values url.Values) string {
	if len(values) == 0 {
		return path
	}
	return path + "?" + values.Encode()
}
