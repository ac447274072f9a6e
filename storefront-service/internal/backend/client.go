// Package backend is the HTTP client of the bookstore REST API. It is the
// only place that knows the base URL and attaches bearer tokens.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/azaliaz/bookly-storefront/storefront-service/internal/logger"
)

// Observer receives the latency of each backend call.
type Observer interface {
	ObserveBackend(endpoint, outcome string, elapsed time.Duration)
}

type Client struct {
	http     *resty.Client
	observer Observer
}

type Option func(*Client)

// WithTransport replaces the round tripper of the underlying client.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) { c.http.SetTransport(rt) }
}

func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Upload is a file forwarded to the backend in a multipart body.
type Upload struct {
	Field       string
	Filename    string
	ContentType string
	Data        []byte
}

// errorBody is what the backend sends along with a non-2xx status.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) request(ctx context.Context, token string) (*resty.Request, *errorBody) {
	payload := &errorBody{}
	req := c.http.R().SetContext(ctx).SetError(payload)
	if token != "" {
		req.SetAuthToken(token)
	}
	return req, payload
}

func (c *Client) do(req *resty.Request, payload *errorBody, method, path, endpoint string) ([]byte, error) {
	log := logger.Get()
	start := time.Now()

	body, err := execute(req, payload, method, path)
	if c.observer != nil {
		c.observer.ObserveBackend(endpoint, outcome(err), time.Since(start))
	}
	if err != nil {
		log.Debug().Err(err).Str("method", method).Str("path", path).Msg("backend call failed")
		return nil, err
	}
	return body, nil
}

func execute(req *resty.Request, payload *errorBody, method, path string) ([]byte, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, classify(err)
	}
	if !resp.IsSuccess() {
		return nil, apiError(resp, payload)
	}
	return resp.Body(), nil
}

func (c *Client) getJSON(ctx context.Context, token, path, endpoint string) ([]byte, error) {
	req, payload := c.request(ctx, token)
	return c.do(req, payload, http.MethodGet, path, endpoint)
}

func (c *Client) sendJSON(ctx context.Context, method, token, path, endpoint string, body any) ([]byte, error) {
	req, payload := c.request(ctx, token)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	return c.do(req, payload, method, path, endpoint)
}

func (c *Client) sendMultipart(ctx context.Context, token, path, endpoint string, fields map[string]string, files []Upload) ([]byte, error) {
	req, payload := c.request(ctx, token)
	req.SetMultipartFormData(fields)
	for _, f := range files {
		ctype := f.ContentType
		if ctype == "" {
			ctype = "application/octet-stream"
		}
		req.SetMultipartField(f.Field, f.Filename, ctype, bytes.NewReader(f.Data))
	}
	return c.do(req, payload, http.MethodPost, path, endpoint)
}

func escape(id string) string {
	return url.PathEscape(id)
}

func unmarshal(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return io.ErrUnexpectedEOF
	}
	return json.Unmarshal(data, v)
}

// messageOf extracts the "message" field of a success body.
func messageOf(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}
