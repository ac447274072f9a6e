package backend

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"syscall"

	"github.com/go-resty/resty/v2"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	// ErrUnreachable means no connection could be opened to the backend.
	ErrUnreachable = errors.New("backend unreachable")
	// ErrNoResponse means a request was sent but no answer came back.
	ErrNoResponse = errors.New("no response from backend")
)

// APIError is a non-2xx answer of the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("Server error: %d", e.Status)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return nil
	}
}

// Message returns the text a page should show for err: the backend's own
// message when there is one, fallback otherwise.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// classify turns a transport failure into ErrUnreachable or ErrNoResponse.
// Cancellation by the caller is passed through untouched.
func classify(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	var opErr *net.OpError
	if errors.Is(err, syscall.ECONNREFUSED) || (errors.As(err, &opErr) && opErr.Op == "dial") {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	return fmt.Errorf("%w: %v", ErrNoResponse, err)
}

func isTransport(err error) bool {
	return errors.Is(err, ErrUnreachable) || errors.Is(err, ErrNoResponse)
}

// outcome labels a finished call for metrics.
func outcome(err error) string {
	var apiErr *APIError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &apiErr):
		return fmt.Sprintf("%dxx", apiErr.Status/100)
	case isTransport(err):
		return "transport"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "error"
	}
}

// apiError builds the error of a non-2xx answer. payload is filled by resty
// for JSON answers; other bodies are read here.
func apiError(resp *resty.Response, payload *errorBody) *APIError {
	apiErr := &APIError{Status: resp.StatusCode()}
	if msg := firstNonEmpty(payload.Message, payload.Error); msg != "" {
		apiErr.Message = msg
		return apiErr
	}
	body := resp.Body()
	var parsed errorBody
	if err := unmarshal(body, &parsed); err == nil {
		apiErr.Message = firstNonEmpty(parsed.Message, parsed.Error)
		return apiErr
	}
	if text := strings.TrimSpace(string(body)); text != "" && !strings.HasPrefix(text, "<") {
		apiErr.Message = text
	}
	return apiErr
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
