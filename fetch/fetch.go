package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Options configures a request. The zero value sends a GET.
type Options struct {
	Method string

	// Query is encoded and appended to the endpoint.
	Query map[string]string

	// Headers are sent after Content-Type: application/json and may
	// override it.
	Headers map[string]string

	// Body is JSON encoded when non-nil.
	Body any

	// Client defaults to http.DefaultClient.
	Client *http.Client
}

// JSON sends a request to endpoint and decodes the JSON response into T.
func JSON[T any](ctx context.Context, endpoint string, opts Options) (T, error) {
	var out T

	req, err := newRequest(ctx, endpoint, opts)
	if err != nil {
		return out, err
	}

	client := opts.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return out, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return out, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return out, nil
}

func newRequest(ctx context.Context, endpoint string, opts Options) (*http.Request, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	target := endpoint
	if len(opts.Query) > 0 {
		q := make(url.Values, len(opts.Query))
		for k, v := range opts.Query {
			q.Set(k, v)
		}
		sep := "?"
		if strings.Contains(endpoint, "?") {
			sep = "&"
		}
		target += sep + q.Encode()
	}

	var body io.Reader
	if opts.Body != nil {
		data, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}
	return req, nil
}
