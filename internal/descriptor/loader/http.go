package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

func loadHTTP(ctx context.Context, client *http.Client, url string, timeout time.Duration) ([]byte, error) {
	if client == nil {
		return nil, errors.New("descriptor loader: http client is not configured")
	}
	if url == "" {
		return nil, errors.New("descriptor loader: url is required")
	}

	reqCtx := ctx
	var cancel context.CancelFunc
	if timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json, application/x-yaml;q=0.9, text/yaml;q=0.8")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.New("descriptor loader: unexpected status " + resp.Status)
	}

	// A text/html answer is a landing or error page, never a descriptor.
	if contentType := resp.Header.Get("Content-Type"); strings.Contains(contentType, "text/html") {
		return nil, fmt.Errorf("descriptor loader: %s served %s, not a descriptor document", url, contentType)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDescriptorBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxDescriptorBytes {
		return nil, fmt.Errorf("descriptor loader: %s exceeds the %d byte descriptor limit", url, maxDescriptorBytes)
	}
	return data, nil
}
