// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP client helpers for the dataset fetcher.
package httputil

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

// RetryBaseDelay controls the base duration for exponential backoff on
// HTTP 429 responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = 2 * time.Second

const defaultMaxRetries = 5

// DoWithRetry executes an HTTP request and retries on HTTP 429 (Too Many
// Requests) with exponential backoff starting at RetryBaseDelay. A
// Retry-After header with a second count overrides the computed backoff.
//
// When maxRetries is 0 the default (5) is used. On each 429 the response
// body is drained and closed before sleeping. If the context is cancelled
// during a backoff wait the function returns ctx.Err(). After exhausting
// retries the last 429 response is returned so the caller can inspect it.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxRetries int) (*http.Response, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	backoff := RetryBaseDelay
	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}
		if attempt >= maxRetries {
			return resp, nil
		}

		wait := backoff
		if after := resp.Header.Get("Retry-After"); after != "" {
			if secs, parseErr := strconv.Atoi(after); parseErr == nil && secs > 0 {
				wait = time.Duration(secs) * time.Second
			}
		}

		// Drain and close the body before retrying.
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		slog.Debug("rate limited, backing off",
			"url", req.URL.String(),
			"wait", wait,
			"attempt", attempt+1,
			"max", maxRetries)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
		backoff *= 2
	}
}
