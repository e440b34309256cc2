package call2fa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"call2fa/pkg/metrics"

	"github.com/google/uuid"
)

// do sends one request and returns the status code and the full body.
// Any failure before a status line is read is reported as a transport error.
func (c *Client) do(ctx context.Context, step, method, uri string, payload interface{}, authorized bool) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		if err != nil {
			c.log.Errorf("Failed to marshal %s request body: error=%v", step, err)
			return 0, nil, transportError(step, fmt.Errorf("marshal request: %w", err))
		}
		body = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, uri, body)
	if err != nil {
		c.log.Errorf("Failed to create %s request: url=%s, error=%v", step, uri, err)
		return 0, nil, transportError(step, fmt.Errorf("create request: %w", err))
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorized {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.ClientRequestDuration.WithLabelValues(step).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ClientRequestsTotal.WithLabelValues(step, "error").Inc()
		c.log.Errorf("Failed to send %s request: url=%s, request_id=%s, error=%v", step, uri, requestID, err)
		return 0, nil, transportError(step, err)
	}
	defer func() { _ = resp.Body.Close() }()
	metrics.ClientRequestsTotal.WithLabelValues(step, strconv.Itoa(resp.StatusCode)).Inc()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Errorf("Failed to read %s response body: url=%s, status=%s, error=%v", step, uri, resp.Status, err)
		return 0, nil, transportError(step, fmt.Errorf("read response body: %w", err))
	}

	c.log.Debugf("%s %s: step=%s, status=%d, request_id=%s, latency=%v", method, uri, step, resp.StatusCode, requestID, time.Since(start))
	return resp.StatusCode, respBody, nil
}

// expect runs a request and decodes the body when the status matches want.
func (c *Client) expect(ctx context.Context, step, method, uri string, payload interface{}, want int) (Response, error) {
	status, body, err := c.do(ctx, step, method, uri, payload, true)
	if err != nil {
		return nil, err
	}
	if status != want {
		c.log.Errorf("Request failed: step=%s, url=%s, status=%d, response=%s", step, uri, status, string(body))
		return nil, requestFailed(step, status, "")
	}

	var out Response
	if err := json.Unmarshal(body, &out); err != nil {
		c.log.Errorf("Failed to decode %s response: url=%s, response=%s, error=%v", step, uri, string(body), err)
		return nil, requestFailed(step, status, "decode response")
	}
	return out, nil
}
