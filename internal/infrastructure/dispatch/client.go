package dispatch

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/go-resty/resty/v2"

	"livekit-token-service/internal/config"
	domaindispatch "livekit-token-service/internal/domain/dispatch"
	"livekit-token-service/internal/infrastructure/metrics"
)

// Client posts dispatch requests to the orchestration endpoint.
type Client struct {
	httpClient *resty.Client
	url        string
}

var _ domaindispatch.Client = (*Client)(nil)

// NewClient constructs the dispatch client. Retries are disabled: dispatch
// is at-most-once.
func NewClient(cfg *config.Config) (*Client, error) {
	url, err := cfg.AgentDispatchURL()
	if err != nil {
		return nil, err
	}
	return &Client{
		httpClient: resty.New().
			SetHeader("Content-Type", "application/json").
			SetHeader("User-Agent", cfg.ServiceName).
			SetTimeout(cfg.DispatchTimeout).
			SetRetryCount(0),
		url: url,
	}, nil
}

// Dispatch sends req with the admin bearer token. Non-2xx responses are errors.
func (c *Client) Dispatch(ctx context.Context, bearerToken string, req *domaindispatch.Request) error {
	start := time.Now()

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetAuthToken(bearerToken).
		SetBody(req).
		Post(c.url)
	elapsed := time.Since(start).Seconds()

	if err != nil {
		result := "error"
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			result = "timeout"
		}
		metrics.RecordDispatch(result, elapsed)
		return fmt.Errorf("post %s: %w", c.url, err)
	}
	if !resp.IsSuccess() {
		metrics.RecordDispatch("rejected", elapsed)
		return fmt.Errorf("dispatch endpoint returned %d: %s", resp.StatusCode(), truncate(resp.String(), 256))
	}

	metrics.RecordDispatch("ok", elapsed)
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
