package avcan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/granitechief/avybrief/internal/infra/config"
)

const defaultAPIURL = "https://api.avalanche.ca/forecasts/en/products/point?lat=50.11367&long=-122.95477"

// Client fetches point forecast products from the Avalanche Canada API.
type Client struct {
	apiURL     string
	httpClient *http.Client
}

// NewClient builds an API client.
func NewClient(cfg config.ForecastConfig) *Client {
	apiURL := strings.TrimSpace(cfg.APIURL)
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		apiURL: apiURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchPoint retrieves the current forecast product for the configured
// location. The upstream payload shape varies between deployments, so the
// body is decoded into a dynamic value for the normalizer to interpret.
func (c *Client) FetchPoint(ctx context.Context) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build forecast request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("forecast request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("forecast request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read forecast response: %w", err)
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode forecast response: %w", err)
	}

	return raw, nil
}
