package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"storefront/internal/errors"

	"github.com/shopspring/decimal"
)

const maxProviderResponseBytes = 1 << 20

// httpStatusError is returned when a provider answers outside 2xx.
type httpStatusError struct {
	StatusCode int
	Body       string
}

func (e *httpStatusError) Error() string {
	return "provider returned status " + http.StatusText(e.StatusCode) + ": " + e.Body
}

// jsonClient performs JSON requests against one provider.
type jsonClient struct {
	httpClient *http.Client
	authorize  func(req *http.Request)
}

func newJSONClient(timeout time.Duration, authorize func(req *http.Request)) *jsonClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &jsonClient{
		httpClient: &http.Client{Timeout: timeout},
		authorize:  authorize,
	}
}

// do sends body (when non-nil) as JSON and decodes the response into out.
// A non-2xx answer still decodes into out when possible and returns *httpStatusError.
func (c *jsonClient) do(ctx context.Context, method, url string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode provider request")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return errors.Wrap(err, "failed to build provider request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "provider request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxProviderResponseBytes))
	if err != nil {
		return errors.Wrap(err, "failed to read provider response")
	}

	var decodeErr error
	if out != nil && len(bytes.TrimSpace(raw)) > 0 {
		decodeErr = json.Unmarshal(raw, out)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &httpStatusError{StatusCode: resp.StatusCode, Body: truncate(string(raw), 256)}
	}
	if decodeErr != nil {
		return errors.Wrap(decodeErr, "failed to decode provider response")
	}

	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n]
}

// jsonAmount renders money as a JSON number with two decimals.
func jsonAmount(amount decimal.Decimal) json.Number {
	return json.Number(amount.StringFixed(2))
}
