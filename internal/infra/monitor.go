package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/robertsn808/alii/internal/worker"
)

// MonitorClient posts error reports to the external AI monitoring
// endpoint. Delivery failures are the caller's problem only insofar as
// they get logged; the monitor is purely advisory.
type MonitorClient struct {
	endpointURL string
	httpClient  *http.Client
	cb          *CircuitBreaker
}

func NewMonitorClient(endpointURL string) *MonitorClient {
	return &MonitorClient{
		endpointURL: endpointURL,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		cb:          NewCircuitBreaker(DefaultCBConfig()),
	}
}

// SendReport posts one report. Implements worker.ReportSender.
func (c *MonitorClient) SendReport(ctx context.Context, report worker.ErrorReport) error {
	return c.cb.Execute(func() error {
		body, err := json.Marshal(report)
		if err != nil {
			return fmt.Errorf("monitor: marshal report: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("monitor: create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("monitor: endpoint unreachable: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 300 {
			return fmt.Errorf("monitor: endpoint returned %d", resp.StatusCode)
		}
		return nil
	})
}
