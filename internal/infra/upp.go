package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// UPPPaymentRequest is sent to the Universal Payment Protocol gateway
// for card/NFC/QR payments. The gateway owns the actual payment
// protocol; this client only delegates.
type UPPPaymentRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	DeviceType    string          `json:"device_type"`
	DeviceID      string          `json:"device_id"`
	Description   string          `json:"description,omitempty"`
	CustomerEmail string          `json:"customer_email,omitempty"`
}

// UPPPaymentResponse is the gateway's outcome for a payment attempt.
type UPPPaymentResponse struct {
	Success       bool   `json:"success"`
	PaymentID     string `json:"payment_id"`
	TransactionID string `json:"transaction_id"`
	PaymentURL    string `json:"payment_url,omitempty"`
	Error         string `json:"error,omitempty"`
}

// UPPPaymentStatus is the current state of a previously started payment.
type UPPPaymentStatus struct {
	PaymentID string `json:"payment_id"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
}

// UPPClient is an HTTP client delegating payment processing to the UPP
// gateway. Gateway outages trip the circuit breaker so a dead gateway
// fast-fails instead of tying up registers for the full timeout.
type UPPClient struct {
	baseURL    string
	httpClient *http.Client
	cb         *CircuitBreaker
}

func NewUPPClient(baseURL string) *UPPClient {
	return &UPPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cb:         NewCircuitBreaker(DefaultCBConfig()),
	}
}

// ProcessPayment starts a payment on the gateway.
func (c *UPPClient) ProcessPayment(ctx context.Context, payment UPPPaymentRequest) (*UPPPaymentResponse, error) {
	var result UPPPaymentResponse
	err := c.cb.Execute(func() error {
		body, err := json.Marshal(payment)
		if err != nil {
			return fmt.Errorf("upp: marshal payment: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payments/process", bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("upp: create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("upp: gateway unreachable: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("upp: gateway returned %d", resp.StatusCode)
		}
		return json.NewDecoder(resp.Body).Decode(&result)
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// PaymentStatus queries the state of a previously started payment.
func (c *UPPClient) PaymentStatus(ctx context.Context, paymentID string) (*UPPPaymentStatus, error) {
	var result UPPPaymentStatus
	err := c.cb.Execute(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/payments/"+paymentID+"/status", nil)
		if err != nil {
			return fmt.Errorf("upp: create request: %w", err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("upp: gateway unreachable: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("upp: gateway returned %d", resp.StatusCode)
		}
		return json.NewDecoder(resp.Body).Decode(&result)
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
