// Package paymentgw implements the PaymentGateway port over the gateway's
// HTTP API. Every call is bounded by the client timeout; transport failures
// and gateway 5xx answers surface as UpstreamUnavailableError so callers know
// the order was left untouched and the request is retryable.
package paymentgw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/core/ports"
	"farmmarket/internal/pkg/errs"
)

const defaultTimeout = 10 * time.Second

// Client is an HTTP payment gateway client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a payment gateway client for the given base URL.
// A zero timeout gets the default.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type chargeRequestBody struct {
	OrderID     string            `json:"orderId"`
	OrderNumber string            `json:"orderNumber"`
	Amount      float64           `json:"amount"`
	Method      string            `json:"method"`
	Details     map[string]string `json:"details,omitempty"`
}

type paymentBody struct {
	PaymentID string `json:"paymentId"`
	Status    string `json:"status"`
}

// Charge submits a payment request for the order's total amount.
// The gateway deduplicates on order number, so retrying a timed-out charge
// cannot double-bill the buyer.
func (c *Client) Charge(ctx context.Context, request ports.ChargeRequest) (ports.ChargeResult, error) {
	body, err := json.Marshal(chargeRequestBody{
		OrderID:     request.OrderID.String(),
		OrderNumber: request.OrderNumber,
		Amount:      request.Amount.Amount(),
		Method:      request.Method.String(),
		Details:     request.Details,
	})
	if err != nil {
		return ports.ChargeResult{}, err
	}

	var response paymentBody
	if err = c.do(ctx, http.MethodPost, "/v1/charges", bytes.NewReader(body), &response); err != nil {
		return ports.ChargeResult{}, err
	}

	status, err := order.PaymentStatusFromString(response.Status)
	if err != nil {
		return ports.ChargeResult{}, errs.NewUpstreamUnavailableError("payment gateway", err)
	}

	return ports.ChargeResult{
		PaymentID: response.PaymentID,
		Status:    status,
	}, nil
}

// PaymentStatus queries the gateway for the current state of a payment.
func (c *Client) PaymentStatus(ctx context.Context, paymentID string) (order.PaymentStatus, error) {
	if paymentID == "" {
		return order.PaymentUnknown, errs.NewValueIsRequiredError("payment id")
	}

	var response paymentBody
	err := c.do(ctx, http.MethodGet, "/v1/charges/"+paymentID, nil, &response)
	if err != nil {
		return order.PaymentUnknown, err
	}

	status, err := order.PaymentStatusFromString(response.Status)
	if err != nil {
		return order.PaymentUnknown, errs.NewUpstreamUnavailableError("payment gateway", err)
	}

	return status, nil
}

func (c *Client) do(ctx context.Context, method, path string, body *bytes.Reader, out any) error {
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.NewUpstreamUnavailableError("payment gateway", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errs.NewObjectNotFoundError("payment", path)
	case resp.StatusCode >= http.StatusInternalServerError:
		return errs.NewUpstreamUnavailableError("payment gateway",
			fmt.Errorf("gateway returned %d", resp.StatusCode))
	case resp.StatusCode >= http.StatusBadRequest:
		return errs.NewValueIsInvalidErrorWithCause("payment request",
			fmt.Errorf("gateway returned %d", resp.StatusCode))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
