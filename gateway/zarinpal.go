// Package gateway implements the JSON-over-HTTPS client for the Zarinpal
// sandbox payment gateway. Two calls exist: payment/request, which trades an
// amount and callback URL for an authority token, and payment/verify, which
// settles a transaction identified by that token.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Gateway result codes. 100 is a fresh success, 101 means the transaction
// was already verified earlier; both count as success for verification.
const (
	CodeSuccess         = 100
	CodeAlreadyVerified = 101
)

// Client talks to the payment gateway. Base URL and merchant id are injected
// at construction, nothing is read from the environment here.
type Client struct {
	BaseURL    string
	MerchantID string
	HTTPClient *http.Client
}

// NewClient creates a gateway client for the given base URL and merchant id
func NewClient(baseURL, merchantID string) *Client {
	return &Client{
		BaseURL:    baseURL,
		MerchantID: merchantID,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// PaymentRequest is the body of a payment/request call. Metadata is free-form
// and echoed back by the gateway; the order id travels in it.
type PaymentRequest struct {
	MerchantID  string            `json:"merchant_id"`
	Amount      int64             `json:"amount"`
	Description string            `json:"description"`
	CallbackURL string            `json:"callback_url"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// VerifyRequest is the body of a payment/verify call
type VerifyRequest struct {
	MerchantID string `json:"merchant_id"`
	Amount     int64  `json:"amount"`
	Authority  string `json:"authority"`
}

// ResponseData is the data object of a gateway response
type ResponseData struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Authority string `json:"authority,omitempty"`
	Fee       int64  `json:"fee,omitempty"`
	FeeType   string `json:"fee_type,omitempty"`
	RefID     int64  `json:"ref_id,omitempty"`
	CardHash  string `json:"card_hash,omitempty"`
}

// Response is the full gateway response envelope. Errors is kept raw because
// the gateway returns an empty array on success and an object on failure.
type Response struct {
	Data   ResponseData    `json:"data"`
	Errors json.RawMessage `json:"errors,omitempty"`
}

// Request sends a payment initiation request to the gateway
func (c *Client) Request(ctx context.Context, req PaymentRequest) (*Response, error) {
	req.MerchantID = c.MerchantID
	return c.post(ctx, "/payment/request.json", req)
}

// Verify asks the gateway to settle the transaction behind an authority token
func (c *Client) Verify(ctx context.Context, req VerifyRequest) (*Response, error) {
	req.MerchantID = c.MerchantID
	return c.post(ctx, "/payment/verify.json", req)
}

func (c *Client) post(ctx context.Context, path string, body interface{}) (*Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode gateway request: %v", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build gateway request: %v", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	httpResp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gateway call failed: %v", err)
	}
	defer httpResp.Body.Close()

	var resp Response
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to decode gateway response: %v", err)
	}

	return &resp, nil
}
