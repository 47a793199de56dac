package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/peertrade/escrow-service/internal/domain"
)

// HTTPPaymentGateway talks to the external payment gateway over HTTP. Every
// call carries a bounded timeout; a timeout or transport failure maps to
// GATEWAY_UNAVAILABLE and the escrow is never transitioned speculatively, so
// the caller can retry with the same reference id.
type HTTPPaymentGateway struct {
	Address string
	client  *http.Client
	timeout time.Duration
}

func NewHTTPPaymentGateway(address string, timeout time.Duration) *HTTPPaymentGateway {
	return &HTTPPaymentGateway{
		Address: address,
		client:  &http.Client{Timeout: timeout},
		timeout: timeout,
	}
}

type captureRequest struct {
	Amount 		  float64 `json:"amount"`
	Currency 	  string  `json:"currency"`
	PaymentMethod string  `json:"payment_method"`
}

type captureResponse struct {
	GatewayPaymentID string `json:"gateway_payment_id"`
}

type refundRequest struct {
	GatewayPaymentID string  `json:"gateway_payment_id"`
	Amount 			 float64 `json:"amount"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (g *HTTPPaymentGateway) Capture(ctx context.Context, amount float64, currency, paymentMethod string) (string, error) {
	requestBodyBytes, err := json.Marshal(captureRequest{
		Amount: amount,
		Currency: currency,
		PaymentMethod: paymentMethod,
	})
	if err != nil {
		return "", err
	}

	responseBodyBytes, err := g.post(ctx, fmt.Sprintf("%s/payments/capture", g.Address), requestBodyBytes)
	if err != nil {
		return "", err
	}

	var capture captureResponse
	if err := json.Unmarshal(responseBodyBytes, &capture); err != nil {
		return "", err
	}
	return capture.GatewayPaymentID, nil
}

func (g *HTTPPaymentGateway) Refund(ctx context.Context, gatewayPaymentID string, amount float64) error {
	requestBodyBytes, err := json.Marshal(refundRequest{
		GatewayPaymentID: gatewayPaymentID,
		Amount: amount,
	})
	if err != nil {
		return err
	}

	_, err = g.post(ctx, fmt.Sprintf("%s/payments/refund", g.Address), requestBodyBytes)
	return err
}

func (g *HTTPPaymentGateway) post(ctx context.Context, url string, body []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	response, err := g.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, domain.ErrGatewayUnavailable
		}
		return nil, domain.DependencyFailure(err.Error())
	}
	defer response.Body.Close()

	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return responseBodyBytes, nil
	}
	if response.StatusCode >= 500 {
		return nil, domain.DependencyFailure(fmt.Sprintf("gateway returned status %d", response.StatusCode))
	}

	var errResponse errorResponse
	if err := json.Unmarshal(responseBodyBytes, &errResponse); err != nil {
		return nil, fmt.Errorf("gateway returned status %d", response.StatusCode)
	}
	return nil, errors.New(errResponse.Error)
}
