package kyc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client polls the external KYC service for the seller verification boolean.
type Client struct {
	Address string
}

func NewClient(address string) *Client {
	return &Client{Address: address}
}

type verificationResponse struct {
	SellerID string `json:"seller_id"`
	Verified bool   `json:"verified"`
}

func (c *Client) IsVerified(ctx context.Context, sellerID string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/sellers/%s/verification", c.Address, sellerID), nil)
	if err != nil {
		return false, err
	}

	response, err := http.DefaultClient.Do(req)
	if err != nil {
		return false, err
	}
	defer response.Body.Close()

	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return false, err
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return false, fmt.Errorf("kyc service returned status %d", response.StatusCode)
	}

	var verification verificationResponse
	if err := json.Unmarshal(responseBodyBytes, &verification); err != nil {
		return false, err
	}
	return verification.Verified, nil
}
