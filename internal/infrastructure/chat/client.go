package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client fetches the seller response-time signal from the chat service.
// The score comes back already normalized to [0,1].
type Client struct {
	Address string
}

func NewClient(address string) *Client {
	return &Client{Address: address}
}

type responseScoreResponse struct {
	SellerID string  `json:"seller_id"`
	Score 	 float64 `json:"score"`
}

func (c *Client) AverageResponseScore(ctx context.Context, sellerID string) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/sellers/%s/response-score", c.Address, sellerID), nil)
	if err != nil {
		return 0, err
	}

	response, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer response.Body.Close()

	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return 0, err
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return 0, fmt.Errorf("chat service returned status %d", response.StatusCode)
	}

	var score responseScoreResponse
	if err := json.Unmarshal(responseBodyBytes, &score); err != nil {
		return 0, err
	}
	return score.Score, nil
}
