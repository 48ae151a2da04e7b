// Package member fetches member profiles (nickname, email, avatar) from the
// member service; results are cached in the local members table by callers.
package member

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/s21platform/stream-service/internal/config"
	"github.com/s21platform/stream-service/internal/model"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.Member.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Member.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) GetMemberByUUID(ctx context.Context, memberUUID string) (*model.MemberInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/members/"+memberUUID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var memberInfo model.MemberInfo
	if err := json.NewDecoder(resp.Body).Decode(&memberInfo); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &memberInfo, nil
}
