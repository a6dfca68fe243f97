package wizard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/vibe-gaming/verify/pkg/logger"
	"go.uber.org/zap"
)

// Client calls the verification HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type apiResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	RedirectURL string `json:"redirectUrl"`
}

func (c *Client) SendCode(ctx context.Context, email string) error {
	_, err := c.post(ctx, "/send-code", map[string]string{"email": email})
	return err
}

func (c *Client) VerifyCode(ctx context.Context, email string, code string) error {
	_, err := c.post(ctx, "/verify-code", map[string]string{"email": email, "code": code})
	return err
}

func (c *Client) ResetPassword(ctx context.Context, req ResetRequest) (string, error) {
	resp, err := c.post(ctx, "/reset-password", req)
	if err != nil {
		return "", err
	}
	return resp.RedirectURL, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) (*apiResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Debug("api request failed", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	var out apiResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&out)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if decodeErr == nil && out.Message != "" {
			return nil, errors.New(out.Message)
		}
		return nil, errors.New("server error")
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode response: %w", decodeErr)
	}
	if !out.Success {
		return nil, errors.New(out.Message)
	}

	return &out, nil
}
