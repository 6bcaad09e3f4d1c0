package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fairwaylabs/clubsite-api/internal/log"
)

const DefaultResendBaseURL = "https://api.resend.com"

// ResendClient dispatches mail through the Resend transactional-email API.
// Every send is a fresh outbound HTTP call; nothing is cached between sends.
type ResendClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

func NewResendClient(apiKey, baseURL string, logger *log.Logger) *ResendClient {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultResendBaseURL
	}

	return &ResendClient{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}
}

type resendSendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo []string `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

type resendSendResponse struct {
	ID string `json:"id"`
}

type resendErrorResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

func (c *ResendClient) Send(ctx context.Context, msg *Message) (id string, err error) {
	defer func() { observeDelivery("resend", err) }()

	payload := resendSendRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
	}
	if msg.ReplyTo != "" {
		payload.ReplyTo = []string{msg.ReplyTo}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal send request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build send request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("resend request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read resend response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr resendErrorResponse
		if unmarshalErr := json.Unmarshal(respBody, &apiErr); unmarshalErr == nil && apiErr.Message != "" {
			c.logger.Error("Resend rejected message", "status", resp.StatusCode, "name", apiErr.Name, "detail", apiErr.Message)
			return "", fmt.Errorf("resend rejected message (status %d): %s", resp.StatusCode, apiErr.Message)
		}

		c.logger.Error("Resend rejected message", "status", resp.StatusCode)
		return "", fmt.Errorf("resend rejected message (status %d)", resp.StatusCode)
	}

	var sendResp resendSendResponse
	if err := json.Unmarshal(respBody, &sendResp); err != nil {
		return "", fmt.Errorf("decode resend response: %w", err)
	}

	c.logger.Info("Message accepted by Resend", "message_id", sendResp.ID, "to", msg.To)
	return sendResp.ID, nil
}

// Healthy only checks local configuration. The API offers no unauthenticated
// liveness endpoint and a probe send would deliver real mail.
func (c *ResendClient) Healthy(ctx context.Context) error {
	if strings.TrimSpace(c.apiKey) == "" {
		return fmt.Errorf("resend api key is not configured")
	}
	return nil
}
