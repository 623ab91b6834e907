package telegram

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const API_URL = "https://api.telegram.org"

// Telegram delivers plain-text messages to a single chat through the
// bot sendMessage endpoint.
type Telegram struct {
	url    string
	token  string
	chatId string
}

func New(token, chatId string) Telegram {
	return Telegram{url: API_URL, token: token, chatId: chatId}
}

func (t Telegram) Send(ctx context.Context, text string) error {
	form := url.Values{}
	form.Set("chat_id", t.chatId)
	form.Set("text", text)

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", t.url, t.token)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return nil
}
