/*
 *  Copyright (c) 2026, Zhezkazgan University. All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 */

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"campus-api/internal/constants"
)

const telegramAPIBase = "https://api.telegram.org"

// TelegramClient publishes posts to a Telegram chat through the Bot API
type TelegramClient struct {
	botToken string
	chatID   string
	baseURL  string
	http     *RetryableHTTPClient
}

// NewTelegramClient creates a Telegram Bot API client
func NewTelegramClient(botToken, chatID string, timeout time.Duration) *TelegramClient {
	return &TelegramClient{
		botToken: botToken,
		chatID:   chatID,
		baseURL:  telegramAPIBase,
		http:     NewRetryableHTTPClient(1, timeout),
	}
}

// Configured reports whether bot credentials are present
func (c *TelegramClient) Configured() bool {
	return c.botToken != "" && c.chatID != ""
}

type telegramResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
	Result      struct {
		MessageID int `json:"message_id"`
	} `json:"result"`
}

// SendPost publishes text to the configured chat. When photoURL is set the
// post is sent via sendPhoto with the text as caption, otherwise sendMessage.
// Returns the Telegram message id.
func (c *TelegramClient) SendPost(ctx context.Context, text, photoURL string) (string, error) {
	method := "sendMessage"
	payload := map[string]any{
		"chat_id":    c.chatID,
		"parse_mode": "HTML",
	}
	if photoURL != "" {
		method = "sendPhoto"
		payload["photo"] = photoURL
		payload["caption"] = text
	} else {
		payload["text"] = text
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode telegram request: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.botToken, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", constants.ErrUpstream, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response: %v", constants.ErrUpstream, err)
	}

	var parsed telegramResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("%w: malformed response: %v", constants.ErrUpstream, err)
	}
	if !parsed.OK {
		return "", fmt.Errorf("%w: %s", constants.ErrUpstream, parsed.Description)
	}

	return strconv.Itoa(parsed.Result.MessageID), nil
}
