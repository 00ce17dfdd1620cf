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
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"campus-api/internal/constants"
)

const instagramAPIBase = "https://graph.facebook.com/v19.0"

// InstagramClient publishes image posts through the Instagram Graph API.
// Publishing is a two-step flow: create a media container for the image URL,
// then publish the container.
type InstagramClient struct {
	accessToken string
	accountID   string
	baseURL     string
	http        *RetryableHTTPClient
}

// NewInstagramClient creates an Instagram Graph API client
func NewInstagramClient(accessToken, accountID string, timeout time.Duration) *InstagramClient {
	return &InstagramClient{
		accessToken: accessToken,
		accountID:   accountID,
		baseURL:     instagramAPIBase,
		http:        NewRetryableHTTPClient(1, timeout),
	}
}

// Configured reports whether Graph API credentials are present
func (c *InstagramClient) Configured() bool {
	return c.accessToken != "" && c.accountID != ""
}

type graphResponse struct {
	ID    string `json:"id"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// PublishImage creates the media container and publishes it. Returns the
// published media id.
func (c *InstagramClient) PublishImage(ctx context.Context, caption, imageURL string) (string, error) {
	containerID, err := c.post(ctx, fmt.Sprintf("%s/%s/media", c.baseURL, c.accountID), url.Values{
		"image_url":    {imageURL},
		"caption":      {caption},
		"access_token": {c.accessToken},
	})
	if err != nil {
		return "", err
	}

	mediaID, err := c.post(ctx, fmt.Sprintf("%s/%s/media_publish", c.baseURL, c.accountID), url.Values{
		"creation_id":  {containerID},
		"access_token": {c.accessToken},
	})
	if err != nil {
		return "", err
	}

	return mediaID, nil
}

func (c *InstagramClient) post(ctx context.Context, endpoint string, form url.Values) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build graph request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", constants.ErrUpstream, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response: %v", constants.ErrUpstream, err)
	}

	var parsed graphResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("%w: malformed response: %v", constants.ErrUpstream, err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("%w: %s", constants.ErrUpstream, parsed.Error.Message)
	}
	if parsed.ID == "" {
		return "", fmt.Errorf("%w: empty media id", constants.ErrUpstream)
	}

	return parsed.ID, nil
}
