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
	"log"
	"net/http"
	"time"
)

// RetryableHTTPClient wraps an HTTP client with retry logic for the outbound
// LLM and social-media calls. Retries network errors and 5xx responses with
// linear backoff; 4xx responses are returned as-is.
type RetryableHTTPClient struct {
	client     *http.Client
	maxRetries int
}

// NewRetryableHTTPClient creates a new HTTP client with retry capabilities.
// maxRetries is the number of retry attempts on top of the initial request;
// timeout applies per attempt.
func NewRetryableHTTPClient(maxRetries int, timeout time.Duration) *RetryableHTTPClient {
	return &RetryableHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		maxRetries: maxRetries,
	}
}

// Do executes an HTTP request with retry logic
func (r *RetryableHTTPClient) Do(req *http.Request) (*http.Response, error) {
	var resp *http.Response
	var err error

	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		resp, err = r.client.Do(req)

		if err == nil && resp.StatusCode < 500 {
			return resp, nil
		}

		if attempt < r.maxRetries {
			if err != nil {
				log.Printf("[WARN] upstream attempt %d/%d failed: %v, retrying",
					attempt+1, r.maxRetries+1, err)
			} else {
				resp.Body.Close()
				log.Printf("[WARN] upstream attempt %d/%d returned status %d, retrying",
					attempt+1, r.maxRetries+1, resp.StatusCode)
			}
			time.Sleep(1 * time.Second)
		}
	}

	if err != nil {
		return nil, err
	}
	return resp, nil
}
