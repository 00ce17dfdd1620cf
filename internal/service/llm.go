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

package service

import (
	"context"
	"fmt"

	"campus-api/internal/constants"
)

// llmCompleter is the upstream surface the LLM service needs
type llmCompleter interface {
	Configured() bool
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// localeNames maps locale codes to the language names used in prompts
var localeNames = map[string]string{
	"en": "English",
	"ru": "Russian",
	"kk": "Kazakh",
}

// LLMService proxies admin translation and content-analysis requests to the
// configured upstream model. It holds no state; failures pass through as
// ErrUpstream and are never retried here (the client already retries 5xx).
type LLMService struct {
	client llmCompleter
}

func NewLLMService(client llmCompleter) *LLMService {
	return &LLMService{client: client}
}

// Translate renders the text into the target locale
func (s *LLMService) Translate(ctx context.Context, text, targetLocale string) (string, error) {
	if !s.client.Configured() {
		return "", constants.ErrNotConfigured
	}
	if text == "" {
		return "", fmt.Errorf("%w: text is required", constants.ErrValidation)
	}
	language, ok := localeNames[targetLocale]
	if !ok {
		return "", constants.ErrInvalidLocale
	}

	system := fmt.Sprintf(
		"You are a professional translator for a university website. "+
			"Translate the user's text into %s. Preserve formatting and proper nouns. "+
			"Reply with the translation only.", language)
	return s.client.Complete(ctx, system, text)
}

// Analyze reviews a piece of site content and returns the model's report
func (s *LLMService) Analyze(ctx context.Context, text string) (string, error) {
	if !s.client.Configured() {
		return "", constants.ErrNotConfigured
	}
	if text == "" {
		return "", fmt.Errorf("%w: text is required", constants.ErrValidation)
	}

	system := "You are an editor reviewing university website content. " +
		"Report on clarity, tone and factual consistency, and suggest concrete improvements."
	return s.client.Complete(ctx, system, text)
}
