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
	"campus-api/internal/dto"
)

type telegramPublisher interface {
	Configured() bool
	SendPost(ctx context.Context, text, photoURL string) (string, error)
}

type instagramPublisher interface {
	Configured() bool
	PublishImage(ctx context.Context, caption, imageURL string) (string, error)
}

// SocialService proxies admin publishing requests to the configured social
// platforms. A platform without credentials fails with ErrNotConfigured.
type SocialService struct {
	telegram  telegramPublisher
	instagram instagramPublisher
}

func NewSocialService(telegram telegramPublisher, instagram instagramPublisher) *SocialService {
	return &SocialService{
		telegram:  telegram,
		instagram: instagram,
	}
}

// PublishTelegram posts to the configured Telegram chat
func (s *SocialService) PublishTelegram(ctx context.Context, req dto.TelegramPublishRequest) (*dto.PublishResponse, error) {
	if !s.telegram.Configured() {
		return nil, constants.ErrNotConfigured
	}
	if req.Text == "" {
		return nil, fmt.Errorf("%w: text is required", constants.ErrValidation)
	}

	postID, err := s.telegram.SendPost(ctx, req.Text, req.PhotoURL)
	if err != nil {
		return nil, err
	}
	return &dto.PublishResponse{Platform: "telegram", PostID: postID}, nil
}

// PublishInstagram posts an image via the Instagram Graph API
func (s *SocialService) PublishInstagram(ctx context.Context, req dto.InstagramPublishRequest) (*dto.PublishResponse, error) {
	if !s.instagram.Configured() {
		return nil, constants.ErrNotConfigured
	}
	if req.ImageURL == "" {
		return nil, fmt.Errorf("%w: imageUrl is required", constants.ErrValidation)
	}

	postID, err := s.instagram.PublishImage(ctx, req.Caption, req.ImageURL)
	if err != nil {
		return nil, err
	}
	return &dto.PublishResponse{Platform: "instagram", PostID: postID}, nil
}
