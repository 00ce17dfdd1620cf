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

package dto

// TelegramPublishRequest publishes a post to the configured Telegram channel.
// When PhotoURL is set the post is sent as a photo with caption.
type TelegramPublishRequest struct {
	Text     string `json:"text"`
	PhotoURL string `json:"photoUrl,omitempty"`
}

// InstagramPublishRequest publishes an image post via the Instagram Graph API
type InstagramPublishRequest struct {
	Caption  string `json:"caption"`
	ImageURL string `json:"imageUrl"`
}

// PublishResponse reports the upstream post identifier
type PublishResponse struct {
	Platform string `json:"platform"`
	PostID   string `json:"postId,omitempty"`
}
