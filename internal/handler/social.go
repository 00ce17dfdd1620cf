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

package handler

import (
	"errors"
	"net/http"

	"campus-api/internal/constants"
	"campus-api/internal/dto"
	"campus-api/internal/service"
	"campus-api/internal/utils"

	"github.com/gin-gonic/gin"
)

// SocialHandler serves the admin social publishing routes
type SocialHandler struct {
	socialService *service.SocialService
}

func NewSocialHandler(socialService *service.SocialService) *SocialHandler {
	return &SocialHandler{socialService: socialService}
}

func (h *SocialHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/social/telegram", h.PublishTelegram)
	r.POST("/social/instagram", h.PublishInstagram)
}

func (h *SocialHandler) PublishTelegram(c *gin.Context) {
	var req dto.TelegramPublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(400, "Bad Request", "Invalid request body"))
		return
	}

	result, err := h.socialService.PublishTelegram(c.Request.Context(), req)
	if err != nil {
		h.respondSocialError(c, "SocialHandler.PublishTelegram", "Telegram", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *SocialHandler) PublishInstagram(c *gin.Context) {
	var req dto.InstagramPublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(400, "Bad Request", "Invalid request body"))
		return
	}

	result, err := h.socialService.PublishInstagram(c.Request.Context(), req)
	if err != nil {
		h.respondSocialError(c, "SocialHandler.PublishInstagram", "Instagram", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *SocialHandler) respondSocialError(c *gin.Context, op, platform string, err error) {
	switch {
	case errors.Is(err, constants.ErrValidation):
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(400, "Bad Request", err.Error()))
	case errors.Is(err, constants.ErrNotConfigured):
		c.JSON(http.StatusServiceUnavailable, utils.NewErrorResponse(503, "Service Unavailable", platform+" integration is not configured"))
	case errors.Is(err, constants.ErrUpstream):
		utils.LogError(op, err)
		c.JSON(http.StatusBadGateway, utils.NewErrorResponse(502, "Bad Gateway", platform+" upstream request failed"))
	default:
		utils.LogError(op, err)
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(500, "Internal Server Error", "Publishing failed"))
	}
}
