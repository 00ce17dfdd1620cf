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
	"fmt"
	"net/http"
	"strconv"

	"campus-api/internal/constants"
	"campus-api/internal/dto"
	"campus-api/internal/service"
	"campus-api/internal/utils"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves the unauthenticated read-only mirrors consumed by the
// presentation layer. Responses carry cache hints but never authorization.
type PublicHandler struct {
	contentService     *service.ContentService
	newsService        *service.NewsService
	translationService *service.TranslationService
	cacheMaxAge        int
}

func NewPublicHandler(
	contentService *service.ContentService,
	newsService *service.NewsService,
	translationService *service.TranslationService,
	cacheMaxAge int,
) *PublicHandler {
	return &PublicHandler{
		contentService:     contentService,
		newsService:        newsService,
		translationService: translationService,
		cacheMaxAge:        cacheMaxAge,
	}
}

func (h *PublicHandler) RegisterRoutes(r *gin.Engine) {
	publicGroup := r.Group("/api/public")
	{
		publicGroup.GET("/content/:resource", h.GetContent)
		publicGroup.GET("/news", h.ListNews)
		publicGroup.GET("/translations/:locale", h.GetTranslations)
	}
}

// GetContent mirrors a settings-style resource. Only resources on the public
// allow list are exposed.
func (h *PublicHandler) GetContent(c *gin.Context) {
	resource := c.Param("resource")
	if !constants.PublicSettingsResources[resource] {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(404, "Not Found", "Unknown content resource"))
		return
	}

	doc, err := h.contentService.GetSettings(resource)
	if err != nil {
		utils.LogError("PublicHandler.GetContent", err)
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(500, "Internal Server Error", "Failed to load content"))
		return
	}

	h.setCacheHeader(c)
	c.JSON(http.StatusOK, doc)
}

// ListNews returns published news only, regardless of query parameters
func (h *PublicHandler) ListNews(c *gin.Context) {
	filter := dto.NewsFilter{
		Category:      c.Query("category"),
		PublishedOnly: true,
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(400, "Bad Request", "Invalid limit parameter"))
			return
		}
		filter.Limit = limit
	}

	records, err := h.newsService.List(filter)
	if err != nil {
		utils.LogError("PublicHandler.ListNews", err)
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(500, "Internal Server Error", "Failed to list news"))
		return
	}

	h.setCacheHeader(c)
	c.JSON(http.StatusOK, records)
}

// GetTranslations mirrors a locale's catalog subtree
func (h *PublicHandler) GetTranslations(c *gin.Context) {
	locale := c.Param("locale")
	path := c.Query("path")

	subtree, err := h.translationService.GetSubtree(locale, path)
	if err != nil {
		switch {
		case errors.Is(err, constants.ErrInvalidLocale):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(404, "Not Found", "Unsupported locale"))
		case errors.Is(err, constants.ErrInvalidSubtreePath):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(400, "Bad Request", "Invalid dotted path"))
		default:
			utils.LogError("PublicHandler.GetTranslations", err)
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(500, "Internal Server Error", "Failed to load translations"))
		}
		return
	}

	h.setCacheHeader(c)
	c.JSON(http.StatusOK, subtree)
}

func (h *PublicHandler) setCacheHeader(c *gin.Context) {
	c.Header("Cache-Control", fmt.Sprintf("public, max-age=%d", h.cacheMaxAge))
}
