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
	"strconv"

	"campus-api/internal/constants"
	"campus-api/internal/dto"
	"campus-api/internal/service"
	"campus-api/internal/store"
	"campus-api/internal/utils"

	"github.com/gin-gonic/gin"
)

// NewsHandler serves the news collection admin routes
type NewsHandler struct {
	newsService *service.NewsService
}

func NewNewsHandler(newsService *service.NewsService) *NewsHandler {
	return &NewsHandler{newsService: newsService}
}

func (h *NewsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/news", h.ListNews)
	r.POST("/news", h.CreateNews)
	r.PUT("/news/:id", h.UpdateNews)
}

// ListNews returns the full record list, optionally narrowed by category,
// publish flag and limit.
func (h *NewsHandler) ListNews(c *gin.Context) {
	filter := dto.NewsFilter{
		Category:      c.Query("category"),
		PublishedOnly: c.Query("published") == "true",
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
		utils.LogError("NewsHandler.ListNews", err)
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(500, "Internal Server Error", "Failed to list news"))
		return
	}
	c.JSON(http.StatusOK, records)
}

// CreateNews appends a record; id and timestamps are assigned server-side
func (h *NewsHandler) CreateNews(c *gin.Context) {
	var fields store.Record
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(400, "Bad Request", "Request body must be a JSON object"))
		return
	}

	record, err := h.newsService.Create(fields)
	if err != nil {
		if errors.Is(err, constants.ErrValidation) {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(400, "Bad Request", err.Error()))
			return
		}
		utils.LogError("NewsHandler.CreateNews", err)
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(500, "Internal Server Error", "Failed to create news record"))
		return
	}
	c.JSON(http.StatusCreated, record)
}

// UpdateNews merges fields over an existing record by id
func (h *NewsHandler) UpdateNews(c *gin.Context) {
	id := c.Param("id")

	var fields store.Record
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(400, "Bad Request", "Request body must be a JSON object"))
		return
	}

	record, err := h.newsService.Update(id, fields)
	if err != nil {
		switch {
		case errors.Is(err, constants.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(404, "Not Found", "News record not found"))
		case errors.Is(err, constants.ErrValidation):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(400, "Bad Request", err.Error()))
		default:
			utils.LogError("NewsHandler.UpdateNews", err)
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(500, "Internal Server Error", "Failed to update news record"))
		}
		return
	}
	c.JSON(http.StatusOK, record)
}
