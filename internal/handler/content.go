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
	"campus-api/internal/service"
	"campus-api/internal/store"
	"campus-api/internal/utils"

	"github.com/gin-gonic/gin"
)

// ContentHandler serves the settings-style admin resources through generic
// GET/PUT routes keyed by resource name.
type ContentHandler struct {
	contentService *service.ContentService
}

func NewContentHandler(contentService *service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

func (h *ContentHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/content/:resource", h.GetSettings)
	r.PUT("/content/:resource", h.UpdateSettings)
}

// GetSettings returns the stored document merged over its defaults
func (h *ContentHandler) GetSettings(c *gin.Context) {
	resource := c.Param("resource")

	doc, err := h.contentService.GetSettings(resource)
	if err != nil {
		h.respondContentError(c, "ContentHandler.GetSettings", err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// UpdateSettings shallow-merges the request body onto the stored document.
// The merged state either fully persists or nothing is written at all.
func (h *ContentHandler) UpdateSettings(c *gin.Context) {
	resource := c.Param("resource")

	var partial store.Document
	if err := c.ShouldBindJSON(&partial); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(400, "Bad Request", "Request body must be a JSON object"))
		return
	}
	if len(partial) == 0 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(400, "Bad Request", "Request body must not be empty"))
		return
	}

	merged, err := h.contentService.UpdateSettings(resource, partial)
	if err != nil {
		h.respondContentError(c, "ContentHandler.UpdateSettings", err)
		return
	}
	c.JSON(http.StatusOK, merged)
}

func (h *ContentHandler) respondContentError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, constants.ErrUnknownResource), errors.Is(err, constants.ErrInvalidResource):
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(404, "Not Found", "Unknown content resource"))
	case errors.Is(err, constants.ErrCorruptData):
		utils.LogError(op, err)
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(500, "Internal Server Error", "Stored document is corrupted"))
	default:
		utils.LogError(op, err)
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(500, "Internal Server Error", "Content operation failed"))
	}
}
