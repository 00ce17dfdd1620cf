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
	"campus-api/internal/utils"

	"github.com/gin-gonic/gin"
)

// TranslationHandler serves dotted-path subtree reads and writes over the
// per-locale translation catalogs. The path query parameter addresses the
// subtree, e.g. ?path=academics.bachelor; an empty path means the whole
// catalog.
type TranslationHandler struct {
	translationService *service.TranslationService
}

func NewTranslationHandler(translationService *service.TranslationService) *TranslationHandler {
	return &TranslationHandler{translationService: translationService}
}

func (h *TranslationHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/translations/:locale", h.GetSubtree)
	r.PUT("/translations/:locale", h.PutSubtree)
}

func (h *TranslationHandler) GetSubtree(c *gin.Context) {
	locale := c.Param("locale")
	path := c.Query("path")

	subtree, err := h.translationService.GetSubtree(locale, path)
	if err != nil {
		h.respondTranslationError(c, "TranslationHandler.GetSubtree", err)
		return
	}
	c.JSON(http.StatusOK, subtree)
}

func (h *TranslationHandler) PutSubtree(c *gin.Context) {
	locale := c.Param("locale")
	path := c.Query("path")

	var value any
	if err := c.ShouldBindJSON(&value); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(400, "Bad Request", "Request body must be valid JSON"))
		return
	}

	if err := h.translationService.PutSubtree(locale, path, value); err != nil {
		h.respondTranslationError(c, "TranslationHandler.PutSubtree", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"locale": locale,
		"path":   path,
		"value":  value,
	})
}

func (h *TranslationHandler) respondTranslationError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, constants.ErrInvalidLocale):
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(404, "Not Found", "Unsupported locale"))
	case errors.Is(err, constants.ErrInvalidSubtreePath):
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(400, "Bad Request", "Invalid dotted path"))
	case errors.Is(err, constants.ErrCorruptData):
		utils.LogError(op, err)
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(500, "Internal Server Error", "Stored catalog is corrupted"))
	default:
		utils.LogError(op, err)
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(500, "Internal Server Error", "Translation operation failed"))
	}
}
