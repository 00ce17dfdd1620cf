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

// LLMHandler serves the admin LLM proxy routes
type LLMHandler struct {
	llmService *service.LLMService
}

func NewLLMHandler(llmService *service.LLMService) *LLMHandler {
	return &LLMHandler{llmService: llmService}
}

func (h *LLMHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/llm/translate", h.Translate)
	r.POST("/llm/analyze", h.Analyze)
}

func (h *LLMHandler) Translate(c *gin.Context) {
	var req dto.TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(400, "Bad Request", "Invalid request body"))
		return
	}

	translation, err := h.llmService.Translate(c.Request.Context(), req.Text, req.TargetLocale)
	if err != nil {
		h.respondLLMError(c, "LLMHandler.Translate", err)
		return
	}
	c.JSON(http.StatusOK, dto.TranslateResponse{Translation: translation})
}

func (h *LLMHandler) Analyze(c *gin.Context) {
	var req dto.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(400, "Bad Request", "Invalid request body"))
		return
	}

	report, err := h.llmService.Analyze(c.Request.Context(), req.Text)
	if err != nil {
		h.respondLLMError(c, "LLMHandler.Analyze", err)
		return
	}
	c.JSON(http.StatusOK, dto.AnalyzeResponse{Report: report})
}

func (h *LLMHandler) respondLLMError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, constants.ErrValidation), errors.Is(err, constants.ErrInvalidLocale):
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(400, "Bad Request", err.Error()))
	case errors.Is(err, constants.ErrNotConfigured):
		c.JSON(http.StatusServiceUnavailable, utils.NewErrorResponse(503, "Service Unavailable", "LLM integration is not configured"))
	case errors.Is(err, constants.ErrUpstream):
		utils.LogError(op, err)
		c.JSON(http.StatusBadGateway, utils.NewErrorResponse(502, "Bad Gateway", "LLM upstream request failed"))
	default:
		utils.LogError(op, err)
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(500, "Internal Server Error", "LLM operation failed"))
	}
}
