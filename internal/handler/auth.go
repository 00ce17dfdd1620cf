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

	"campus-api/internal/auth"
	"campus-api/internal/constants"
	"campus-api/internal/dto"
	"campus-api/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves the admin login, logout and session endpoints. These
// live outside the session-gated group: login must be reachable without a
// session, and the session probe reports "no session" instead of 401.
type AuthHandler struct {
	authn        *auth.Authenticator
	cookieSecure bool
}

func NewAuthHandler(authn *auth.Authenticator, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		authn:        authn,
		cookieSecure: cookieSecure,
	}
}

func (h *AuthHandler) RegisterRoutes(r *gin.Engine) {
	authGroup := r.Group("/api/admin/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.DELETE("/logout", h.Logout)
		authGroup.GET("/session", h.Session)
	}
}

// Login checks the password and sets the session cookie. The failure is
// terminal for the request; there is no lockout or backoff counter.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(400, "Bad Request", "Invalid request body"))
		return
	}
	if req.Password == "" {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(400, "Bad Request", "Password is required"))
		return
	}

	token, err := h.authn.Issue(req.Password)
	if err != nil {
		if errors.Is(err, constants.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(401, "Unauthorized", "Invalid credentials"))
			return
		}
		utils.LogError("AuthHandler.Login", err)
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(500, "Internal Server Error", "Failed to create session"))
		return
	}

	auth.SetSessionCookie(c.Writer, token, auth.CookieOptions{
		Secure: h.cookieSecure,
		MaxAge: h.authn.TTL(),
	})

	session, err := h.authn.Verify(token)
	if err != nil {
		utils.LogError("AuthHandler.Login", err)
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(500, "Internal Server Error", "Failed to create session"))
		return
	}

	c.JSON(http.StatusOK, dto.SessionResponse{
		Authenticated: true,
		Role:          session.Role,
		ExpiresAt:     &session.ExpiresAt,
	})
}

// Logout clears the session cookie. The server holds no revocation state; a
// replayed unexpired token remains cryptographically valid.
func (h *AuthHandler) Logout(c *gin.Context) {
	auth.ClearSessionCookie(c.Writer, auth.CookieOptions{Secure: h.cookieSecure})
	c.Status(http.StatusNoContent)
}

// Session reports the current session state without failing the request when
// no session is present.
func (h *AuthHandler) Session(c *gin.Context) {
	cookie, err := c.Request.Cookie(constants.SessionCookieName)
	if err != nil || cookie.Value == "" {
		c.JSON(http.StatusOK, dto.SessionResponse{Authenticated: false})
		return
	}

	session, err := h.authn.Verify(cookie.Value)
	if err != nil {
		c.JSON(http.StatusOK, dto.SessionResponse{Authenticated: false})
		return
	}

	c.JSON(http.StatusOK, dto.SessionResponse{
		Authenticated: true,
		Role:          session.Role,
		ExpiresAt:     &session.ExpiresAt,
	})
}
