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

package middleware

import (
	"errors"
	"net/http"

	"campus-api/internal/auth"
	"campus-api/internal/constants"

	"github.com/gin-gonic/gin"
)

// SessionVerifier verifies a session token carried by a request.
type SessionVerifier interface {
	Verify(token string) (*auth.Session, error)
}

const sessionContextKey = "admin_session"

// SessionAuth creates a middleware that gates admin routes on a valid session
// cookie. A missing, invalid or expired session aborts the request with a
// terminal 401; the route handler is never reached and storage is not touched.
func SessionAuth(verifier SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Request.Cookie(constants.SessionCookieName)
		if err != nil || cookie.Value == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
			c.Abort()
			return
		}

		session, err := verifier.Verify(cookie.Value)
		if err != nil {
			message := "Invalid session"
			if errors.Is(err, constants.ErrTokenExpired) {
				message = "Session expired"
			}
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": message,
			})
			c.Abort()
			return
		}

		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// GetSessionFromContext extracts the verified session from the Gin context
func GetSessionFromContext(c *gin.Context) (*auth.Session, bool) {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return nil, false
	}
	session, ok := value.(*auth.Session)
	return session, ok
}
