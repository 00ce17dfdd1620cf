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

// Package auth issues and verifies the signed, time-limited admin session
// token that gates every admin API operation. Sessions are stateless: the
// token is the only proof, nothing is persisted server-side and there is no
// revocation list. A still-valid token replayed after logout remains
// cryptographically valid; that is an accepted limitation of the design.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"campus-api/internal/constants"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Session is the decoded proof of an authenticated administrator.
type Session struct {
	Role      string    `json:"role"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// sessionClaims is the JWT claims structure carried by the session cookie
type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Config holds the credentials and token parameters for the authenticator.
type Config struct {
	// Password is the plain admin password, compared in constant time.
	Password string
	// PasswordHash is a bcrypt digest; takes precedence over Password when set.
	PasswordHash string
	// Secret signs the session token (HS256).
	Secret []byte
	// TTL is the session lifetime.
	TTL time.Duration
}

// Authenticator issues and verifies admin session tokens.
type Authenticator struct {
	cfg Config
}

func NewAuthenticator(cfg Config) *Authenticator {
	return &Authenticator{cfg: cfg}
}

// TTL returns the configured session lifetime.
func (a *Authenticator) TTL() time.Duration {
	return a.cfg.TTL
}

// Issue compares the caller-supplied password against the configured secret
// and, on match, returns a signed token embedding the issue time, an expiry
// at the configured offset and the admin role marker. On mismatch it fails
// with ErrInvalidCredentials and no token is produced.
//
// The comparison is constant-time in both forms: subtle.ConstantTimeCompare
// for the plain secret, bcrypt for the hashed one.
func (a *Authenticator) Issue(password string) (string, error) {
	if !a.checkPassword(password) {
		return "", constants.ErrInvalidCredentials
	}

	now := time.Now()
	claims := sessionClaims{
		Role: constants.SessionRoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.cfg.TTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.cfg.Secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Verify parses the token, checks signature and expiry, and returns the
// decoded session. Expired tokens fail with ErrTokenExpired even when the
// signature is valid; tampered tokens fail with ErrInvalidSignature.
func (a *Authenticator) Verify(tokenString string) (*Session, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.cfg.Secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, constants.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, constants.ErrInvalidSignature
		default:
			return nil, fmt.Errorf("%w: %v", constants.ErrInvalidToken, err)
		}
	}

	if !token.Valid || claims.Role != constants.SessionRoleAdmin {
		return nil, constants.ErrInvalidToken
	}
	// A correctly signed token may still omit the time claims.
	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return nil, constants.ErrInvalidToken
	}

	return &Session{
		Role:      claims.Role,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (a *Authenticator) checkPassword(password string) bool {
	if a.cfg.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(a.cfg.PasswordHash), []byte(password)) == nil
	}
	if a.cfg.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a.cfg.Password), []byte(password)) == 1
}
