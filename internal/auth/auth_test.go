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

package auth

import (
	"testing"
	"time"

	"campus-api/internal/constants"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthenticator(ttl time.Duration) *Authenticator {
	return NewAuthenticator(Config{
		Password: "correct-horse",
		Secret:   []byte("test-signing-secret"),
		TTL:      ttl,
	})
}

func TestIssueAndVerifyRoundtrip(t *testing.T) {
	a := newTestAuthenticator(8 * time.Hour)

	token, err := a.Issue("correct-horse")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	session, err := a.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, constants.SessionRoleAdmin, session.Role)
	assert.WithinDuration(t, time.Now().Add(8*time.Hour), session.ExpiresAt, time.Minute)
}

func TestIssueRejectsWrongPassword(t *testing.T) {
	a := newTestAuthenticator(8 * time.Hour)

	tests := []struct {
		name     string
		password string
	}{
		{name: "wrong password", password: "incorrect"},
		{name: "empty password", password: ""},
		{name: "prefix of real password", password: "correct"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := a.Issue(tt.password)
			assert.ErrorIs(t, err, constants.ErrInvalidCredentials)
			assert.Empty(t, token)
		})
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	a := newTestAuthenticator(-time.Minute)

	token, err := a.Issue("correct-horse")
	require.NoError(t, err)

	_, err = a.Verify(token)
	assert.ErrorIs(t, err, constants.ErrTokenExpired)
}

func TestVerifyTokenSignedWithDifferentSecret(t *testing.T) {
	a := newTestAuthenticator(time.Hour)
	other := NewAuthenticator(Config{
		Password: "correct-horse",
		Secret:   []byte("some-other-secret"),
		TTL:      time.Hour,
	})

	token, err := other.Issue("correct-horse")
	require.NoError(t, err)

	_, err = a.Verify(token)
	assert.ErrorIs(t, err, constants.ErrInvalidSignature)
}

func TestVerifyTokenWithoutTimeClaims(t *testing.T) {
	a := newTestAuthenticator(time.Hour)

	// Correctly signed, admin role, but no iat/exp claims.
	bare := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{Role: constants.SessionRoleAdmin})
	signed, err := bare.SignedString([]byte("test-signing-secret"))
	require.NoError(t, err)

	_, err = a.Verify(signed)
	assert.ErrorIs(t, err, constants.ErrInvalidToken)
}

func TestVerifyGarbageToken(t *testing.T) {
	a := newTestAuthenticator(time.Hour)

	_, err := a.Verify("not.a.token")
	assert.ErrorIs(t, err, constants.ErrInvalidToken)
}

func TestIssueWithBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hashed-secret"), bcrypt.MinCost)
	require.NoError(t, err)

	a := NewAuthenticator(Config{
		PasswordHash: string(hash),
		Secret:       []byte("test-signing-secret"),
		TTL:          time.Hour,
	})

	_, err = a.Issue("hashed-secret")
	assert.NoError(t, err)

	_, err = a.Issue("wrong")
	assert.ErrorIs(t, err, constants.ErrInvalidCredentials)
}
