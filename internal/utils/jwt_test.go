// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/MKhiriev/billable-hours/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer = "billable-hours"
	testKey    = "secret-key"
)

var testUser = models.User{ID: 7, Username: "alice", IsAdmin: true}

func TestGenerateSessionToken_RoundTrip(t *testing.T) {
	token, err := GenerateSessionToken(testIssuer, testUser, time.Hour, testKey)
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, token.SignedString, token.String())
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, 5*time.Second)

	session, err := ParseSessionToken(token.SignedString, testKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, int64(7), session.UserID)
	assert.Equal(t, "alice", session.Username)
	assert.True(t, session.IsAdmin)
	assert.WithinDuration(t, token.ExpiresAt, session.ExpiresAt, time.Second)
}

func TestGenerateSessionToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		user     models.User
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", testUser, time.Hour, testKey},
		{"zero duration", testIssuer, testUser, 0, testKey},
		{"negative duration", testIssuer, testUser, -time.Minute, testKey},
		{"empty key", testIssuer, testUser, time.Hour, ""},
		{"anonymous user", testIssuer, models.User{}, time.Hour, testKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateSessionToken(tt.issuer, tt.user, tt.duration, tt.key)
			assert.ErrorIs(t, err, ErrInvalidTokenParams)
		})
	}
}

func TestParseSessionToken_Rejects(t *testing.T) {
	valid, err := GenerateSessionToken(testIssuer, testUser, time.Hour, testKey)
	require.NoError(t, err)

	t.Run("wrong key", func(t *testing.T) {
		_, err := ParseSessionToken(valid.SignedString, "other", testIssuer)
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		_, err := ParseSessionToken(valid.SignedString, testKey, "someone-else")
		assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseSessionToken("not.a.token", testKey, testIssuer)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		claims := &models.SessionClaims{RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   "7",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		}}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testKey))
		require.NoError(t, err)

		_, err = ParseSessionToken(signed, testKey, testIssuer)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("non numeric subject", func(t *testing.T) {
		claims := &models.SessionClaims{RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		}}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testKey))
		require.NoError(t, err)

		_, err = ParseSessionToken(signed, testKey, testIssuer)
		assert.ErrorIs(t, err, ErrInvalidSubject)
	})
}
