// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/billable-hours/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidTokenParams = errors.New("invalid params for generating session token")
	ErrInvalidSubject     = errors.New("session token has no valid subject")
)

// GenerateSessionToken signs an HMAC-SHA256 JWT for user.
//
// The registered claims carry the issuer, the user ID as subject, the issue
// time and the expiry. Username and admin flag travel as private claims so
// that the session can be rebuilt without a database lookup.
func GenerateSessionToken(issuer string, user models.User, duration time.Duration, signKey string) (models.SessionToken, error) {
	if issuer == "" || duration <= 0 || signKey == "" || user.ID <= 0 {
		return models.SessionToken{}, ErrInvalidTokenParams
	}

	now := time.Now()
	expiresAt := now.Add(duration)
	claims := &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(user.ID, 10),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.SessionToken{SignedString: signed, ExpiresAt: expiresAt}, nil
}

// ParseSessionToken verifies signature, issuer and expiry of tokenString
// and converts its claims into a typed [models.Session].
func ParseSessionToken(tokenString, signKey, issuer string) (models.Session, error) {
	claims := &models.SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred validating and parsing session token: %w", err)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return models.Session{}, ErrInvalidSubject
	}

	return models.Session{
		UserID:    userID,
		Username:  claims.Username,
		IsAdmin:   claims.IsAdmin,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
