// Package auth implements session-token issuance and verification. Tokens
// are stateless JWTs signed with a server-held secret: validity is decided
// entirely by signature and expiry, there is no server-side session table.
// Callers that later need revocation can insert a check between
// GetAccountIDFromToken and use of the returned identifier without touching
// this package.
package auth

import (
	"errors"
	"time"

	"github.com/amankou/farmauth/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims combines the registered claims with the owning account's opaque
// identifier. The password hash never enters the token.
type Claims struct {
	jwt.RegisteredClaims
	AccountID string
}

// GenerateToken signs a session token for accountID, valid for
// validityDuration from now. The secret is injected by the caller; this
// package never reads ambient configuration.
func GenerateToken(accountID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		AccountID: accountID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetAccountIDFromToken verifies signature and expiry and returns the
// embedded account identifier. Expired tokens yield common.ErrTokenExpired;
// malformed tokens and bad signatures yield common.ErrInvalidToken.
func GetAccountIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.AccountID, nil
}
