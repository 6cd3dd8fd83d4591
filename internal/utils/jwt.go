package utils

import (
	"errors"
	"strconv"
	"time"

	"bankee/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

// GenerateTokens signs an access token and a refresh token for the given
// claims. The secret is injected by the caller; nothing here reads the
// environment.
func GenerateTokens(claims *models.UserClaims, secret string) (accessToken, refreshToken string, err error) {
	if secret == "" {
		return "", "", errors.New("jwt secret not configured")
	}

	now := time.Now()
	base := jwt.RegisteredClaims{
		IssuedAt: jwt.NewNumericDate(now),
		Issuer:   "bankee-api",
		Subject:  strconv.FormatUint(uint64(claims.UserID), 10),
	}

	accessClaims := models.UserClaims{
		RegisteredClaims: base,
		UserID:           claims.UserID,
		Email:            claims.Email,
		TokenVersion:     claims.TokenVersion,
	}
	accessClaims.ExpiresAt = jwt.NewNumericDate(now.Add(accessTokenTTL))
	accessToken, err = jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(secret))
	if err != nil {
		return "", "", err
	}

	refreshClaims := models.UserClaims{
		RegisteredClaims: base,
		UserID:           claims.UserID,
		Email:            claims.Email,
		TokenVersion:     claims.TokenVersion,
	}
	refreshClaims.ExpiresAt = jwt.NewNumericDate(now.Add(refreshTokenTTL))
	refreshToken, err = jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(secret))
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ParseToken parses and validates a JWT token string.
func ParseToken(tokenStr, secret string) (*models.UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &models.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*models.UserClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
