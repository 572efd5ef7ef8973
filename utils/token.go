package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type SignedDetails struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// SignedToken issues an HS256 token carrying the user id, valid for expiry.
func SignedToken(userID, secret string, expiry time.Duration) (string, error) {
	claims := &SignedDetails{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "gingallery",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.New("error signing token")
	}
	return signedToken, nil
}

// ParseToken validates signature and expiry and returns the claims.
func ParseToken(tokenString, secret string) (*SignedDetails, error) {
	claims := &SignedDetails{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
