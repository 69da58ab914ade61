package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenData is the identity payload carried by an issued bearer token.
type TokenData struct {
	UserID   int
	Username string
}

type sessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// IssueToken signs a bearer token carrying the user id as subject.
func IssueToken(userID int, username string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &sessionClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    "schedulr",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseTokenData validates a bearer token and extracts the session identity.
func ParseTokenData(tokenString string, secret []byte) (*TokenData, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	userID, err := strconv.Atoi(claims.Subject)
	if err != nil || userID < 1 {
		return nil, errors.New("invalid token subject")
	}
	return &TokenData{UserID: userID, Username: claims.Username}, nil
}
