package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tokens expire 24 hours after issue, measured from the embedded
// issued-at timestamp.
const tokenLifetime = 24 * time.Hour

type TokenClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func getJWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "projecttracker-secret-key" // Default for development
	}
	return []byte(secret)
}

// GenerateToken issues a signed session token for username.
func GenerateToken(username string) (string, error) {
	return generateTokenAt(username, time.Now())
}

func generateTokenAt(username string, now time.Time) (string, error) {
	claims := TokenClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "projecttracker",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getJWTSecret())
}

// ValidateToken checks signature and expiry and returns the claims.
func ValidateToken(tokenString string) (*TokenClaims, error) {
	return validateTokenAt(tokenString, time.Now)
}

func validateTokenAt(tokenString string, now func() time.Time) (*TokenClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(now),
	)

	token, err := parser.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		return getJWTSecret(), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*TokenClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}
