package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "safeher"

// Sessions last exactly one hour. There is no refresh mechanism; the app
// re-authenticates when a token expires.
const tokenLifetime = time.Hour

type Claims struct {
	UserID      string `json:"userId"`
	PhoneNumber string `json:"phoneNumber"`
	jwt.RegisteredClaims
}

// TokenService signs and validates session tokens with a process-wide secret
// injected at startup.
type TokenService struct {
	secret   []byte
	lifetime time.Duration
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secret:   []byte(secret),
		lifetime: tokenLifetime,
	}
}

func (s *TokenService) Generate(phoneNumber string) (string, error) {
	now := time.Now()

	claims := &Claims{
		UserID:      phoneNumber,
		PhoneNumber: phoneNumber,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   phoneNumber,
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate checks signature, expiry and issuer. Callers get a single opaque
// failure; the HTTP boundary renders every variant as 401.
func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if claims.Issuer != issuer {
		return nil, fmt.Errorf("invalid issuer")
	}

	if claims.PhoneNumber == "" || claims.Subject != claims.PhoneNumber {
		return nil, fmt.Errorf("subject mismatch")
	}

	return claims, nil
}
