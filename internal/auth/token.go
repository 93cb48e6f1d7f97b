package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carries the registered claims plus the sole subject claim.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// TokenService issues and verifies signed, time-limited identity
// tokens. The secret is process-wide configuration; it is validated at
// startup, not per request.
type TokenService struct {
	Secret []byte
	TTL    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{Secret: []byte(secret), TTL: ttl}
}

// Issue signs a token whose payload is the subject identifier and an
// expiry, nothing else.
func (s *TokenService) Issue(subjectID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.TTL)),
		},
		UserID: subjectID,
	})
	return token.SignedString(s.Secret)
}

// Verify returns the subject identifier, or ErrInvalidToken when the
// signature does not check out or the token is expired.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.Secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}
