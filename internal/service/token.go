package service

import (
	"fmt"
	"time"

	"comanda/internal/config"
	"comanda/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the identity facts embedded in an access token. Role travels
// inside the token so authorization never needs a second storage read; a
// role edit only takes effect once the old token expires.
type Claims struct {
	UserID string     `json:"userId"`
	Role   model.Role `json:"role"`
	Email  string     `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed access tokens
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a new token service
func NewTokenService(cfg *config.Config) *TokenService {
	ttlSeconds := cfg.Auth.TokenTTLSeconds
	if ttlSeconds <= 0 {
		ttlSeconds = config.DefaultTokenTTLSeconds
	}
	return &TokenService{
		secret: []byte(cfg.Auth.Secret),
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
}

// Issue produces a signed token for the given user.
func (s *TokenService) Issue(user *model.User) (string, error) {
	claims := Claims{
		UserID: user.ID.Hex(),
		Role:   user.Role,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks a token's signature and expiry and returns the identity it
// carries. Failures wrap model.ErrInvalidToken.
func (s *TokenService) Verify(tokenStr string) (model.Identity, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return model.Identity{}, fmt.Errorf("%w: %v", model.ErrInvalidToken, err)
	}
	if !token.Valid {
		return model.Identity{}, model.ErrInvalidToken
	}
	return model.Identity{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role.Role,
	}, nil
}
