package service

import (
	"testing"
	"time"

	"comanda/internal/config"
	"comanda/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testTokenService(secret string) *TokenService {
	cfg := config.New()
	cfg.Auth.Secret = secret
	return NewTokenService(cfg)
}

func TestTokenRoundTrip(t *testing.T) {
	tokens := testTokenService("test-secret")
	user := &model.User{
		ID:    primitive.NewObjectID(),
		Email: "chef@example.com",
		Role:  model.NewRole(model.RoleChef),
	}

	token, err := tokens.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	ident, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), ident.UserID)
	assert.Equal(t, user.Email, ident.Email)
	assert.Equal(t, model.RoleChef, ident.Role)
	assert.False(t, ident.IsAdmin())
}

func TestTokenCarriesRoleAtIssueTime(t *testing.T) {
	tokens := testTokenService("test-secret")
	user := &model.User{
		ID:    primitive.NewObjectID(),
		Email: "boss@example.com",
		Role:  model.NewRole(model.RoleAdmin),
	}

	token, err := tokens.Issue(user)
	require.NoError(t, err)

	// A later role edit does not affect an already issued token.
	user.Role = model.NewRole(model.RoleWaiter)

	ident, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.True(t, ident.IsAdmin())
}

func TestTokenExpired(t *testing.T) {
	tokens := testTokenService("test-secret")

	claims := Claims{
		UserID: primitive.NewObjectID().Hex(),
		Role:   model.NewRole(model.RoleWaiter),
		Email:  "late@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tokens.secret)
	require.NoError(t, err)

	_, err = tokens.Verify(expired)
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := testTokenService("one-secret")
	verifier := testTokenService("another-secret")
	user := &model.User{ID: primitive.NewObjectID(), Email: "x@example.com", Role: model.NewRole(model.RoleWaiter)}

	token, err := issuer.Issue(user)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	tokens := testTokenService("test-secret")

	_, err := tokens.Verify("not.a.token")
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}
