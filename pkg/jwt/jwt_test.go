package jwt

import (
	"testing"
	"time"

	"go-poultrigo/internal/model"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	userID := uuid.New()
	token, err := GenerateToken(userID, "op@example.com", "Operator Satu", model.RoleOperator)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "op@example.com", claims.Email)
	assert.Equal(t, "Operator Satu", claims.Name)
	assert.Equal(t, model.RoleOperator, claims.Role)
	assert.Equal(t, "go-poultrigo", claims.Issuer)
}

func TestValidateExpiredToken(t *testing.T) {
	claims := &Claims{
		UserID: uuid.New(),
		Email:  "old@example.com",
		Role:   model.RoleGuest,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now().Add(-25 * time.Hour)),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString(GetSecretKey())
	require.NoError(t, err)

	_, err = ValidateToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTamperedToken(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "a@b.c", "A", model.RoleGuest)
	require.NoError(t, err)

	// Flip the last signature byte
	tampered := token[:len(token)-1]
	if token[len(token)-1] == 'A' {
		tampered += "B"
	} else {
		tampered += "A"
	}

	_, err = ValidateToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateWrongSecret(t *testing.T) {
	claims := &Claims{
		UserID: uuid.New(),
		Role:   model.RoleAdmin,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("kunci-lain"))
	require.NoError(t, err)

	_, err = ValidateToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsUnknownRole(t *testing.T) {
	claims := &Claims{
		UserID: uuid.New(),
		Email:  "x@example.com",
		Role:   model.Role("superuser"),
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString(GetSecretKey())
	require.NoError(t, err)

	_, err = ValidateToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSetSecretRotatesKey(t *testing.T) {
	oldToken, err := GenerateToken(uuid.New(), "a@b.c", "A", model.RoleGuest)
	require.NoError(t, err)

	SetSecret("kunci-produksi")
	defer SetSecret("dev-secret-key")

	// Tokens minted under the old key no longer verify
	_, err = ValidateToken(oldToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	newToken, err := GenerateToken(uuid.New(), "a@b.c", "A", model.RoleGuest)
	require.NoError(t, err)
	_, err = ValidateToken(newToken)
	assert.NoError(t, err)

	// Blank keeps the current key
	SetSecret("")
	_, err = ValidateToken(newToken)
	assert.NoError(t, err)
}
