package jwt

import (
	"errors"
	"time"

	"go-poultrigo/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("missing session token")
)

// SessionTTL is how long a session token stays valid.
const SessionTTL = 24 * time.Hour

// Claims carried in the session cookie
type Claims struct {
	UserID uuid.UUID  `json:"user_id"`
	Email  string     `json:"email"`
	Name   string     `json:"name"`
	Role   model.Role `json:"role"`
	jwt.RegisteredClaims
}

var secretKey = []byte("dev-secret-key")

// SetSecret installs the signing key. Called once at boot from config; a
// blank secret keeps the dev default.
func SetSecret(secret string) {
	if secret != "" {
		secretKey = []byte(secret)
	}
}

// GetSecretKey returns the current session signing key.
func GetSecretKey() []byte {
	return secretKey
}

// GenerateToken creates a new session token for a user
func GenerateToken(userID uuid.UUID, email, name string, role model.Role) (string, error) {
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Name:   name,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "go-poultrigo",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(GetSecretKey())
}

// ValidateToken parses and validates a session token
func ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return GetSecretKey(), nil
	})

	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		if !claims.Role.Valid() {
			return nil, ErrInvalidToken
		}
		return claims, nil
	}

	return nil, ErrInvalidToken
}
