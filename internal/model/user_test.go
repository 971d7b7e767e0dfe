package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPassword(t *testing.T) {
	user := &User{Email: "a@b.c"}
	require.NoError(t, user.SetPassword("rahasia123"))

	// Stored value is a hash, not the plaintext
	assert.NotEqual(t, "rahasia123", user.Password)
	assert.True(t, user.CheckPassword("rahasia123"))
	assert.False(t, user.CheckPassword("salah"))
	assert.False(t, user.CheckPassword(""))
}

func TestUserToResponseHidesPassword(t *testing.T) {
	user := &User{Name: "Budi", Email: "budi@example.com", Role: RoleOperator}
	require.NoError(t, user.SetPassword("pw123456"))

	resp := user.ToResponse()
	assert.Equal(t, "Budi", resp.Name)
	assert.Equal(t, "budi@example.com", resp.Email)
	assert.Equal(t, RoleOperator, resp.Role)
}
