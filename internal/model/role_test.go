package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"guest", "operator", "admin"} {
		role, err := ParseRole(valid)
		require.NoError(t, err)
		assert.Equal(t, Role(valid), role)
		assert.True(t, role.Valid())
	}

	for _, invalid := range []string{"", "superadmin", "Admin", "GUEST", "root"} {
		_, err := ParseRole(invalid)
		assert.Error(t, err, "expected %q to be rejected", invalid)
		assert.False(t, Role(invalid).Valid())
	}
}

func TestRoleHomePath(t *testing.T) {
	assert.Equal(t, "/admin", RoleAdmin.HomePath())
	assert.Equal(t, "/operator", RoleOperator.HomePath())
	assert.Equal(t, "/guest", RoleGuest.HomePath())
}

func TestAllRolesCovered(t *testing.T) {
	assert.Len(t, AllRoles, 3)
	for _, r := range AllRoles {
		assert.True(t, r.Valid())
	}
}

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{OrderPending, OrderProcessing, OrderShipped, OrderCompleted, OrderCancelled} {
		assert.True(t, s.Valid())
	}
	assert.False(t, OrderStatus("delivered").Valid())
	assert.False(t, OrderStatus("").Valid())
	assert.False(t, OrderStatus("Pending").Valid())
}
