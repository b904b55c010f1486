package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/inventario-api/internal/domain/entity"
)

func TestNewUser_RolPorDefectoEsAdmin(t *testing.T) {
	u := entity.NewUser("Ana", "ana@example.com", "hash", nil)
	assert.Equal(t, []string{entity.RoleAdmin}, u.Roles)
	assert.True(t, u.HasRole(entity.RoleAdmin))
	assert.False(t, u.HasRole(entity.RoleUser))
}

func TestNewUser_RolesExplicitos(t *testing.T) {
	u := entity.NewUser("Ana", "ana@example.com", "hash", []string{entity.RoleUser})
	assert.Equal(t, []string{entity.RoleUser}, u.Roles)
}

func TestRolesString_IdaYVuelta(t *testing.T) {
	u := &entity.User{Roles: []string{"ADMIN", "USER"}}
	assert.Equal(t, "ADMIN,USER", u.RolesString())

	var otro entity.User
	otro.SetRolesString("ADMIN,USER")
	assert.Equal(t, []string{"ADMIN", "USER"}, otro.Roles)

	otro.SetRolesString("")
	assert.Nil(t, otro.Roles)
}
