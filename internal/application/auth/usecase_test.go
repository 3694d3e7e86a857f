package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cafe-pos-api/internal/application/auth"
	"github.com/jhoicas/cafe-pos-api/internal/application/dto"
	"github.com/jhoicas/cafe-pos-api/internal/domain"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	"github.com/jhoicas/cafe-pos-api/internal/infrastructure/memory"
)

func TestLogin_PorPIN(t *testing.T) {
	st := memory.NewStore()
	require.NoError(t, memory.NewUserRepo(st).Create(&entity.User{
		ID: "user-1", Name: "Admin", Role: entity.RoleAdmin, AccessCode: "111111",
	}))
	uc := auth.NewAuthUseCase(memory.NewUserRepo(st))

	out, err := uc.Login(dto.LoginRequest{AccessCode: "111111"})
	require.NoError(t, err)
	assert.Equal(t, "user-1", out.ID)
	assert.Equal(t, entity.RoleAdmin, out.Role)

	_, err = uc.Login(dto.LoginRequest{AccessCode: "999999"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "un PIN desconocido no identifica a nadie")

	_, err = uc.Login(dto.LoginRequest{AccessCode: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el PIN vacío ni siquiera se busca")
}
