package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cafe-pos-api/internal/application/dto"
	"github.com/jhoicas/cafe-pos-api/internal/application/usecase"
	"github.com/jhoicas/cafe-pos-api/internal/domain"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	"github.com/jhoicas/cafe-pos-api/internal/infrastructure/memory"
)

func newUserUC(t *testing.T) (*memory.Store, *usecase.UserUseCase) {
	t.Helper()
	st := memory.NewStore()
	require.NoError(t, memory.NewUserRepo(st).Create(&entity.User{
		ID: "admin-1", Name: "Admin", Role: entity.RoleAdmin, AccessCode: "111111",
	}))
	return st, usecase.NewUserUseCase(memory.NewUserRepo(st))
}

func strPtr(s string) *string { return &s }

func TestUserCreate_ValidaPIN(t *testing.T) {
	_, uc := newUserUC(t)

	casos := []string{"", "123", "1234567", "12a4", "12 34"}
	for _, pin := range casos {
		_, err := uc.Create(dto.CreateUserRequest{Name: "X", Role: entity.RoleWorker, AccessCode: pin})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "PIN %q debe rechazarse", pin)
	}

	out, err := uc.Create(dto.CreateUserRequest{Name: "Jessica", Role: entity.RoleWorker, AccessCode: "2222"})
	require.NoError(t, err, "un PIN de 4 dígitos es válido")
	assert.Equal(t, entity.RoleWorker, out.Role)
}

func TestUserCreate_PINDuplicado(t *testing.T) {
	_, uc := newUserUC(t)

	_, err := uc.Create(dto.CreateUserRequest{Name: "Otro", Role: entity.RoleWorker, AccessCode: "111111"})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "dos operadores con el mismo PIN harían ambiguo el login")
}

func TestUserUpdate_NoDegradaAlUltimoAdmin(t *testing.T) {
	_, uc := newUserUC(t)

	_, err := uc.Update("admin-1", dto.UpdateUserRequest{Role: strPtr(entity.RoleWorker)})
	assert.ErrorIs(t, err, domain.ErrLastAdmin)
}

func TestUserDelete_ProtegeAlUltimoAdmin(t *testing.T) {
	_, uc := newUserUC(t)

	err := uc.Delete("admin-1")
	assert.ErrorIs(t, err, domain.ErrLastAdmin)

	// Con un segundo admin sí se permite.
	_, err = uc.Create(dto.CreateUserRequest{Name: "Admin 2", Role: entity.RoleAdmin, AccessCode: "333333"})
	require.NoError(t, err)
	assert.NoError(t, uc.Delete("admin-1"))
}
