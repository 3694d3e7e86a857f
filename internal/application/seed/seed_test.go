package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cafe-pos-api/internal/application/seed"
	"github.com/jhoicas/cafe-pos-api/internal/infrastructure/memory"
)

func TestSeed_SiembraUnaSolaVez(t *testing.T) {
	st := memory.NewStore()
	uc := seed.New(
		memory.NewUserRepo(st),
		memory.NewCategoryRepo(st),
		memory.NewProductRepo(st),
		memory.NewCustomerRepo(st),
		memory.NewFlagRepo(st),
	)

	seeded, err := uc.Run()
	require.NoError(t, err)
	assert.True(t, seeded)

	users, err := memory.NewUserRepo(st).List(50, 0)
	require.NoError(t, err)
	assert.Len(t, users, 2, "Admin y Jessica")

	categories, err := memory.NewCategoryRepo(st).List(50, 0)
	require.NoError(t, err)
	assert.Len(t, categories, 4)

	products, err := memory.NewProductRepo(st).List(50, 0)
	require.NoError(t, err)
	assert.Len(t, products, 8)

	customers, err := memory.NewCustomerRepo(st).List(50, 0)
	require.NoError(t, err)
	assert.Len(t, customers, 2)

	// El login de demostración debe funcionar con los PIN sembrados.
	admin, err := memory.NewUserRepo(st).GetByAccessCode("111111")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, "admin", admin.Role)

	// Idempotencia: una segunda corrida no duplica nada.
	seeded, err = uc.Run()
	require.NoError(t, err)
	assert.False(t, seeded)

	products, err = memory.NewProductRepo(st).List(50, 0)
	require.NoError(t, err)
	assert.Len(t, products, 8)
}
