package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cafe-pos-api/internal/application/dto"
	"github.com/jhoicas/cafe-pos-api/internal/application/usecase"
	"github.com/jhoicas/cafe-pos-api/internal/domain"
	"github.com/jhoicas/cafe-pos-api/internal/infrastructure/memory"
)

func newCustomerUC(t *testing.T) *usecase.CustomerUseCase {
	t.Helper()
	st := memory.NewStore()
	uc := usecase.NewCustomerUseCase(memory.NewCustomerRepo(st))
	for _, in := range []dto.CreateCustomerRequest{
		{Name: "John Doe", Phone: "555-1234"},
		{Name: "Jane Smith", Phone: "555-5678"},
		{Name: "Pedro Pérez", Phone: "600-0001"},
	} {
		_, err := uc.Create(in)
		require.NoError(t, err)
	}
	return uc
}

func TestCustomerUseCase_CreaConCeroPuntos(t *testing.T) {
	uc := newCustomerUC(t)

	out, err := uc.Create(dto.CreateCustomerRequest{Name: "Ana", Phone: "700-9999"})
	require.NoError(t, err)
	assert.Zero(t, out.LoyaltyPoints, "un cliente nuevo siempre arranca sin puntos")

	_, err = uc.Create(dto.CreateCustomerRequest{Name: "", Phone: "700-0000"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(dto.CreateCustomerRequest{Name: "Sin Teléfono", Phone: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCustomerUseCase_BuscaPorNombreOTelefono(t *testing.T) {
	uc := newCustomerUC(t)

	out, err := uc.Search("doe", 20, 0)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "John Doe", out[0].Name)

	out, err = uc.Search("555", 20, 0)
	require.NoError(t, err)
	assert.Len(t, out, 2, "ambos clientes con prefijo 555 en el teléfono")

	out, err = uc.Search("", 20, 0)
	require.NoError(t, err)
	assert.Len(t, out, 3, "consulta vacía equivale a listar")

	out, err = uc.Search("nadie", 20, 0)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCustomerUseCase_NoPermiteSaldoNegativo(t *testing.T) {
	uc := newCustomerUC(t)
	created, err := uc.Create(dto.CreateCustomerRequest{Name: "Ana", Phone: "700-9999"})
	require.NoError(t, err)

	neg := int64(-5)
	_, err = uc.Update(created.ID, dto.UpdateCustomerRequest{LoyaltyPoints: &neg})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	pts := int64(40)
	out, err := uc.Update(created.ID, dto.UpdateCustomerRequest{LoyaltyPoints: &pts})
	require.NoError(t, err)
	assert.EqualValues(t, 40, out.LoyaltyPoints)
}
