package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cafe-pos-api/internal/application/usecase"
	"github.com/jhoicas/cafe-pos-api/internal/domain"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	"github.com/jhoicas/cafe-pos-api/internal/infrastructure/memory"
)

func TestCategoryDelete_BloqueadaConProductos(t *testing.T) {
	st := memory.NewStore()
	now := time.Now()
	require.NoError(t, memory.NewCategoryRepo(st).Create(&entity.Category{
		ID: "cat-1", Name: "Coffee", CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, memory.NewProductRepo(st).Create(&entity.Product{
		ID: "prod-1", Name: "Espresso", Price: decimal.RequireFromString("10.00"),
		Stock: 5, CategoryID: "cat-1", CreatedAt: now, UpdatedAt: now,
	}))

	uc := usecase.NewCategoryUseCase(memory.NewCategoryRepo(st), memory.NewProductRepo(st))

	err := uc.Delete("cat-1")
	assert.ErrorIs(t, err, domain.ErrCategoryInUse)

	// Sin productos la eliminación procede.
	require.NoError(t, memory.NewProductRepo(st).Delete("prod-1"))
	assert.NoError(t, uc.Delete("cat-1"))

	err = uc.Delete("cat-1")
	assert.ErrorIs(t, err, domain.ErrNotFound, "ya no existe")
}
