package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-api/internal/application/dto"
	"github.com/tu-usuario/inventario-api/internal/application/usecase"
	"github.com/tu-usuario/inventario-api/internal/domain"
)

func newProductUC() (*usecase.ProductUseCase, *fakeProductRepo) {
	products := newFakeProductRepo()
	tx := &fakeTxRunner{products: products}
	return usecase.NewProductUseCase(products, tx), products
}

func TestProductCreate_ConCategorias(t *testing.T) {
	uc, repo := newProductUC()

	out, err := uc.Create(dto.CreateProductRequest{
		Code:        "SKU-001",
		Name:        "Teclado",
		Price:       decimal.NewFromInt(120),
		Quantity:    5,
		CategoryIDs: []int64{3, 7},
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "SKU-001", out.Code)
	assert.Equal(t, []int64{3, 7}, out.CategoryIDs,
		"las asociaciones se escriben en la misma transacción que el producto")
	assert.Equal(t, []int64{3, 7}, repo.categories[out.ID])
}

func TestProductCreate_CodigoDuplicado(t *testing.T) {
	uc, _ := newProductUC()

	_, err := uc.Create(dto.CreateProductRequest{Code: "SKU-001", Name: "Teclado", Price: decimal.NewFromInt(1), Quantity: 1})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateProductRequest{Code: "SKU-001", Name: "Otro", Price: decimal.NewFromInt(2), Quantity: 2})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductUpdate_ReemplazaCategorias(t *testing.T) {
	uc, repo := newProductUC()

	created, err := uc.Create(dto.CreateProductRequest{
		Code: "SKU-001", Name: "Teclado", Price: decimal.NewFromInt(1), Quantity: 1,
		CategoryIDs: []int64{1, 2},
	})
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateProductRequest{CategoryIDs: []int64{9}})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, []int64{9}, out.CategoryIDs,
		"category_ids no-nil reemplaza el conjunto completo")
	assert.Equal(t, []int64{9}, repo.categories[created.ID])
}

func TestProductUpdate_NilNoTocaCategorias(t *testing.T) {
	uc, repo := newProductUC()

	created, err := uc.Create(dto.CreateProductRequest{
		Code: "SKU-001", Name: "Teclado", Price: decimal.NewFromInt(1), Quantity: 1,
		CategoryIDs: []int64{1, 2},
	})
	require.NoError(t, err)

	precio := decimal.NewFromInt(99)
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{Price: &precio})
	require.NoError(t, err)
	assert.True(t, out.Price.Equal(precio))
	assert.Equal(t, []int64{1, 2}, repo.categories[created.ID],
		"category_ids nil deja las asociaciones como estaban")
}

func TestProductUpdate_CodigoDuplicado(t *testing.T) {
	uc, _ := newProductUC()

	_, err := uc.Create(dto.CreateProductRequest{Code: "SKU-001", Name: "A", Price: decimal.NewFromInt(1), Quantity: 1})
	require.NoError(t, err)
	otro, err := uc.Create(dto.CreateProductRequest{Code: "SKU-002", Name: "B", Price: decimal.NewFromInt(1), Quantity: 1})
	require.NoError(t, err)

	_, err = uc.Update(otro.ID, dto.UpdateProductRequest{Code: strPtr("SKU-001")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductDelete(t *testing.T) {
	uc, _ := newProductUC()

	created, err := uc.Create(dto.CreateProductRequest{Code: "SKU-001", Name: "A", Price: decimal.NewFromInt(1), Quantity: 1})
	require.NoError(t, err)

	deleted, err := uc.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	out, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, out)
}
