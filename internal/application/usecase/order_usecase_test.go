package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-api/internal/application/dto"
	"github.com/tu-usuario/inventario-api/internal/application/usecase"
	"github.com/tu-usuario/inventario-api/internal/domain"
	"github.com/tu-usuario/inventario-api/internal/domain/entity"
)

type orderFixture struct {
	uc       *usecase.OrderUseCase
	orders   *fakeOrderRepo
	products *fakeProductRepo
	clients  *fakeClientRepo
}

// newOrderFixture arma una empresa "900123", un cliente y un producto de esa
// empresa, que es el mínimo para ejercitar las órdenes anidadas.
func newOrderFixture(t *testing.T) orderFixture {
	t.Helper()
	companies := newFakeCompanyRepo()
	clients := newFakeClientRepo()
	products := newFakeProductRepo()
	orders := newFakeOrderRepo(products)
	tx := &fakeTxRunner{products: products, orders: orders}

	require.NoError(t, companies.Create(&entity.Company{NIT: "900123", Name: "Acme"}))
	require.NoError(t, clients.Create(&entity.Client{Name: "Pedro", Email: "pedro@example.com"}))
	nit := "900123"
	require.NoError(t, products.Create(&entity.Product{
		Code: "SKU-001", Name: "Teclado", Price: decimal.NewFromInt(10), Quantity: 1, CompanyNIT: &nit,
	}))

	return orderFixture{
		uc:       usecase.NewOrderUseCase(orders, companies, clients, tx),
		orders:   orders,
		products: products,
		clients:  clients,
	}
}

func TestOrderCreate_ConProductos(t *testing.T) {
	f := newOrderFixture(t)

	out, err := f.uc.CreateForCompany("900123", dto.CreateOrderRequest{
		OrderDate:  "2026-08-29",
		ClientID:   1,
		ProductIDs: []int64{1},
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "2026-08-29", out.OrderDate)
	assert.Equal(t, int64(1), out.ClientID)
	assert.Equal(t, []int64{1}, f.orders.lines[out.ID],
		"las filas de order_product se escriben junto con la orden")
}

func TestOrderCreate_EmpresaDesconocida(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.uc.CreateForCompany("999999", dto.CreateOrderRequest{
		OrderDate: "2026-08-29", ClientID: 1,
	})
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
}

func TestOrderCreate_ClienteDesconocido(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.uc.CreateForCompany("900123", dto.CreateOrderRequest{
		OrderDate: "2026-08-29", ClientID: 42,
	})
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

// Si AddProducts falla, la orden entera falla (en la base real la transacción
// revierte; el fake solo verifica que el error se propague).
func TestOrderCreate_ProductoDesconocidoFalla(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.uc.CreateForCompany("900123", dto.CreateOrderRequest{
		OrderDate: "2026-08-29", ClientID: 1, ProductIDs: []int64{77},
	})
	assert.Error(t, err)
}

func TestOrderListByCompany(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.uc.CreateForCompany("900123", dto.CreateOrderRequest{
		OrderDate: "2026-08-29", ClientID: 1, ProductIDs: []int64{1},
	})
	require.NoError(t, err)

	list, err := f.uc.ListByCompany("900123")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, []int64{1}, list[0].ProductIDs)

	_, err = f.uc.ListByCompany("999999")
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
}

func TestOrderUpdate_ClienteDebeExistir(t *testing.T) {
	f := newOrderFixture(t)

	created, err := f.uc.CreateForCompany("900123", dto.CreateOrderRequest{
		OrderDate: "2026-08-29", ClientID: 1,
	})
	require.NoError(t, err)

	badID := int64(42)
	_, err = f.uc.Update(created.ID, dto.UpdateOrderRequest{ClientID: &badID})
	assert.ErrorIs(t, err, domain.ErrClientNotFound)

	fecha := "2026-09-01"
	out, err := f.uc.Update(created.ID, dto.UpdateOrderRequest{OrderDate: &fecha})
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", out.OrderDate)
	assert.Equal(t, int64(1), out.ClientID, "client_id nil no se toca")
}

func TestOrderDeleteForCompany(t *testing.T) {
	f := newOrderFixture(t)

	created, err := f.uc.CreateForCompany("900123", dto.CreateOrderRequest{
		OrderDate: "2026-08-29", ClientID: 1,
	})
	require.NoError(t, err)

	_, err = f.uc.DeleteForCompany("999999", created.ID)
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)

	deleted, err := f.uc.DeleteForCompany("900123", created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = f.uc.DeleteForCompany("900123", created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
