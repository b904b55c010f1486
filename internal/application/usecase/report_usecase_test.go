package usecase_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-api/internal/application/usecase"
	"github.com/tu-usuario/inventario-api/internal/domain"
	"github.com/tu-usuario/inventario-api/internal/domain/entity"
)

type fakeGenerator struct {
	pdf []byte
	err error
}

func (g *fakeGenerator) Generate(products []*entity.Product) ([]byte, error) {
	return g.pdf, g.err
}

type fakeSender struct {
	lastTo       string
	lastFilename string
	lastPDF      []byte
	messageID    string
	err          error
}

func (s *fakeSender) Send(to, filename string, pdf []byte) (string, error) {
	s.lastTo = to
	s.lastFilename = filename
	s.lastPDF = pdf
	return s.messageID, s.err
}

func TestSendInventoryReport(t *testing.T) {
	products := newFakeProductRepo()
	require.NoError(t, products.Create(&entity.Product{
		Code: "SKU-001", Name: "Teclado", Price: decimal.NewFromInt(10), Quantity: 3,
	}))
	gen := &fakeGenerator{pdf: []byte("%PDF-1.4 fake")}
	sender := &fakeSender{messageID: "<abc@inventario-api>"}
	uc := usecase.NewReportUseCase(products, gen, sender)

	messageID, err := uc.SendInventoryReport("dest@example.com")
	require.NoError(t, err)
	assert.Equal(t, "<abc@inventario-api>", messageID)
	assert.Equal(t, "dest@example.com", sender.lastTo)
	assert.Equal(t, usecase.ReportFilename, sender.lastFilename)
	assert.Equal(t, gen.pdf, sender.lastPDF)
}

func TestSendInventoryReport_InventarioVacio(t *testing.T) {
	uc := usecase.NewReportUseCase(newFakeProductRepo(), &fakeGenerator{}, &fakeSender{})

	_, err := uc.SendInventoryReport("dest@example.com")
	assert.ErrorIs(t, err, domain.ErrEmptyCollection)
}

func TestSendInventoryReport_FalloProveedor(t *testing.T) {
	products := newFakeProductRepo()
	require.NoError(t, products.Create(&entity.Product{
		Code: "SKU-001", Name: "Teclado", Price: decimal.NewFromInt(10), Quantity: 3,
	}))
	provErr := errors.New("smtp: 451 temporary failure")
	uc := usecase.NewReportUseCase(products, &fakeGenerator{pdf: []byte("x")}, &fakeSender{err: provErr})

	_, err := uc.SendInventoryReport("dest@example.com")
	assert.ErrorIs(t, err, provErr, "el fallo del proveedor se propaga al handler")
}

func TestSendPDF_FilenamePorDefecto(t *testing.T) {
	sender := &fakeSender{messageID: "<id@inventario-api>"}
	uc := usecase.NewReportUseCase(newFakeProductRepo(), &fakeGenerator{}, sender)

	_, err := uc.SendPDF("dest@example.com", "", []byte("pdf"))
	require.NoError(t, err)
	assert.Equal(t, usecase.ReportFilename, sender.lastFilename)

	_, err = uc.SendPDF("dest@example.com", "facturas.pdf", []byte("pdf"))
	require.NoError(t, err)
	assert.Equal(t, "facturas.pdf", sender.lastFilename)
}
