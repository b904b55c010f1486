package usecase

import (
	"github.com/tu-usuario/inventario-api/internal/domain"
	"github.com/tu-usuario/inventario-api/internal/domain/entity"
	"github.com/tu-usuario/inventario-api/internal/domain/repository"
)

// ReportFilename nombre del adjunto del reporte de inventario.
const ReportFilename = "inventory_report.pdf"

// InventoryPDFGenerator genera el PDF del reporte de inventario.
// La implementación (Maroto) vive en infrastructure/pdf.
type InventoryPDFGenerator interface {
	Generate(products []*entity.Product) ([]byte, error)
}

// EmailSender envía un PDF como adjunto MIME a un destinatario y devuelve
// el Message-ID. La implementación (gomail/SMTP) vive en infrastructure/email.
type EmailSender interface {
	Send(to, filename string, pdf []byte) (string, error)
}

// ReportUseCase genera y despacha el reporte de inventario por correo.
// Sin reintentos ni colas: un fallo del proveedor es terminal para la petición.
type ReportUseCase struct {
	products  repository.ProductRepository
	generator InventoryPDFGenerator
	sender    EmailSender
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(products repository.ProductRepository, generator InventoryPDFGenerator, sender EmailSender) *ReportUseCase {
	return &ReportUseCase{products: products, generator: generator, sender: sender}
}

// SendInventoryReport genera el PDF a partir del inventario actual y lo envía.
// Devuelve domain.ErrEmptyCollection si no hay productos que reportar.
func (uc *ReportUseCase) SendInventoryReport(to string) (string, error) {
	products, err := uc.products.GetAll()
	if err != nil {
		return "", err
	}
	if len(products) == 0 {
		return "", domain.ErrEmptyCollection
	}
	pdf, err := uc.generator.Generate(products)
	if err != nil {
		return "", err
	}
	return uc.sender.Send(to, ReportFilename, pdf)
}

// SendPDF envía un PDF ya construido (subido por el cliente) al destinatario.
func (uc *ReportUseCase) SendPDF(to, filename string, pdf []byte) (string, error) {
	if filename == "" {
		filename = ReportFilename
	}
	return uc.sender.Send(to, filename, pdf)
}
