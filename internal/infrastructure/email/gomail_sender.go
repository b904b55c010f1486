package email

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	gomail "gopkg.in/gomail.v2"

	"github.com/tu-usuario/inventario-api/internal/application/usecase"
	"github.com/tu-usuario/inventario-api/pkg/config"
)

// Asegura que GomailSender implementa usecase.EmailSender.
var _ usecase.EmailSender = (*GomailSender)(nil)

// GomailSender envía el reporte de inventario como mensaje MIME multipart/mixed
// (cuerpo de texto plano + adjunto PDF en base64) a través del relay SMTP del
// proveedor transaccional. gomail arma el multipart y el transfer-encoding.
type GomailSender struct {
	cfg config.SMTPConfig
}

// NewGomailSender construye el sender con la configuración SMTP.
func NewGomailSender(cfg config.SMTPConfig) *GomailSender {
	return &GomailSender{cfg: cfg}
}

// Send despacha el PDF al destinatario y devuelve el Message-ID generado.
// Sin reintentos: un fallo del proveedor se propaga tal cual al caso de uso.
func (s *GomailSender) Send(to, filename string, pdf []byte) (string, error) {
	messageID := fmt.Sprintf("<%s@inventario-api>", uuid.New().String())

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Reporte de Inventario")
	m.SetHeader("Message-ID", messageID)
	m.SetBody("text/plain", "Adjunto encontrarás el reporte de inventario en formato PDF.")
	m.Attach(filename,
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(pdf)
			return err
		}),
		gomail.SetHeader(map[string][]string{"Content-Type": {"application/pdf"}}),
	)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return "", fmt.Errorf("smtp send: %w", err)
	}
	return messageID, nil
}
