package entity

import "time"

// Company representa una empresa proveedora. La llave primaria es el NIT
// (número de identificación tributaria colombiano).
// Sus productos dependen de ella: al eliminarla se eliminan en cascada.
type Company struct {
	NIT       string
	Name      string
	Address   string // opcional
	Phone     string // opcional
	CreatedAt time.Time
	UpdatedAt time.Time
}
