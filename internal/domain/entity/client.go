package entity

import "time"

// Client representa un cliente. Sus órdenes dependen de él:
// al eliminarlo se eliminan en cascada.
type Client struct {
	ID        int64
	Name      string
	Email     string // único
	CreatedAt time.Time
	UpdatedAt time.Time
}
