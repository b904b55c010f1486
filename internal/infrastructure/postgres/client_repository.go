package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/inventario-api/internal/domain"
	"github.com/tu-usuario/inventario-api/internal/domain/entity"
	"github.com/tu-usuario/inventario-api/internal/domain/repository"
)

// Asegura que ClientRepo implementa repository.ClientRepository.
var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación del puerto ClientRepository sobre PostgreSQL.
type ClientRepo struct {
	db DBTX
}

// NewClientRepository construye el adaptador de persistencia para clientes.
func NewClientRepository(db DBTX) *ClientRepo {
	return &ClientRepo{db: db}
}

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (name, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.db.QueryRow(context.Background(), query,
		client.Name, client.Email, client.CreatedAt, client.UpdatedAt,
	).Scan(&client.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. (nil, nil) si no existe.
func (r *ClientRepo) GetByID(id int64) (*entity.Client, error) {
	return r.scanOne(`SELECT id, name, email, created_at, updated_at FROM clients WHERE id = $1`, id)
}

// GetByEmail obtiene un cliente por email. (nil, nil) si no existe.
func (r *ClientRepo) GetByEmail(email string) (*entity.Client, error) {
	return r.scanOne(`SELECT id, name, email, created_at, updated_at FROM clients WHERE email = $1`, email)
}

func (r *ClientRepo) scanOne(query string, arg any) (*entity.Client, error) {
	var c entity.Client
	err := r.db.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.Name, &c.Email, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// GetAll devuelve todos los clientes.
func (r *ClientRepo) GetAll() ([]*entity.Client, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT id, name, email, created_at, updated_at FROM clients ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un cliente existente.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `UPDATE clients SET name = $2, email = $3, updated_at = $4 WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		client.ID, client.Name, client.Email, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// Delete elimina un cliente por ID. Sus órdenes caen por ON DELETE CASCADE.
func (r *ClientRepo) Delete(id int64) (bool, error) {
	cmd, err := r.db.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete client: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
