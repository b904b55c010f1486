package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/inventario-api/internal/domain"
	"github.com/tu-usuario/inventario-api/internal/domain/entity"
	"github.com/tu-usuario/inventario-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	db DBTX
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(db DBTX) *CompanyRepo {
	return &CompanyRepo{db: db}
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (nit, name, address, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(context.Background(), query,
		company.NIT, company.Name, company.Address, company.Phone,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByNIT obtiene una empresa por NIT. (nil, nil) si no existe.
func (r *CompanyRepo) GetByNIT(nit string) (*entity.Company, error) {
	query := `
		SELECT nit, name, address, phone, created_at, updated_at
		FROM companies WHERE nit = $1`
	var c entity.Company
	err := r.db.QueryRow(context.Background(), query, nit).Scan(
		&c.NIT, &c.Name, &c.Address, &c.Phone, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by NIT: %w", err)
	}
	return &c, nil
}

// GetAll devuelve todas las empresas.
func (r *CompanyRepo) GetAll() ([]*entity.Company, error) {
	query := `
		SELECT nit, name, address, phone, created_at, updated_at
		FROM companies ORDER BY name`
	rows, err := r.db.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.NIT, &c.Name, &c.Address, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza una empresa existente (el NIT es la llave, no cambia).
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, address = $3, phone = $4, updated_at = $5
		WHERE nit = $1`
	_, err := r.db.Exec(context.Background(), query,
		company.NIT, company.Name, company.Address, company.Phone, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// Delete elimina una empresa por NIT. Sus productos caen por ON DELETE CASCADE
// en una sola sentencia, así el borrado parcial es imposible.
func (r *CompanyRepo) Delete(nit string) (bool, error) {
	cmd, err := r.db.Exec(context.Background(), `DELETE FROM companies WHERE nit = $1`, nit)
	if err != nil {
		return false, fmt.Errorf("delete company: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
