package http_test

import (
	"context"
	"errors"

	"github.com/tu-usuario/inventario-api/internal/application/usecase"
	"github.com/tu-usuario/inventario-api/internal/domain/entity"
	"github.com/tu-usuario/inventario-api/internal/domain/repository"
)

// Repositorios en memoria para levantar la aplicación completa en los tests
// de handlers sin tocar PostgreSQL.

type memUserRepo struct {
	byID   map[int64]*entity.User
	nextID int64
}

func (r *memUserRepo) Create(u *entity.User) error {
	r.nextID++
	u.ID = r.nextID
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetAll() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.byID))
	for _, u := range r.byID {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memUserRepo) Update(u *entity.User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return errors.New("user no existe")
	}
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *memUserRepo) Delete(id int64) (bool, error) {
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

type memCompanyRepo struct {
	byNIT map[string]*entity.Company
}

func (r *memCompanyRepo) Create(c *entity.Company) error {
	cp := *c
	r.byNIT[c.NIT] = &cp
	return nil
}

func (r *memCompanyRepo) GetByNIT(nit string) (*entity.Company, error) {
	c, ok := r.byNIT[nit]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCompanyRepo) GetAll() ([]*entity.Company, error) {
	out := make([]*entity.Company, 0, len(r.byNIT))
	for _, c := range r.byNIT {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memCompanyRepo) Update(c *entity.Company) error {
	if _, ok := r.byNIT[c.NIT]; !ok {
		return errors.New("company no existe")
	}
	cp := *c
	r.byNIT[c.NIT] = &cp
	return nil
}

func (r *memCompanyRepo) Delete(nit string) (bool, error) {
	if _, ok := r.byNIT[nit]; !ok {
		return false, nil
	}
	delete(r.byNIT, nit)
	return true, nil
}

type memCategoryRepo struct {
	byID   map[int64]*entity.Category
	nextID int64
}

func (r *memCategoryRepo) Create(c *entity.Category) error {
	r.nextID++
	c.ID = r.nextID
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *memCategoryRepo) GetByID(id int64) (*entity.Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCategoryRepo) GetAll() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.byID))
	for _, c := range r.byID {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memCategoryRepo) Update(c *entity.Category) error {
	if _, ok := r.byID[c.ID]; !ok {
		return errors.New("category no existe")
	}
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *memCategoryRepo) Delete(id int64) (bool, error) {
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

type memClientRepo struct {
	byID   map[int64]*entity.Client
	nextID int64
}

func (r *memClientRepo) Create(c *entity.Client) error {
	r.nextID++
	c.ID = r.nextID
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *memClientRepo) GetByID(id int64) (*entity.Client, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memClientRepo) GetByEmail(email string) (*entity.Client, error) {
	for _, c := range r.byID {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memClientRepo) GetAll() ([]*entity.Client, error) {
	out := make([]*entity.Client, 0, len(r.byID))
	for _, c := range r.byID {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memClientRepo) Update(c *entity.Client) error {
	if _, ok := r.byID[c.ID]; !ok {
		return errors.New("client no existe")
	}
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *memClientRepo) Delete(id int64) (bool, error) {
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

type memProductRepo struct {
	byID   map[int64]*entity.Product
	cats   map[int64][]int64
	nextID int64
}

func (r *memProductRepo) Create(p *entity.Product) error {
	r.nextID++
	p.ID = r.nextID
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	cp.CategoryIDs = r.cats[id]
	return &cp, nil
}

func (r *memProductRepo) GetByCode(code string) (*entity.Product, error) {
	for _, p := range r.byID {
		if p.Code == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetAll() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.byID))
	for _, p := range r.byID {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memProductRepo) ListByCompany(nit string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		if p.CompanyNIT != nil && *p.CompanyNIT == nit {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	if _, ok := r.byID[p.ID]; !ok {
		return errors.New("product no existe")
	}
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *memProductRepo) Delete(id int64) (bool, error) {
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	delete(r.cats, id)
	return true, nil
}

func (r *memProductRepo) ReplaceCategories(productID int64, categoryIDs []int64) error {
	r.cats[productID] = append([]int64(nil), categoryIDs...)
	return nil
}

type memOrderRepo struct {
	byID     map[int64]*entity.Order
	lines    map[int64][]int64
	products *memProductRepo
	nextID   int64
}

func (r *memOrderRepo) Create(o *entity.Order) error {
	r.nextID++
	o.ID = r.nextID
	cp := *o
	r.byID[o.ID] = &cp
	return nil
}

func (r *memOrderRepo) GetByID(id int64) (*entity.Order, error) {
	o, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	cp.ProductIDs = r.lines[id]
	return &cp, nil
}

func (r *memOrderRepo) GetAll() ([]*entity.Order, error) {
	out := make([]*entity.Order, 0, len(r.byID))
	for _, o := range r.byID {
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memOrderRepo) ListByCompany(nit string) ([]*entity.Order, error) {
	var out []*entity.Order
	for id, o := range r.byID {
		for _, pid := range r.lines[id] {
			p := r.products.byID[pid]
			if p != nil && p.CompanyNIT != nil && *p.CompanyNIT == nit {
				cp := *o
				cp.ProductIDs = r.lines[id]
				out = append(out, &cp)
				break
			}
		}
	}
	return out, nil
}

func (r *memOrderRepo) Update(o *entity.Order) error {
	if _, ok := r.byID[o.ID]; !ok {
		return errors.New("order no existe")
	}
	cp := *o
	r.byID[o.ID] = &cp
	return nil
}

func (r *memOrderRepo) Delete(id int64) (bool, error) {
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	delete(r.lines, id)
	return true, nil
}

func (r *memOrderRepo) AddProducts(orderID int64, productIDs []int64) error {
	for _, pid := range productIDs {
		if _, ok := r.products.byID[pid]; !ok {
			return errors.New("product no existe")
		}
	}
	r.lines[orderID] = append(r.lines[orderID], productIDs...)
	return nil
}

type memTxRunner struct {
	products *memProductRepo
	orders   *memOrderRepo
}

var _ usecase.TxRunner = (*memTxRunner)(nil)

func (t *memTxRunner) RunProduct(_ context.Context, fn func(repository.ProductRepository) error) error {
	return fn(t.products)
}

func (t *memTxRunner) RunOrder(_ context.Context, fn func(repository.OrderRepository) error) error {
	return fn(t.orders)
}

// memGenerator y memSender cubren los puertos del reporte de inventario.

type memGenerator struct {
	pdf []byte
}

func (g *memGenerator) Generate(products []*entity.Product) ([]byte, error) {
	return g.pdf, nil
}

type memSender struct {
	lastTo       string
	lastFilename string
	lastPDF      []byte
	messageID    string
	err          error
}

func (s *memSender) Send(to, filename string, pdf []byte) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.lastTo = to
	s.lastFilename = filename
	s.lastPDF = pdf
	return s.messageID, nil
}
