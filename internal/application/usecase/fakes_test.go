package usecase_test

import (
	"context"
	"errors"

	"github.com/tu-usuario/inventario-api/internal/application/usecase"
	"github.com/tu-usuario/inventario-api/internal/domain/entity"
	"github.com/tu-usuario/inventario-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*entity.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	u.ID = r.nextID
	r.nextID++
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetAll() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return errors.New("user no existe")
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(id int64) (bool, error) {
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: map[string]*entity.Company{}}
}

func (r *fakeCompanyRepo) Create(c *entity.Company) error {
	cp := *c
	r.companies[c.NIT] = &cp
	return nil
}

func (r *fakeCompanyRepo) GetByNIT(nit string) (*entity.Company, error) {
	c, ok := r.companies[nit]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCompanyRepo) GetAll() ([]*entity.Company, error) {
	out := make([]*entity.Company, 0, len(r.companies))
	for _, c := range r.companies {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeCompanyRepo) Update(c *entity.Company) error {
	if _, ok := r.companies[c.NIT]; !ok {
		return errors.New("company no existe")
	}
	cp := *c
	r.companies[c.NIT] = &cp
	return nil
}

func (r *fakeCompanyRepo) Delete(nit string) (bool, error) {
	if _, ok := r.companies[nit]; !ok {
		return false, nil
	}
	delete(r.companies, nit)
	return true, nil
}

type fakeClientRepo struct {
	clients map[int64]*entity.Client
	nextID  int64
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: map[int64]*entity.Client{}, nextID: 1}
}

func (r *fakeClientRepo) Create(c *entity.Client) error {
	c.ID = r.nextID
	r.nextID++
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) GetByID(id int64) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClientRepo) GetByEmail(email string) (*entity.Client, error) {
	for _, c := range r.clients {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeClientRepo) GetAll() ([]*entity.Client, error) {
	out := make([]*entity.Client, 0, len(r.clients))
	for _, c := range r.clients {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeClientRepo) Update(c *entity.Client) error {
	if _, ok := r.clients[c.ID]; !ok {
		return errors.New("client no existe")
	}
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) Delete(id int64) (bool, error) {
	if _, ok := r.clients[id]; !ok {
		return false, nil
	}
	delete(r.clients, id)
	return true, nil
}

type fakeProductRepo struct {
	products   map[int64]*entity.Product
	categories map[int64][]int64
	nextID     int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products:   map[int64]*entity.Product{},
		categories: map[int64][]int64{},
		nextID:     1,
	}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	p.ID = r.nextID
	r.nextID++
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	cp.CategoryIDs = r.categories[id]
	return &cp, nil
}

func (r *fakeProductRepo) GetByCode(code string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Code == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetAll() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) ListByCompany(nit string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.CompanyNIT != nil && *p.CompanyNIT == nit {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return errors.New("product no existe")
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(id int64) (bool, error) {
	if _, ok := r.products[id]; !ok {
		return false, nil
	}
	delete(r.products, id)
	delete(r.categories, id)
	return true, nil
}

func (r *fakeProductRepo) ReplaceCategories(productID int64, categoryIDs []int64) error {
	r.categories[productID] = append([]int64(nil), categoryIDs...)
	return nil
}

type fakeOrderRepo struct {
	orders   map[int64]*entity.Order
	lines    map[int64][]int64
	products *fakeProductRepo
	nextID   int64
}

func newFakeOrderRepo(products *fakeProductRepo) *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:   map[int64]*entity.Order{},
		lines:    map[int64][]int64{},
		products: products,
		nextID:   1,
	}
}

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	o.ID = r.nextID
	r.nextID++
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(id int64) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	cp.ProductIDs = r.lines[id]
	return &cp, nil
}

func (r *fakeOrderRepo) GetAll() ([]*entity.Order, error) {
	out := make([]*entity.Order, 0, len(r.orders))
	for _, o := range r.orders {
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeOrderRepo) ListByCompany(nit string) ([]*entity.Order, error) {
	var out []*entity.Order
	for id, o := range r.orders {
		for _, pid := range r.lines[id] {
			p := r.products.products[pid]
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

func (r *fakeOrderRepo) Update(o *entity.Order) error {
	if _, ok := r.orders[o.ID]; !ok {
		return errors.New("order no existe")
	}
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) Delete(id int64) (bool, error) {
	if _, ok := r.orders[id]; !ok {
		return false, nil
	}
	delete(r.orders, id)
	delete(r.lines, id)
	return true, nil
}

func (r *fakeOrderRepo) AddProducts(orderID int64, productIDs []int64) error {
	for _, pid := range productIDs {
		if _, ok := r.products.products[pid]; !ok {
			return errors.New("product no existe")
		}
	}
	r.lines[orderID] = append(r.lines[orderID], productIDs...)
	return nil
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes, sin transacción.
type fakeTxRunner struct {
	products *fakeProductRepo
	orders   *fakeOrderRepo
}

var _ usecase.TxRunner = (*fakeTxRunner)(nil)

func (t *fakeTxRunner) RunProduct(_ context.Context, fn func(repository.ProductRepository) error) error {
	return fn(t.products)
}

func (t *fakeTxRunner) RunOrder(_ context.Context, fn func(repository.OrderRepository) error) error {
	return fn(t.orders)
}
