package product

import (
	"context"
	"errors"
	"testing"

	"myTimberMarket/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	products map[uint64]domain.Product
	nextID   uint64
	err      error
}

func newFakeRepo(products ...domain.Product) *fakeRepo {
	r := &fakeRepo{products: map[uint64]domain.Product{}, nextID: 100}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeRepo) Create(_ context.Context, p *domain.Product) error {
	if r.err != nil {
		return r.err
	}
	r.nextID++
	p.ID = r.nextID
	r.products[p.ID] = *p
	return nil
}

func (r *fakeRepo) FindByID(_ context.Context, id uint64) (domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return p, nil
}

func (r *fakeRepo) FindAll(_ context.Context) ([]domain.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeRepo) Update(_ context.Context, p *domain.Product) error {
	if r.err != nil {
		return r.err
	}
	r.products[p.ID] = *p
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id uint64) error {
	if r.err != nil {
		return r.err
	}
	delete(r.products, id)
	return nil
}

type countingInvalidator struct {
	calls int
	err   error
}

func (c *countingInvalidator) Invalidate(context.Context) error {
	c.calls++
	return c.err
}

func validProduct() *domain.Product {
	return &domain.Product{
		Name:        "Meranti plank",
		Category:    "timber",
		Subcategory: "planks",
		Price:       1000,
		Size:        "6x2 ft",
		Unit:        "pieces",
		Quantity:    12,
		IsActive:    true,
	}
}

func TestCreateProduct(t *testing.T) {
	inv := &countingInvalidator{}
	svc := NewProductService(newFakeRepo(), inv)

	p, err := svc.CreateProduct(context.Background(), validProduct())
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Equal(t, 1, inv.calls)
}

func TestCreateProduct_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *domain.Product)
		want   error
	}{
		{name: "name", mutate: func(p *domain.Product) { p.Name = "" }, want: domain.ErrProductNameRequired},
		{name: "category", mutate: func(p *domain.Product) { p.Category = "" }, want: domain.ErrProductCategoryRequired},
		{name: "unit", mutate: func(p *domain.Product) { p.Unit = "" }, want: domain.ErrUnitRequired},
		{name: "price", mutate: func(p *domain.Product) { p.Price = -1 }, want: domain.ErrInvalidPrice},
		{name: "quantity", mutate: func(p *domain.Product) { p.Quantity = -1 }, want: domain.ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &countingInvalidator{}
			svc := NewProductService(newFakeRepo(), inv)

			p := validProduct()
			tt.mutate(p)

			_, err := svc.CreateProduct(context.Background(), p)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, domain.IsValidationError(err))
			assert.Zero(t, inv.calls)
		})
	}
}

func TestCreateProduct_ZeroPriceAllowed(t *testing.T) {
	svc := NewProductService(newFakeRepo(), nil)

	p := validProduct()
	p.Price = 0

	_, err := svc.CreateProduct(context.Background(), p)
	assert.NoError(t, err)
}

func TestUpdateProduct(t *testing.T) {
	existing := *validProduct()
	existing.ID = 5
	inv := &countingInvalidator{}
	svc := NewProductService(newFakeRepo(existing), inv)

	update := validProduct()
	update.ID = 5
	update.Price = 1500

	got, err := svc.UpdateProduct(context.Background(), update)
	require.NoError(t, err)
	assert.Equal(t, 1500.0, got.Price)
	assert.Equal(t, 1, inv.calls)

	missing := validProduct()
	missing.ID = 6
	_, err = svc.UpdateProduct(context.Background(), missing)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = svc.UpdateProduct(context.Background(), validProduct())
	assert.ErrorIs(t, err, domain.ErrInvalidProductID)
}

func TestDeleteProduct(t *testing.T) {
	existing := *validProduct()
	existing.ID = 5
	inv := &countingInvalidator{err: errors.New("redis down")}
	svc := NewProductService(newFakeRepo(existing), inv)

	// invalidation failures do not fail the delete
	require.NoError(t, svc.DeleteProduct(context.Background(), 5))
	assert.Equal(t, 1, inv.calls)

	assert.ErrorIs(t, svc.DeleteProduct(context.Background(), 5), domain.ErrProductNotFound)
	assert.ErrorIs(t, svc.DeleteProduct(context.Background(), 0), domain.ErrInvalidProductID)
}

func TestGetProduct(t *testing.T) {
	existing := *validProduct()
	existing.ID = 5
	repo := newFakeRepo(existing)
	svc := NewProductService(repo, nil)

	p, err := svc.GetProductByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "Meranti plank", p.Name)

	_, err = svc.GetProductByID(context.Background(), 9)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	all, err := svc.GetAllProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)

	repo.err = errors.New("db down")
	_, err = svc.GetAllProducts(context.Background())
	assert.Error(t, err)
}
