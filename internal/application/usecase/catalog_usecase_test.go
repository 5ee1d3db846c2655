package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zuberiservices/hawker-ledger/internal/application/dto"
	"github.com/zuberiservices/hawker-ledger/internal/application/usecase"
	"github.com/zuberiservices/hawker-ledger/internal/domain"
	"github.com/zuberiservices/hawker-ledger/internal/domain/entity"
	"github.com/zuberiservices/hawker-ledger/internal/domain/repository"
)

type fakeProductRepo struct {
	products []*entity.Product
}

func (r *fakeProductRepo) Create(product *entity.Product) error {
	for _, p := range r.products {
		if p.Name == product.Name {
			return domain.ErrDuplicateProduct
		}
	}
	r.products = append(r.products, product)
	return nil
}

func (r *fakeProductRepo) GetByName(name string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	return append([]*entity.Product(nil), r.products...), nil
}

func (r *fakeProductRepo) DeleteAll() error {
	r.products = nil
	return nil
}

// fakeCatalogTx snapshots the catalog before the callback and restores it on
// error, mirroring a DB rollback.
type fakeCatalogTx struct {
	repo *fakeProductRepo
}

func (r *fakeCatalogTx) RunCatalog(ctx context.Context, fn func(products repository.ProductRepository) error) error {
	snapshot := append([]*entity.Product(nil), r.repo.products...)
	if err := fn(r.repo); err != nil {
		r.repo.products = snapshot
		return err
	}
	return nil
}

func newCatalogUC(seed ...*entity.Product) (*usecase.CatalogUseCase, *fakeProductRepo) {
	repo := &fakeProductRepo{products: seed}
	return usecase.NewCatalogUseCase(repo, &fakeCatalogTx{repo: repo}), repo
}

func TestCatalogAdd(t *testing.T) {
	uc, repo := newCatalogUC()

	product, err := uc.Add(entity.RoleAdmin, dto.AddProductRequest{
		Name: "Magnum", Rate: decimal.NewFromInt(300),
	})
	require.NoError(t, err)
	assert.Equal(t, "Magnum", product.Name)
	assert.Len(t, repo.products, 1)
}

func TestCatalogAdd_Validation(t *testing.T) {
	uc, repo := newCatalogUC()

	_, err := uc.Add(entity.RoleAdmin, dto.AddProductRequest{Name: "", Rate: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.Add(entity.RoleAdmin, dto.AddProductRequest{Name: "Feast", Rate: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.Add(entity.RoleAdmin, dto.AddProductRequest{Name: "Feast", Rate: decimal.NewFromInt(-5)})
	assert.ErrorIs(t, err, domain.ErrValidation)

	assert.Empty(t, repo.products)
}

func TestCatalogAdd_DuplicateName(t *testing.T) {
	uc, _ := newCatalogUC(&entity.Product{ID: "p-1", Name: "Magnum", Rate: decimal.NewFromInt(300)})

	_, err := uc.Add(entity.RoleAdmin, dto.AddProductRequest{Name: "Magnum", Rate: decimal.NewFromInt(350)})
	assert.ErrorIs(t, err, domain.ErrDuplicateProduct)
}

func TestCatalogAdd_AdminOnly(t *testing.T) {
	uc, _ := newCatalogUC()

	_, err := uc.Add(entity.RoleHawker, dto.AddProductRequest{Name: "Magnum", Rate: decimal.NewFromInt(300)})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCatalogReplace_SwapsWholeSet(t *testing.T) {
	uc, repo := newCatalogUC(
		&entity.Product{ID: "p-1", Name: "Magnum", Rate: decimal.NewFromInt(300)},
		&entity.Product{ID: "p-2", Name: "Donut", Rate: decimal.NewFromInt(100)},
	)

	out, err := uc.Replace(context.Background(), entity.RoleAdmin, dto.ReplaceCatalogRequest{
		Products: []dto.AddProductRequest{
			{Name: "Magnum", Rate: decimal.NewFromInt(350)},
			{Name: "Cornetto", Rate: decimal.NewFromInt(130)},
		},
	})
	require.NoError(t, err)
	assert.Len(t, out, 2)
	require.Len(t, repo.products, 2)

	magnum, _ := repo.GetByName("Magnum")
	require.NotNil(t, magnum)
	assert.True(t, magnum.Rate.Equal(decimal.NewFromInt(350)))

	donut, _ := repo.GetByName("Donut")
	assert.Nil(t, donut, "products absent from the new set are gone")
}

// A bad row anywhere in the new set must leave the old catalog intact.
func TestCatalogReplace_InvalidSetKeepsOldCatalog(t *testing.T) {
	uc, repo := newCatalogUC(&entity.Product{ID: "p-1", Name: "Magnum", Rate: decimal.NewFromInt(300)})

	_, err := uc.Replace(context.Background(), entity.RoleAdmin, dto.ReplaceCatalogRequest{
		Products: []dto.AddProductRequest{
			{Name: "Cornetto", Rate: decimal.NewFromInt(130)},
			{Name: "Feast", Rate: decimal.Zero},
		},
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
	require.Len(t, repo.products, 1)
	assert.Equal(t, "Magnum", repo.products[0].Name)
}

func TestCatalogReplace_DuplicateNamesInSet(t *testing.T) {
	uc, _ := newCatalogUC()

	_, err := uc.Replace(context.Background(), entity.RoleAdmin, dto.ReplaceCatalogRequest{
		Products: []dto.AddProductRequest{
			{Name: "Magnum", Rate: decimal.NewFromInt(300)},
			{Name: "Magnum", Rate: decimal.NewFromInt(350)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalogReplace_AdminOnly(t *testing.T) {
	uc, _ := newCatalogUC()

	_, err := uc.Replace(context.Background(), entity.RoleHawker, dto.ReplaceCatalogRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
