package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/zuberiservices/hawker-ledger/internal/application/dto"
	"github.com/zuberiservices/hawker-ledger/internal/domain"
	"github.com/zuberiservices/hawker-ledger/internal/domain/entity"
	"github.com/zuberiservices/hawker-ledger/internal/domain/repository"
)

// CatalogTxRunner runs a function inside a DB transaction with a catalog
// repository bound to that transaction. The whole-set replace needs it: the
// delete and the inserts must land together or not at all.
type CatalogTxRunner interface {
	RunCatalog(ctx context.Context, fn func(products repository.ProductRepository) error) error
}

// CatalogUseCase product catalog management. Rates on committed ledger rows
// are snapshots, so nothing here ever touches the ledger.
type CatalogUseCase struct {
	repo repository.ProductRepository
	tx   CatalogTxRunner
}

// NewCatalogUseCase builds the use case.
func NewCatalogUseCase(repo repository.ProductRepository, tx CatalogTxRunner) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, tx: tx}
}

// List returns the catalog as an ordered sequence.
func (uc *CatalogUseCase) List() ([]dto.ProductResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Add creates one catalog item. Admin only. Fails with ErrValidation for an
// empty name or a non-positive rate, ErrDuplicateProduct for a taken name.
func (uc *CatalogUseCase) Add(actorRole string, in dto.AddProductRequest) (*dto.ProductResponse, error) {
	if actorRole != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateProduct
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Rate:      in.Rate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Replace swaps the entire product set atomically (bulk edit semantics).
// Admin only. The whole new set is validated before any write; duplicate names
// inside the new set are ErrValidation. Two concurrent replaces serialize on
// the DB transaction; the later one wins wholesale, there is no row merge.
func (uc *CatalogUseCase) Replace(ctx context.Context, actorRole string, in dto.ReplaceCatalogRequest) ([]dto.ProductResponse, error) {
	if actorRole != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	seen := make(map[string]bool, len(in.Products))
	for _, p := range in.Products {
		if err := validateProduct(p); err != nil {
			return nil, err
		}
		if seen[p.Name] {
			return nil, domain.ErrValidation
		}
		seen[p.Name] = true
	}

	now := time.Now()
	replacement := make([]*entity.Product, 0, len(in.Products))
	for _, p := range in.Products {
		replacement = append(replacement, &entity.Product{
			ID:        uuid.New().String(),
			Name:      p.Name,
			Rate:      p.Rate,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	err := uc.tx.RunCatalog(ctx, func(products repository.ProductRepository) error {
		if err := products.DeleteAll(); err != nil {
			return err
		}
		for _, p := range replacement {
			if err := products.Create(p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]dto.ProductResponse, 0, len(replacement))
	for _, p := range replacement {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

func validateProduct(in dto.AddProductRequest) error {
	if in.Name == "" || !in.Rate.IsPositive() {
		return domain.ErrValidation
	}
	return nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{ID: p.ID, Name: p.Name, Rate: p.Rate}
}
