package repository

import "github.com/zuberiservices/hawker-ledger/internal/domain/entity"

// ProductRepository is the persistence port for the catalog (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByName(name string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	// DeleteAll empties the catalog. Only called inside a transaction as the
	// first half of a whole-set replace.
	DeleteAll() error
}
