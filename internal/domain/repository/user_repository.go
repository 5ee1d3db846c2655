package repository

import "github.com/zuberiservices/hawker-ledger/internal/domain/entity"

// UserRepository is the persistence port for User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	ListHawkers() ([]*entity.User, error)
	Count() (int, error)
}
