package repository

import "github.com/jhoicas/cafe-pos-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// GetByAccessCode busca el usuario por su PIN (login del terminal).
	// Devuelve nil, nil si ningún usuario tiene ese código.
	GetByAccessCode(code string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	CountByRole(role string) (int, error)
	Delete(id string) error
}
