package usecase

import (
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/jhoicas/cafe-pos-api/internal/application/dto"
	"github.com/jhoicas/cafe-pos-api/internal/domain"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
)

// UserUseCase casos de uso CRUD para operadores del terminal.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// validAccessCode exige un PIN de 4 a 6 dígitos.
func validAccessCode(code string) bool {
	if len(code) < 4 || len(code) > 6 {
		return false
	}
	for _, r := range code {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func validRole(role string) bool {
	return role == entity.RoleAdmin || role == entity.RoleWorker
}

// Create crea un operador. El PIN debe ser único entre los operadores: dos
// códigos iguales harían ambiguo el login del terminal.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Name == "" || !validRole(in.Role) || !validAccessCode(in.AccessCode) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByAccessCode(in.AccessCode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	user := &entity.User{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Role:       in.Role,
		AccessCode: in.AccessCode,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID obtiene un operador por ID.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return toUserResponse(user), nil
}

// Update aplica una actualización parcial tipada. Quitarle el rol admin al
// último administrador dejaría el terminal sin administración: se rechaza.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		user.Name = *in.Name
	}
	if in.Role != nil {
		if !validRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		if user.Role == entity.RoleAdmin && *in.Role != entity.RoleAdmin {
			admins, err := uc.repo.CountByRole(entity.RoleAdmin)
			if err != nil {
				return nil, err
			}
			if admins <= 1 {
				return nil, domain.ErrLastAdmin
			}
		}
		user.Role = *in.Role
	}
	if in.AccessCode != nil {
		if !validAccessCode(*in.AccessCode) {
			return nil, domain.ErrInvalidInput
		}
		existing, err := uc.repo.GetByAccessCode(*in.AccessCode)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, domain.ErrDuplicate
		}
		user.AccessCode = *in.AccessCode
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// List lista operadores con paginación.
func (uc *UserUseCase) List(limit, offset int) ([]*dto.UserResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// Delete elimina un operador. El último administrador no puede eliminarse.
func (uc *UserUseCase) Delete(id string) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if user.Role == entity.RoleAdmin {
		admins, err := uc.repo.CountByRole(entity.RoleAdmin)
		if err != nil {
			return err
		}
		if admins <= 1 {
			return domain.ErrLastAdmin
		}
	}
	return uc.repo.Delete(id)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:   u.ID,
		Name: u.Name,
		Role: u.Role,
	}
}
