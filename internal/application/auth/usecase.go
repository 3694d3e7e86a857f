package auth

import (
	"github.com/jhoicas/cafe-pos-api/internal/application/dto"
	"github.com/jhoicas/cafe-pos-api/internal/domain"
	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
)

// AuthUseCase login del terminal por PIN. Es solo una búsqueda por código de
// acceso: el terminal es mono-usuario y no maneja sesiones ni tokens.
type AuthUseCase struct {
	userRepo repository.UserRepository
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo}
}

// Login busca el operador por su PIN. Devuelve ErrUnauthorized si ningún
// operador tiene ese código.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.UserResponse, error) {
	if in.AccessCode == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByAccessCode(in.AccessCode)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return &dto.UserResponse{ID: user.ID, Name: user.Name, Role: user.Role}, nil
}
