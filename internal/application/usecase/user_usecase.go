package usecase

import (
	"context"

	"github.com/jhoicas/mis-libros/internal/application/dto"
	"github.com/jhoicas/mis-libros/internal/domain"
	"github.com/jhoicas/mis-libros/internal/domain/access"
	"github.com/jhoicas/mis-libros/internal/domain/entity"
	"github.com/jhoicas/mis-libros/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	repo   repository.UserRepository
	policy *access.Policy
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, policy *access.Policy) *UserUseCase {
	return &UserUseCase{repo: repo, policy: policy}
}

// ListUsers lista todos los usuarios con su rol. Solo para identidades admin.
func (uc *UserUseCase) ListUsers(ctx context.Context, id entity.Identity) ([]dto.UserResponse, error) {
	if !uc.policy.IsAdmin(id) {
		return nil, domain.ErrForbidden
	}
	list, err := uc.repo.ListWithRoles(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, dto.UserResponse{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			Role:      u.Role.Name,
			CreatedAt: u.CreatedAt,
		})
	}
	return items, nil
}
