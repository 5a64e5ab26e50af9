package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/mis-libros/internal/application/dto"
	"github.com/jhoicas/mis-libros/internal/domain"
	"github.com/jhoicas/mis-libros/internal/domain/entity"
	"github.com/jhoicas/mis-libros/internal/domain/repository"
	"github.com/jhoicas/mis-libros/pkg/jwt"
)

// MinPasswordLength longitud mínima del nuevo password en el cambio de contraseña.
const MinPasswordLength = 6

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Option ajusta el caso de uso (p. ej. costo de bcrypt en tests).
type Option func(*AuthUseCase)

// WithHashCost cambia el costo de bcrypt.
func WithHashCost(cost int) Option {
	return func(uc *AuthUseCase) { uc.hashCost = cost }
}

// AuthUseCase casos de uso de autenticación: registro, login, cambio de contraseña
// y resolución de la identidad de la sesión.
type AuthUseCase struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	jwtCfg   JWTConfig
	hashCost int
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository, jwtCfg JWTConfig, opts ...Option) *AuthUseCase {
	uc := &AuthUseCase{userRepo: userRepo, roleRepo: roleRepo, jwtCfg: jwtCfg, hashCost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// RoleChoices devuelve los nombres de rol seleccionables en el registro: los de la
// tabla roles que corresponden a un RoleKind conocido.
func (uc *AuthUseCase) RoleChoices(ctx context.Context) ([]string, error) {
	roles, err := uc.roleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		if r.Kind() != entity.RoleDesconocido {
			names = append(names, r.Name)
		}
	}
	return names, nil
}

// RegisterUser crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrInvalidInput si el rol no es válido y ErrDuplicate si username o email ya existen.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Password != in.ConfirmPassword {
		return nil, domain.ErrInvalidInput
	}
	role, err := uc.roleRepo.GetByName(ctx, in.Role)
	if err != nil {
		return nil, err
	}
	if role == nil || role.Kind() == entity.RoleDesconocido {
		return nil, fmt.Errorf("rol %q: %w", in.Role, domain.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.hashCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		RoleID:       role.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user, role.Name), nil
}

// Login verifica email/password, genera el token de sesión y retorna token + usuario.
// Email inexistente y password incorrecto devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	role, err := uc.roleRepo.GetByID(ctx, user.RoleID)
	if err != nil {
		return nil, err
	}
	roleName := ""
	if role != nil {
		roleName = role.Name
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, strconv.FormatInt(user.ID, 10), roleName, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user, roleName),
	}, nil
}

// Identify resuelve el token de sesión a la identidad vigente (usuario + rol actual en DB).
func (uc *AuthUseCase) Identify(ctx context.Context, token string) (*entity.Identity, error) {
	sub, _, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	role, err := uc.roleRepo.GetByID(ctx, user.RoleID)
	if err != nil {
		return nil, err
	}
	id := &entity.Identity{UserID: user.ID, Username: user.Username}
	if role != nil {
		id.Role = role.Kind()
		id.RoleName = role.Name
	}
	return id, nil
}

// ChangePassword verifica el password actual y lo reemplaza. Si el actual no coincide
// devuelve ErrWrongPassword sin modificar nada.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, id entity.Identity, in dto.ChangePasswordRequest) error {
	user, err := uc.userRepo.GetByID(ctx, id.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.OldPassword)); err != nil {
		return domain.ErrWrongPassword
	}
	if len(in.NewPassword) < MinPasswordLength || in.NewPassword != in.ConfirmPassword {
		return domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), uc.hashCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePassword(ctx, user.ID, string(hash), time.Now())
}

func toUserResponse(u *entity.User, roleName string) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      roleName,
		CreatedAt: u.CreatedAt,
	}
}
