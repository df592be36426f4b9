package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/quincaillerie-api/internal/application/dto"
	"github.com/jhoicas/quincaillerie-api/internal/domain"
	"github.com/jhoicas/quincaillerie-api/internal/domain/entity"
	"github.com/jhoicas/quincaillerie-api/internal/domain/repository"
	"github.com/jhoicas/quincaillerie-api/pkg/jwt"
	"github.com/jhoicas/quincaillerie-api/pkg/password"
)

// AuthUseCase casos de uso de autenticación y gestión de cuentas.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   jwt.Config
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg jwt.Config) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password contra un usuario ACTIVO y genera el JWT.
// Usuario inexistente, inactivo o password incorrecto dan el mismo
// ErrUnauthorized: no se filtra cuál de los tres falló.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, strings.TrimSpace(in.Username))
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, domain.ErrUnauthorized
	}
	if !password.Verify(in.Password, user.PasswordHash) {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg, user.ID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	exp := uc.jwtCfg.ExpHours
	if exp <= 0 {
		exp = 24
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: fmt.Sprintf("%dh", exp),
		User:      *toUserResponse(user),
	}, nil
}

// Profile devuelve los datos del usuario autenticado.
func (uc *AuthUseCase) Profile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, domain.ErrNotFound
	}
	return toUserResponse(user), nil
}

// ChangePassword cambia el password del propio usuario: valida el password
// anterior y la fortaleza del nuevo.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID string, in dto.ChangePasswordRequest) error {
	if valid, violations := password.ValidateStrength(in.NewPassword); !valid {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(violations, "; "))
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil || !user.Active {
		return domain.ErrNotFound
	}
	if !password.Verify(in.OldPassword, user.PasswordHash) {
		return fmt.Errorf("%w: password anterior incorrecto", domain.ErrInvalidInput)
	}
	hash, err := password.Hash(in.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(ctx, user)
}

// CreateUser crea un usuario (solo MANAGER vía tabla de permisos). Valida rol
// contra el conjunto cerrado y la fortaleza del password.
func (uc *AuthUseCase) CreateUser(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username requerido", domain.ErrInvalidInput)
	}
	if !entity.IsValidRole(in.Role) {
		return nil, fmt.Errorf("%w: rol inválido, roles válidos: %s",
			domain.ErrInvalidInput, strings.Join(entity.ValidRoles, ", "))
	}
	if valid, violations := password.ValidateStrength(in.Password); !valid {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(violations, "; "))
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: hash,
		Role:         in.Role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ListUsers lista todos los usuarios, activos e inactivos.
func (uc *AuthUseCase) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// DeactivateUser desactiva (soft) un usuario. La auto-desactivación está
// bloqueada: un MANAGER no puede desactivar su propia cuenta.
func (uc *AuthUseCase) DeactivateUser(ctx context.Context, actorID, targetID string) error {
	if actorID == targetID {
		return fmt.Errorf("%w: no puede desactivar su propia cuenta", domain.ErrConflict)
	}
	user, err := uc.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	user.Active = false
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(ctx, user)
}

// ReactivateUser reactiva un usuario desactivado. Escritura directa, sin cascada.
func (uc *AuthUseCase) ReactivateUser(ctx context.Context, targetID string) error {
	user, err := uc.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	user.Active = true
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(ctx, user)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
