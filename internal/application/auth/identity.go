package auth

import (
	"context"

	"github.com/jhoicas/quincaillerie-api/internal/domain"
	"github.com/jhoicas/quincaillerie-api/internal/domain/repository"
	"github.com/jhoicas/quincaillerie-api/pkg/jwt"
)

// Identity es la identidad resuelta de una petición: los claims del token
// ya contrastados contra el estado vivo del usuario en la DB.
type Identity struct {
	UserID   string
	Username string
	Role     string
}

// IdentityService resuelve tokens a identidades vivas. Es el único puente
// entre el Token Service y el estado persistido de usuarios: un usuario
// desactivado deja de resolver en la siguiente petición, sin esperar a que
// expire su token.
type IdentityService struct {
	userRepo repository.UserRepository
	jwtCfg   jwt.Config
}

// NewIdentityService construye el resolver de identidades.
func NewIdentityService(userRepo repository.UserRepository, jwtCfg jwt.Config) *IdentityService {
	return &IdentityService{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Resolve verifica el token y carga el usuario por el subject del claim.
// Falla con jwt.ErrTokenExpired / jwt.ErrTokenInvalid según el token, y con
// domain.ErrUnauthorized si el usuario no existe o está desactivado.
func (s *IdentityService) Resolve(ctx context.Context, token string) (*Identity, error) {
	claims, err := jwt.Parse(s.jwtCfg, token)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, domain.ErrUnauthorized
	}
	// El rol sale de la DB, no del claim: un cambio de rol aplica de inmediato.
	return &Identity{UserID: user.ID, Username: user.Username, Role: user.Role}, nil
}

// ResolveOptional resuelve la identidad si hay header con token válido;
// nunca falla. Header ausente, token inválido o usuario inactivo dan nil.
func (s *IdentityService) ResolveOptional(ctx context.Context, authHeader string) *Identity {
	token, ok := jwt.ExtractFromHeader(authHeader)
	if !ok {
		return nil
	}
	identity, err := s.Resolve(ctx, token)
	if err != nil {
		return nil
	}
	return identity
}
