// Package auth implements access control: login, hawker registration and the
// first-run default admin. The core is stateless between calls; the actor is
// always passed in explicitly, never read from ambient state.
package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/zuberiservices/hawker-ledger/internal/application/dto"
	"github.com/zuberiservices/hawker-ledger/internal/domain"
	"github.com/zuberiservices/hawker-ledger/internal/domain/entity"
	"github.com/zuberiservices/hawker-ledger/internal/domain/repository"
	"github.com/zuberiservices/hawker-ledger/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login, hawker registration and bootstrap.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase builds the use case.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifies username/password and returns a signed token plus the user.
// An unknown username and a wrong password both return ErrAuthenticationFailed
// so the caller cannot tell which half was wrong.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Burn a bcrypt comparison anyway so timing does not reveal whether
		// the username exists.
		_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5B0XGXyT1R0nKqVrQsrmOqVYi6cO."), []byte(in.Password))
		return nil, domain.ErrAuthenticationFailed
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrAuthenticationFailed
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// RegisterHawker creates a hawker account. Only an admin actor may register
// users; anything else returns ErrForbidden. A taken username returns
// ErrDuplicateUsername and leaves the identity store unchanged.
func (uc *AuthUseCase) RegisterHawker(actorRole string, in dto.RegisterHawkerRequest) (*dto.UserResponse, error) {
	if actorRole != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrValidation
	}
	existing, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateUsername
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := in.DisplayName
	if name == "" {
		name = in.Username
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         entity.RoleHawker,
		DisplayName:  name,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ListHawkers returns all registered hawkers (admin view).
func (uc *AuthUseCase) ListHawkers(actorRole string) ([]dto.UserResponse, error) {
	if actorRole != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	hawkers, err := uc.userRepo.ListHawkers()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(hawkers))
	for _, h := range hawkers {
		out = append(out, *toUserResponse(h))
	}
	return out, nil
}

// EnsureDefaultAdmin creates the bootstrap admin when the identity store is
// empty, so a fresh deployment is reachable. A no-op otherwise.
func (uc *AuthUseCase) EnsureDefaultAdmin(username, password, displayName string) (created bool, err error) {
	count, err := uc.userRepo.Count()
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	admin := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		DisplayName:  displayName,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(admin); err != nil {
		return false, err
	}
	return true, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Role:        u.Role,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}
