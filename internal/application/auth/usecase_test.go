package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zuberiservices/hawker-ledger/internal/application/auth"
	"github.com/zuberiservices/hawker-ledger/internal/application/dto"
	"github.com/zuberiservices/hawker-ledger/internal/domain"
	"github.com/zuberiservices/hawker-ledger/internal/domain/entity"
)

const testSecret = "test-secret-key-for-unit-tests"

// fakeUserRepo is an in-memory identity store. Create enforces username
// uniqueness the way the DB unique constraint does.
type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	for _, u := range r.users {
		if u.Username == user.Username {
			return domain.ErrDuplicateUsername
		}
	}
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ListHawkers() ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.IsHawker() {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Count() (int, error) { return len(r.users), nil }

func newUseCase() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := &fakeUserRepo{}
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "hawker-ledger-test",
	})
	return uc, repo
}

func registerAli(t *testing.T, uc *auth.AuthUseCase) *dto.UserResponse {
	t.Helper()
	user, err := uc.RegisterHawker(entity.RoleAdmin, dto.RegisterHawkerRequest{
		Username: "ali", Password: "ali-secret", DisplayName: "Ali",
	})
	require.NoError(t, err)
	return user
}

func TestRegisterHawker_CreatesHawker(t *testing.T) {
	uc, repo := newUseCase()

	user := registerAli(t, uc)
	assert.Equal(t, entity.RoleHawker, user.Role)
	assert.Equal(t, "Ali", user.DisplayName)
	require.Len(t, repo.users, 1)
	assert.NotEqual(t, "ali-secret", repo.users[0].PasswordHash, "raw secret must never be stored")
}

func TestRegisterHawker_NonAdminForbidden(t *testing.T) {
	uc, repo := newUseCase()

	_, err := uc.RegisterHawker(entity.RoleHawker, dto.RegisterHawkerRequest{
		Username: "ali", Password: "ali-secret",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, repo.users)
}

// Registering a taken username always fails with DuplicateUsername and leaves
// the identity store unchanged.
func TestRegisterHawker_DuplicateUsername(t *testing.T) {
	uc, repo := newUseCase()
	registerAli(t, uc)

	_, err := uc.RegisterHawker(entity.RoleAdmin, dto.RegisterHawkerRequest{
		Username: "ali", Password: "other-secret", DisplayName: "Another Ali",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
	require.Len(t, repo.users, 1)
	assert.Equal(t, "Ali", repo.users[0].DisplayName)
}

func TestLogin_Succeeds(t *testing.T) {
	uc, _ := newUseCase()
	registerAli(t, uc)

	out, err := uc.Login(dto.LoginRequest{Username: "ali", Password: "ali-secret"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "ali", out.User.Username)
	assert.Equal(t, entity.RoleHawker, out.User.Role)
}

// Wrong password and unknown username must be indistinguishable.
func TestLogin_UniformFailure(t *testing.T) {
	uc, _ := newUseCase()
	registerAli(t, uc)

	_, wrongPass := uc.Login(dto.LoginRequest{Username: "ali", Password: "nope"})
	_, unknownUser := uc.Login(dto.LoginRequest{Username: "nobody", Password: "nope"})

	assert.ErrorIs(t, wrongPass, domain.ErrAuthenticationFailed)
	assert.ErrorIs(t, unknownUser, domain.ErrAuthenticationFailed)
	assert.Equal(t, wrongPass, unknownUser, "the caller must not learn which half was wrong")
}

func TestListHawkers_AdminOnly(t *testing.T) {
	uc, _ := newUseCase()
	registerAli(t, uc)

	hawkers, err := uc.ListHawkers(entity.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, hawkers, 1)

	_, err = uc.ListHawkers(entity.RoleHawker)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEnsureDefaultAdmin_OnlyOnEmptyStore(t *testing.T) {
	uc, repo := newUseCase()

	created, err := uc.EnsureDefaultAdmin("admin", "admin123", "System Admin")
	require.NoError(t, err)
	assert.True(t, created)
	require.Len(t, repo.users, 1)
	assert.Equal(t, entity.RoleAdmin, repo.users[0].Role)

	// Second run is a no-op.
	created, err = uc.EnsureDefaultAdmin("admin", "admin123", "System Admin")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Len(t, repo.users, 1)

	// The bootstrap admin can log in.
	out, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
}
