package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/inventario-api/internal/application/auth"
	"github.com/tu-usuario/inventario-api/internal/application/dto"
	"github.com/tu-usuario/inventario-api/internal/domain"
	"github.com/tu-usuario/inventario-api/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/inventario-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

// fakeUserRepo devuelve siempre el mismo usuario para su email.
type fakeUserRepo struct {
	user *entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error               { return nil }
func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error)    { return nil, nil }
func (r *fakeUserRepo) GetAll() ([]*entity.User, error)           { return nil, nil }
func (r *fakeUserRepo) Update(u *entity.User) error               { return nil }
func (r *fakeUserRepo) Delete(id int64) (bool, error)             { return false, nil }
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	if r.user != nil && r.user.Email == email {
		return r.user, nil
	}
	return nil, nil
}

func newLoginUC(t *testing.T, password string) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	repo := &fakeUserRepo{user: &entity.User{
		ID:           1,
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: string(hash),
		Roles:        []string{"ADMIN"},
	}}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 10,
		Issuer:     "inventario-api-test",
	})
}

func TestLogin_CredencialesValidas(t *testing.T) {
	uc := newLoginUC(t, "secreto123")

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secreto123"})
	require.NoError(t, err)
	require.NotNil(t, out)
	require.NotEmpty(t, out.Token)

	// El token lleva sub=email y los roles del usuario, y expira en 10 minutos.
	claims, err := pkgjwt.ParseClaims(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", claims.Subject)
	assert.Equal(t, []string{"ADMIN"}, claims.Roles)
	assert.Equal(t, 10*time.Minute, claims.ExpiresAt.Sub(claims.IssuedAt.Time))

	// expiration_date es RFC 3339 y coincide con el exp del token.
	expDate, err := time.Parse(time.RFC3339, out.ExpirationDate)
	require.NoError(t, err)
	assert.WithinDuration(t, claims.ExpiresAt.Time, expDate, time.Second)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc := newLoginUC(t, "secreto123")

	_, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "otro"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailDesconocido(t *testing.T) {
	uc := newLoginUC(t, "secreto123")

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
