package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/andescloud/inventario-service/internal/application/auth"
	"github.com/andescloud/inventario-service/internal/application/dto"
	"github.com/andescloud/inventario-service/internal/domain"
	"github.com/andescloud/inventario-service/internal/domain/entity"
	pkgjwt "github.com/andescloud/inventario-service/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUsers struct {
	byEmail map[string]*entity.User
	created []*entity.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byEmail: make(map[string]*entity.User)}
}

func (r *fakeUsers) Create(_ context.Context, user *entity.User) error {
	if _, ok := r.byEmail[user.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.byEmail[user.Email] = user
	r.created = append(r.created, user)
	return nil
}

func (r *fakeUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func (r *fakeUsers) GetByEmailAndCompany(_ context.Context, email string, companyID int64) (*entity.User, error) {
	u := r.byEmail[email]
	if u == nil || u.CompanyID != companyID {
		return nil, nil
	}
	return u, nil
}

type fakeCompanies struct{}

func (fakeCompanies) GetByID(_ context.Context, id int64) (*entity.Company, error) {
	if id != 1 {
		return nil, nil
	}
	return &entity.Company{ID: 1, Name: "Distribuidora Andes SAS", NIT: "900123456-8", Status: "activa"}, nil
}

var testJWT = auth.JWTConfig{Secret: "secreto-de-test", ExpMinutes: 60, Issuer: "inventario-service-test"}

func newAuthUseCase(users *fakeUsers) *auth.UseCase {
	return auth.NewUseCase(users, fakeCompanies{}, testJWT)
}

// seedUser registra un usuario directamente con password ya hasheado.
func seedUser(t *testing.T, users *fakeUsers, email, password, role, status string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{
		ID:           "00000000-0000-0000-0000-00000000000a",
		CompanyID:    1,
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Usuario Test",
		Role:         role,
		Status:       status,
	}
	users.byEmail[email] = u
	return u
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterUser
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterUser_CreaUsuarioConHashYDefaults(t *testing.T) {
	users := newFakeUsers()
	uc := newAuthUseCase(users)

	out, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:     "nuevo@demo.local",
		Password:  "password123",
		CompanyID: 1,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID, "se asigna un UUID")
	assert.Equal(t, int64(1), out.CompanyID)
	assert.Equal(t, entity.RoleVendedor, out.Role, "sin rol explícito el default es vendedor")
	assert.Equal(t, "nuevo@demo.local", out.Name, "sin nombre explícito se usa el email")
	assert.Equal(t, "active", out.Status)

	require.Len(t, users.created, 1)
	stored := users.created[0]
	assert.NotEqual(t, "password123", stored.PasswordHash, "el password nunca se guarda plano")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")),
		"el hash bcrypt debe verificar contra el password original")
}

func TestRegisterUser_RespetaRolYNombreExplicitos(t *testing.T) {
	users := newFakeUsers()
	uc := newAuthUseCase(users)

	out, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:     "bodega@demo.local",
		Password:  "password123",
		Name:      "Jefe de Bodega",
		CompanyID: 1,
		Role:      entity.RoleBodeguero,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleBodeguero, out.Role)
	assert.Equal(t, "Jefe de Bodega", out.Name)
}

func TestRegisterUser_EmailDuplicadoEnEmpresa_RetornaError(t *testing.T) {
	users := newFakeUsers()
	seedUser(t, users, "existente@demo.local", "password123", entity.RoleVendedor, "active")
	uc := newAuthUseCase(users)

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:     "existente@demo.local",
		Password:  "password123",
		CompanyID: 1,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterUser_EmpresaInexistente_RetornaErrNotFound(t *testing.T) {
	users := newFakeUsers()
	uc := newAuthUseCase(users)

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:     "nuevo@demo.local",
		Password:  "password123",
		CompanyID: 77,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, users.created, "no se persiste nada si la empresa no existe")
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_EmiteTokenConClaims(t *testing.T) {
	users := newFakeUsers()
	u := seedUser(t, users, "admin@demo.local", "password123", entity.RoleAdmin, "active")
	uc := newAuthUseCase(users)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "admin@demo.local", Password: "password123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, companyID, role, err := pkgjwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err, "el token emitido debe ser parseable con el mismo secret")
	assert.Equal(t, u.ID, userID)
	assert.Equal(t, int64(1), companyID)
	assert.Equal(t, entity.RoleAdmin, role)

	assert.Equal(t, "admin@demo.local", out.User.Email)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
}

func TestLogin_PasswordIncorrecto_RetornaErrUnauthorized(t *testing.T) {
	users := newFakeUsers()
	seedUser(t, users, "admin@demo.local", "password123", entity.RoleAdmin, "active")
	uc := newAuthUseCase(users)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "admin@demo.local", Password: "otraclave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailInexistente_RetornaErrUserNotFound(t *testing.T) {
	users := newFakeUsers()
	uc := newAuthUseCase(users)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@demo.local", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_CuentaInactiva_RetornaErrForbidden(t *testing.T) {
	users := newFakeUsers()
	seedUser(t, users, "suspendido@demo.local", "password123", entity.RoleVendedor, "suspended")
	uc := newAuthUseCase(users)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "suspendido@demo.local", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"una cuenta no activa no puede iniciar sesión aunque el password sea correcto")
}
