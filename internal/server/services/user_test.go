package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/printflow/printflow/internal/common"
	"github.com/printflow/printflow/internal/server/auth"
	"github.com/printflow/printflow/internal/server/config"
	"github.com/printflow/printflow/internal/server/models"
	"github.com/printflow/printflow/internal/server/repositories/users"
)

func newTestUserService(t *testing.T) (*UserService, *users.MemoryRepository) {
	t.Helper()
	repo := users.NewMemoryRepository()
	cfg := &config.Config{
		SecretKey:                   "test-secret",
		AccessTokenValidityDuration: 30 * time.Minute,
	}
	return NewUserService(repo, cfg), repo
}

func registerAdmin(t *testing.T, svc *UserService) *models.Profile {
	t.Helper()
	p, err := svc.Register(context.Background(), "Admin User", "admin@x.com", "Correct1!", models.RoleAdmin)
	require.NoError(t, err)
	return p
}

func TestLogin_Success(t *testing.T) {
	svc, _ := newTestUserService(t)
	registerAdmin(t, svc)

	res, err := svc.Login(context.Background(), "admin@x.com", "Correct1!")
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	require.Equal(t, "admin@x.com", res.User.Email)
	require.Equal(t, models.RoleAdmin, res.User.Role)

	// The token must resolve back to the same user.
	userID, err := auth.GetUserIDFromToken(res.Token, []byte("test-secret"))
	require.NoError(t, err)
	require.Equal(t, res.User.ID, userID)
}

func TestLogin_EmailNormalized(t *testing.T) {
	svc, _ := newTestUserService(t)
	registerAdmin(t, svc)

	res, err := svc.Login(context.Background(), "  Admin@X.COM  ", "Correct1!")
	require.NoError(t, err)
	require.Equal(t, "admin@x.com", res.User.Email)
}

func TestLogin_NonEnumeration(t *testing.T) {
	svc, _ := newTestUserService(t)
	registerAdmin(t, svc)

	_, wrongPassErr := svc.Login(context.Background(), "admin@x.com", "wrong")
	_, unknownEmailErr := svc.Login(context.Background(), "ghost@x.com", "whatever")

	// Wrong password and unknown email must be indistinguishable.
	require.ErrorIs(t, wrongPassErr, common.ErrUnauthorized)
	require.ErrorIs(t, unknownEmailErr, common.ErrUnauthorized)
	require.Equal(t, wrongPassErr.Error(), unknownEmailErr.Error())
}

func TestLogin_TouchesLastLogin(t *testing.T) {
	svc, repo := newTestUserService(t)
	p := registerAdmin(t, svc)

	_, err := svc.Login(context.Background(), "admin@x.com", "Correct1!")
	require.NoError(t, err)

	stored, err := repo.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.LastLogin)
}

func TestRegister_DefaultsToStaff(t *testing.T) {
	svc, _ := newTestUserService(t)

	p, err := svc.Register(context.Background(), "Juan Dela Cruz", "staff@x.com", "Secret1!", "")
	require.NoError(t, err)
	require.Equal(t, models.RoleStaff, p.Role)
}

func TestRegister_InvalidRole(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.Register(context.Background(), "X", "x@x.com", "Secret1!", "superuser")
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestRegister_MissingFields(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "x@x.com", "pw", models.RoleStaff)
	require.ErrorIs(t, err, common.ErrValidation)

	_, err = svc.Register(ctx, "X", "", "pw", models.RoleStaff)
	require.ErrorIs(t, err, common.ErrValidation)

	_, err = svc.Register(ctx, "X", "x@x.com", "", models.RoleStaff)
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newTestUserService(t)
	registerAdmin(t, svc)

	_, err := svc.Register(context.Background(), "Imposter", "ADMIN@x.com", "Other1!", models.RoleStaff)
	require.ErrorIs(t, err, common.ErrConflict)
}

func TestRegister_NeverEchoesPasswordHash(t *testing.T) {
	svc, repo := newTestUserService(t)

	p, err := svc.Register(context.Background(), "X", "x@x.com", "Secret1!", models.RoleStaff)
	require.NoError(t, err)

	stored, err := repo.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.NotEmpty(t, stored.PasswordHash)
	require.NotEqual(t, "Secret1!", stored.PasswordHash)
}

func TestAuthenticate_RoundTrip(t *testing.T) {
	svc, _ := newTestUserService(t)
	registerAdmin(t, svc)

	res, err := svc.Login(context.Background(), "admin@x.com", "Correct1!")
	require.NoError(t, err)

	user, err := svc.Authenticate(context.Background(), res.Token)
	require.NoError(t, err)
	require.Equal(t, res.User.ID, user.ID)
}

func TestAuthenticate_BadToken(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.Authenticate(context.Background(), "garbage")
	require.ErrorIs(t, err, common.ErrInvalidToken)
}
