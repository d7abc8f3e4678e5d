package service

import (
	"coursehub_backend/internal/config"
	"coursehub_backend/internal/model"
	"coursehub_backend/internal/repository"
	"coursehub_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-test-secret-test-secret"
	cfg.JWT.ExpireTime = time.Hour

	return NewAuthService(repository.NewUserRepository(newTestDB(t)), nil, cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	auth := newAuthService(t)

	user := &model.User{Name: "Ada", Email: "ada@example.com", Password: "s3cret!!"}
	require.NoError(t, auth.Register(user))

	// password must never be stored as given
	stored, err := auth.UserRepo.FindByEmail("ada@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!!", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret!!")))
	assert.Equal(t, model.Student, stored.Role)

	token, err := auth.Login("ada@example.com", "s3cret!!")
	require.NoError(t, err)

	claims, err := util.ParseJWT(token, auth.Cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth := newAuthService(t)

	require.NoError(t, auth.Register(&model.User{Name: "Ada", Email: "ada@example.com", Password: "s3cret!!"}))

	err := auth.Register(&model.User{Name: "Other", Email: "ada@example.com", Password: "different"})
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	auth := newAuthService(t)

	require.NoError(t, auth.Register(&model.User{Name: "Ada", Email: "ada@example.com", Password: "s3cret!!"}))

	_, err := auth.Login("ada@example.com", "wrong")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	_, err = auth.Login("nobody@example.com", "s3cret!!")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestLoginRejectsDisabledUser(t *testing.T) {
	auth := newAuthService(t)

	user := &model.User{Name: "Ada", Email: "ada@example.com", Password: "s3cret!!"}
	require.NoError(t, auth.Register(user))
	require.NoError(t, auth.UserRepo.DB.Model(user).Update("disabled", true).Error)

	_, err := auth.Login("ada@example.com", "s3cret!!")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestLogoutWithoutRedisIsNoop(t *testing.T) {
	auth := newAuthService(t)

	assert.NoError(t, auth.Logout("some.token", time.Now().Add(time.Hour)))
	assert.False(t, auth.IsRevoked("some.token"))
}
