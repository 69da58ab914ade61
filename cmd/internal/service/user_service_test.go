package service

import (
	"net/http"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"schedulr/cmd/internal/domain/sqlite"
	"schedulr/cmd/internal/domain/sqlite/repository"
	"schedulr/cmd/internal/utils"
	"schedulr/cmd/internal/utils/validators"
)

func newTestUserService(t *testing.T, db *gorm.DB) *DefaultUserService {
	t.Helper()
	validate := validator.New()
	require.NoError(t, validate.RegisterValidation("iso8601", validators.IsIso8601))
	require.NoError(t, validate.RegisterValidation("nospaces", validators.NoWhiteSpaces))
	return NewUserService(repository.NewUserRepository(db), validate, []byte("service-test-secret"), time.Hour)
}

func TestUserRegistration(t *testing.T) {
	t.Run("register and login", func(t *testing.T) {
		db := setupTestDB(t)
		require.NoError(t, sqlite.Seed(db, "adminpassword"))
		svc := newTestUserService(t, db)

		apierr := svc.Register(&RegisterRequest{Username: "alice", Password: "pw", Role: "user"})
		require.Nil(t, apierr)

		resp, apierr := svc.Login(&LoginRequest{Username: "alice", Password: "pw"})
		require.Nil(t, apierr)
		require.NotEmpty(t, resp.Token)

		data, err := utils.ParseTokenData(resp.Token, []byte("service-test-secret"))
		require.NoError(t, err)
		assert.Equal(t, "alice", data.Username)
	})

	t.Run("missing fields", func(t *testing.T) {
		db := setupTestDB(t)
		require.NoError(t, sqlite.Seed(db, "adminpassword"))
		svc := newTestUserService(t, db)

		apierr := svc.Register(&RegisterRequest{Username: "alice"})
		require.NotNil(t, apierr)
		assert.Equal(t, http.StatusBadRequest, apierr.Code())
		assert.Equal(t, "Username, password, and role are required.", apierr.Error())
	})

	t.Run("username with spaces rejected", func(t *testing.T) {
		db := setupTestDB(t)
		require.NoError(t, sqlite.Seed(db, "adminpassword"))
		svc := newTestUserService(t, db)

		apierr := svc.Register(&RegisterRequest{Username: "al ice", Password: "pw", Role: "user"})
		require.NotNil(t, apierr)
		assert.Equal(t, http.StatusBadRequest, apierr.Code())
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		db := setupTestDB(t)
		require.NoError(t, sqlite.Seed(db, "adminpassword"))
		svc := newTestUserService(t, db)

		apierr := svc.Register(&RegisterRequest{Username: "alice", Password: "pw", Role: "user", Email: "a@example.org"})
		require.Nil(t, apierr)

		apierr = svc.Register(&RegisterRequest{Username: "bob", Password: "pw", Role: "user", Email: "a@example.org"})
		require.NotNil(t, apierr)
		assert.Equal(t, "Email already registered. Please login or use a different email.", apierr.Error())
	})

	t.Run("email is optional and may be omitted twice", func(t *testing.T) {
		db := setupTestDB(t)
		require.NoError(t, sqlite.Seed(db, "adminpassword"))
		svc := newTestUserService(t, db)

		require.Nil(t, svc.Register(&RegisterRequest{Username: "alice", Password: "pw", Role: "user"}))
		require.Nil(t, svc.Register(&RegisterRequest{Username: "bob", Password: "pw", Role: "user"}))

		users, apierr := svc.GetUsers()
		require.Nil(t, apierr)
		assert.Len(t, users, 3)
	})

	t.Run("stored password is hashed", func(t *testing.T) {
		db := setupTestDB(t)
		require.NoError(t, sqlite.Seed(db, "adminpassword"))
		svc := newTestUserService(t, db)

		require.Nil(t, svc.Register(&RegisterRequest{Username: "alice", Password: "pw", Role: "user"}))

		user, err := repository.NewUserRepository(db).FindByUsername("alice")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.NotEqual(t, "pw", user.Password)
		assert.True(t, user.HasRole("user"))
	})
}

func TestUserUpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, sqlite.Seed(db, "adminpassword"))
	svc := newTestUserService(t, db)

	require.Nil(t, svc.Register(&RegisterRequest{Username: "alice", Password: "pw", Role: "user"}))
	user, err := repository.NewUserRepository(db).FindByUsername("alice")
	require.NoError(t, err)
	require.NotNil(t, user)

	t.Run("promote to admin", func(t *testing.T) {
		resp, apierr := svc.UpdateUser(user.ID, &UpdateUserRequest{Role: "admin"})
		require.Nil(t, apierr)
		assert.Contains(t, resp.Roles, "admin")
	})

	t.Run("rename collision rejected", func(t *testing.T) {
		_, apierr := svc.UpdateUser(user.ID, &UpdateUserRequest{Username: "admin"})
		require.NotNil(t, apierr)
		assert.Equal(t, http.StatusBadRequest, apierr.Code())
	})

	t.Run("delete", func(t *testing.T) {
		require.Nil(t, svc.DeleteUser(user.ID))

		apierr := svc.DeleteUser(user.ID)
		require.NotNil(t, apierr)
		assert.Equal(t, http.StatusNotFound, apierr.Code())
	})
}
