package auth

import (
	"testing"

	"kasko-gateway/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupAuthDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &models.User{Username: username, PasswordHash: string(hash), Role: "operator"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestLoginUser_Success(t *testing.T) {
	db := setupAuthDB(t)
	createUser(t, db, "operator1", "password123")

	u, err := LoginUser(db, LoginInput{Username: "operator1", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "operator1", u.Username)
	assert.Equal(t, "operator", u.Role)
}

func TestLoginUser_MissingCredentials(t *testing.T) {
	db := setupAuthDB(t)
	_, err := LoginUser(db, LoginInput{Username: "operator1"})
	assert.ErrorIs(t, err, ErrCredentialsRequired)
}

func TestLoginUser_UnknownUsername(t *testing.T) {
	db := setupAuthDB(t)
	_, err := LoginUser(db, LoginInput{Username: "nobody", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidUsername)
}

func TestLoginUser_WrongPassword(t *testing.T) {
	db := setupAuthDB(t)
	createUser(t, db, "operator1", "password123")

	_, err := LoginUser(db, LoginInput{Username: "operator1", Password: "wrong"})
	assert.ErrorIs(t, err, ErrIncorrectPassword)
}

func TestVerifyUser(t *testing.T) {
	shape, err := VerifyUser(map[string]interface{}{
		"user_id":  "abc",
		"username": "operator1",
		"role":     "operator",
	})
	require.NoError(t, err)
	assert.Equal(t, "abc", shape.UserID)
	assert.Equal(t, "operator1", shape.Username)

	_, err = VerifyUser(nil)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = VerifyUser(map[string]interface{}{"username": "no-id"})
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = VerifyUser("not a map")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}
