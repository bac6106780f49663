package auth

import (
	"kasko-gateway/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// LoginInput for login request body.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserFinder abstracts user lookup (GORM in production, doubles in tests).
type UserFinder interface {
	FindByCredentials(username, password string) (*models.User, error)
}

// GormUserFinder implements UserFinder using GORM and bcrypt.
type GormUserFinder struct{ DB *gorm.DB }

func (g *GormUserFinder) FindByCredentials(username, password string) (*models.User, error) {
	return LoginUser(g.DB, LoginInput{Username: username, Password: password})
}

// LoginUser finds a user by username and verifies the password.
func LoginUser(db *gorm.DB, input LoginInput) (*models.User, error) {
	if input.Username == "" || input.Password == "" {
		return nil, ErrCredentialsRequired
	}
	var u models.User
	if err := db.Where("username = ?", input.Username).First(&u).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrInvalidUsername
		}
		return nil, err
	}
	if u.PasswordHash == "" {
		return nil, ErrInvalidUsername
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrIncorrectPassword
	}
	return &u, nil
}

// SessionShape is the user object stored in the session and returned by /me.
type SessionShape struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// VerifyUser validates the session user and returns the shape for /me.
func VerifyUser(sessionUser interface{}) (*SessionShape, error) {
	if sessionUser == nil {
		return nil, ErrNotAuthenticated
	}
	m, ok := sessionUser.(map[string]interface{})
	if !ok {
		return nil, ErrNotAuthenticated
	}
	userID, _ := m["user_id"].(string)
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	return &SessionShape{
		UserID:   userID,
		Username: str(m["username"]),
		Role:     str(m["role"]),
	}, nil
}

func str(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
