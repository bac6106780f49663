package auth

import (
	"context"
	"errors"
	"time"

	"kasko-gateway/internal/middleware"
	"kasko-gateway/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// Handlers bundles the auth endpoints.
type Handlers struct {
	UserFinder UserFinder
	Rdb        *redis.Client
	Config     middleware.SessionConfig
}

// Login POST /api/v1/auth/login
func (h *Handlers) Login(c *fiber.Ctx) error {
	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, ErrCredentialsRequired.Error(), 400, nil)
	}
	if h.UserFinder == nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}

	user, err := h.UserFinder.FindByCredentials(input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrCredentialsRequired):
			return response.Error(c, err.Error(), 400, nil)
		case errors.Is(err, ErrInvalidUsername), errors.Is(err, ErrIncorrectPassword):
			return response.Error(c, err.Error(), 401, nil)
		default:
			return response.Error(c, "Internal Server Error", 500, nil)
		}
	}

	sid := middleware.RegenerateSessionID(c)
	sessionUser := middleware.SessionUser{
		UserID:   user.UserID.String(),
		Username: user.Username,
		Role:     user.Role,
	}
	middleware.SetSessionUser(c, sessionUser)

	cookie := middleware.SessionCookieConfig(h.Config)
	cookie.Value = sid
	c.Cookie(&cookie)

	return response.Success(c, "Logged in", sessionUser)
}

// Me GET /api/v1/auth/me
func (h *Handlers) Me(c *fiber.Ctx) error {
	shape, err := VerifyUser(middleware.GetUser(c))
	if err != nil {
		return response.Unauthorized(c, err.Error())
	}
	return response.Success(c, "", shape)
}

// Logout DELETE /api/v1/auth/logout
func (h *Handlers) Logout(c *fiber.Ctx) error {
	sid := middleware.GetSessionID(c)
	if sid != "" && h.Rdb != nil {
		h.Rdb.Del(context.Background(), middleware.SessionRedisPrefix+sid)
	}
	middleware.DestroySession(c)

	cookie := middleware.SessionCookieConfig(h.Config)
	cookie.Value = ""
	cookie.MaxAge = 0
	cookie.Expires = time.Now().Add(-time.Hour)
	c.Cookie(&cookie)

	return response.Success(c, "Logged out", nil)
}
