package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/maisonlila/restaurant-booking/internal/repository"
	"github.com/maisonlila/restaurant-booking/internal/utils"
)

// AuthHandler implements the staff login endpoint.  There is no public
// registration: accounts are provisioned by the seeder.
type AuthHandler struct {
	Users     *repository.UserRepo
	JWTSecret string
	TokenTTL  int // minutes
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(users *repository.UserRepo, jwtSecret string, ttlMin int) *AuthHandler {
	return &AuthHandler{Users: users, JWTSecret: jwtSecret, TokenTTL: ttlMin}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /v1/auth/login.  A wrong email and a wrong password
// produce the same 401 so the endpoint does not leak which accounts exist.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if req.Email == "" || len(req.Password) < 6 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "email and password are required"})
	}

	user, err := h.Users.GetActiveByEmail(c.Request().Context(), req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid credentials"})
		}
		c.Logger().Errorf("login lookup: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid credentials"})
	}

	token, err := utils.NewAccessToken(h.JWTSecret, user.ID, user.Role, h.TokenTTL)
	if err != nil {
		c.Logger().Errorf("sign token: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"access_token": token.Token,
		"expires_at":   token.Exp.Format(time.RFC3339),
	})
}
