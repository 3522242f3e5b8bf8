package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/smartresume/api/http/presenter"
	"github.com/artem13815/smartresume/pkg/auth"
	"github.com/artem13815/smartresume/pkg/session"
)

type AuthHandler struct {
	useCase  auth.AuthUseCase
	sessions *session.Manager
}

func NewAuthHandler(useCase auth.AuthUseCase, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{useCase: useCase, sessions: sessions}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles user registration and logs the new user in.
// @Summary Register user
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body registerRequest true "registration payload"
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return presenter.Error(c, http.StatusBadRequest, "username, email and password are required")
	}

	user, err := h.useCase.Register(c.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch err {
		case auth.ErrUserAlreadyExists:
			return presenter.Error(c, http.StatusConflict, "user already exists")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to register user")
		}
	}

	if err := h.establishSession(c, user); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to create session")
	}

	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"message": "registered",
		"user": fiber.Map{
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles user login and establishes a new session.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	user, err := h.useCase.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "invalid credentials")
	}

	if err := h.establishSession(c, user); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to create session")
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"message": "login successful",
		"user": fiber.Map{
			"id":    user.ID.String(),
			"email": user.Email,
		},
	})
}

// Logout tears down the session; the previous cookie is unusable immediately.
// @Summary Logout
// @Tags    auth
// @Produce json
// @Success 200 {object} map[string]any
// @Router  /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := c.Cookies(session.CookieName)
	if err := h.sessions.Revoke(c.Context(), sid); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to logout")
	}
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
		Path:     "/",
	})
	return presenter.Message(c, http.StatusOK, "logged out")
}

func (h *AuthHandler) establishSession(c *fiber.Ctx, user auth.User) error {
	sid, err := h.sessions.Issue(c.Context(), user.ID)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    sid,
		MaxAge:   int(h.sessions.TTL().Seconds()),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode, // cross-origin frontend
		Path:     "/",
	})
	return nil
}
