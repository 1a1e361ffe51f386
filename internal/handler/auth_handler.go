package handler

import (
	"os"
	"path/filepath"
	"time"

	"hr-payroll/internal/middleware"
	"hr-payroll/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type AuthHandler struct {
	auth      *usecase.AuthUsecase
	staticDir string
}

func NewAuthHandler(auth *usecase.AuthUsecase, staticDir string) *AuthHandler {
	return &AuthHandler{auth: auth, staticDir: staticDir}
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Index is the dashboard page; the session middleware has already run.
func (h *AuthHandler) Index(c *fiber.Ctx) error {
	if page := h.page("index.html"); page != "" {
		return c.SendFile(page)
	}
	return ok(c, fiber.Map{"message": "HR payroll dashboard"})
}

func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	if page := h.page("login.html"); page != "" {
		return c.SendFile(page)
	}
	return ok(c, fiber.Map{"message": "POST username and password to /login"})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}

	token, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		log.Warn().Str("username", req.Username).Msg("login rejected")
		return fail(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.auth.TTL()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return ok(c, fiber.Map{"message": "Login successful"})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.ClearCookie(middleware.SessionCookie)
	return c.Redirect("/login")
}

func (h *AuthHandler) page(name string) string {
	if h.staticDir == "" {
		return ""
	}
	path := filepath.Join(h.staticDir, name)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
