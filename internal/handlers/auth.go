package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/medconnect/backend/internal/middleware"
	"github.com/medconnect/backend/internal/models"
	"github.com/medconnect/backend/internal/store"
	"github.com/medconnect/backend/pkg/logger"
	"github.com/medconnect/backend/pkg/utils"
)

type AuthHandler struct {
	Store *store.Store
}

func NewAuthHandler(s *store.Store) *AuthHandler {
	return &AuthHandler{Store: s}
}

type signupRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	Name         string `json:"name"`
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Specialty    string `json:"specialty"`
	Location     string `json:"location"`
	Initials     string `json:"initials"`
}

// Signup validates the role against the closed enum, then the required
// fields, then username availability, in that order.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Name = strings.TrimSpace(req.Name)

	role := models.Role(req.Role)
	if !role.Valid() {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid role provided.")
	}

	if req.Username == "" || req.Password == "" || req.Name == "" {
		return utils.Error(c, fiber.StatusBadRequest, "Username, password, role, and name are required.")
	}

	user, err := h.Store.CreateUser(models.User{
		Username:     req.Username,
		Password:     req.Password,
		Name:         req.Name,
		Title:        req.Title,
		Organization: req.Organization,
		Specialty:    req.Specialty,
		Location:     req.Location,
		Initials:     req.Initials,
		Role:         role,
	})
	if err == store.ErrUsernameTaken {
		return utils.Error(c, fiber.StatusBadRequest, "Username already exists.")
	}
	if err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, "failed creating user")
	}

	logger.Info("user_signup", map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     string(user.Role),
	})

	token, err := utils.GenerateToken(&user)
	if err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, "failed generating token")
	}

	return utils.Success(c, fiber.StatusCreated, fiber.Map{"token": token, "user": user})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login reports the same message for unknown usernames and wrong passwords
// so usernames cannot be enumerated.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	req.Username = strings.TrimSpace(req.Username)

	if req.Username == "" || req.Password == "" {
		return utils.Error(c, fiber.StatusBadRequest, "Username and password are required.")
	}

	user, ok := h.Store.GetUserByUsername(req.Username)
	if !ok {
		logger.Warn("login_failed_user_not_found", map[string]interface{}{
			"username": req.Username,
			"ip":       c.IP(),
		})
		return utils.Error(c, fiber.StatusUnauthorized, "Invalid credentials.")
	}

	if !h.Store.VerifyPassword(req.Password, user.Password) {
		logger.Warn("login_failed_invalid_password", map[string]interface{}{
			"username": req.Username,
			"ip":       c.IP(),
		})
		return utils.Error(c, fiber.StatusUnauthorized, "Invalid credentials.")
	}

	logger.InfoWithUser(strconv.Itoa(user.ID), "user_login", map[string]interface{}{
		"username": user.Username,
	})

	token, err := utils.GenerateToken(&user)
	if err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, "failed generating token")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"token": token, "user": user})
}

// Current resolves the token identity back to the stored user; the record
// can vanish between issuance and use only by a store reset, but the 404 is
// kept distinct from auth failures.
func (h *AuthHandler) Current(c *fiber.Ctx) error {
	authUser := middleware.GetAuthUser(c)
	if authUser == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	user, ok := h.Store.GetUser(authUser.ID)
	if !ok {
		return utils.Error(c, fiber.StatusNotFound, "User not found")
	}

	return utils.Success(c, fiber.StatusOK, user)
}
