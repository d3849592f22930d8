package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medconnect/backend/internal/middleware"
	"github.com/medconnect/backend/internal/store"
	"github.com/medconnect/backend/pkg/utils"
)

type ConnectionsHandler struct {
	Store *store.Store
}

func NewConnectionsHandler(s *store.Store) *ConnectionsHandler {
	return &ConnectionsHandler{Store: s}
}

type connectRequest struct {
	UserID int `json:"userId"`
}

func (h *ConnectionsHandler) Connect(c *fiber.Ctx) error {
	authUser := middleware.GetAuthUser(c)
	if authUser == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var req connectRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.UserID <= 0 {
		return utils.Error(c, fiber.StatusBadRequest, "userId is required")
	}

	connection := h.Store.CreateConnection(authUser.ID, req.UserID)
	return utils.Success(c, fiber.StatusCreated, connection)
}

func (h *ConnectionsHandler) Accept(c *fiber.Ctx) error {
	authUser := middleware.GetAuthUser(c)
	if authUser == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := parseID(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid connection id")
	}

	connection, err := h.Store.AcceptConnection(id, authUser.ID)
	switch err {
	case nil:
		return utils.Success(c, fiber.StatusOK, connection)
	case store.ErrNotRecipient:
		return utils.Error(c, fiber.StatusForbidden, "only the recipient can accept a connection request")
	default:
		return utils.Error(c, fiber.StatusNotFound, "Connection request not found")
	}
}

func (h *ConnectionsHandler) Ignore(c *fiber.Ctx) error {
	authUser := middleware.GetAuthUser(c)
	if authUser == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := parseID(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid connection id")
	}

	switch err := h.Store.IgnoreConnection(id, authUser.ID); err {
	case nil:
		return utils.Success(c, fiber.StatusOK, fiber.Map{"message": "connection request ignored"})
	case store.ErrNotRecipient:
		return utils.Error(c, fiber.StatusForbidden, "only the recipient can ignore a connection request")
	default:
		return utils.Error(c, fiber.StatusNotFound, "Connection request not found")
	}
}
