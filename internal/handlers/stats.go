package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medconnect/backend/internal/middleware"
	"github.com/medconnect/backend/internal/store"
	"github.com/medconnect/backend/pkg/utils"
)

type StatsHandler struct {
	Store *store.Store
}

func NewStatsHandler(s *store.Store) *StatsHandler {
	return &StatsHandler{Store: s}
}

// List returns the dashboard stat cards of the authenticated user.
func (h *StatsHandler) List(c *fiber.Ctx) error {
	authUser := middleware.GetAuthUser(c)
	if authUser == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	return utils.Success(c, fiber.StatusOK, h.Store.GetStats(authUser.ID))
}
