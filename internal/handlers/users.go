package handlers

import (
	"math/rand"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/medconnect/backend/internal/middleware"
	"github.com/medconnect/backend/internal/store"
	"github.com/medconnect/backend/pkg/utils"
)

type UsersHandler struct {
	Store *store.Store
}

func NewUsersHandler(s *store.Store) *UsersHandler {
	return &UsersHandler{Store: s}
}

func (h *UsersHandler) Colleagues(c *fiber.Ctx) error {
	authUser := middleware.GetAuthUser(c)
	if authUser == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	colleagues := h.Store.GetUserColleagues(authUser.ID)

	views := make([]fiber.Map, 0, len(colleagues))
	for _, colleague := range colleagues {
		views = append(views, fiber.Map{
			"id":         colleague.ID,
			"name":       colleague.Name,
			"initials":   colleague.Initials,
			"colorClass": colorClassForSpecialty(colleague.Specialty),
		})
	}

	return utils.Success(c, fiber.StatusOK, views)
}

func (h *UsersHandler) Suggestions(c *fiber.Ctx) error {
	authUser := middleware.GetAuthUser(c)
	if authUser == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	suggestions := h.Store.GetUserSuggestions(authUser.ID)

	views := make([]fiber.Map, 0, len(suggestions))
	for _, suggestion := range suggestions {
		views = append(views, fiber.Map{
			"id":           suggestion.ID,
			"name":         suggestion.Name,
			"specialty":    suggestion.Specialty,
			"organization": suggestion.Organization,
			"initials":     suggestion.Initials,
			"colorClass":   colorClassForSpecialty(suggestion.Specialty),
			// Placeholder until mutual connections are computed for real.
			"mutualConnections": rand.Intn(15) + 1,
		})
	}

	return utils.Success(c, fiber.StatusOK, views)
}

func (h *UsersHandler) Profile(c *fiber.Ctx) error {
	authUser := middleware.GetAuthUser(c)
	if authUser == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	user, ok := h.Store.GetUser(authUser.ID)
	if !ok {
		return utils.Error(c, fiber.StatusNotFound, "User not found")
	}

	profile, ok := h.Store.GetProfile(user.ID)
	if !ok {
		return utils.Error(c, fiber.StatusNotFound, "Profile not found")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"id":                profile.ID,
		"userId":            profile.UserID,
		"profileCompletion": profile.ProfileCompletion,
		"remainingItems":    profile.RemainingItems,
		"networkGrowth":     profile.NetworkGrowth,
		"networkGrowthDays": profile.NetworkGrowthDays,
		"name":              user.Name,
		"title":             user.Title,
		"organization":      user.Organization,
		"initials":          user.Initials,
	})
}

type updateProfileRequest struct {
	ProfileCompletion *int `json:"profileCompletion"`
	RemainingItems    *int `json:"remainingItems"`
	NetworkGrowth     *int `json:"networkGrowth"`
	NetworkGrowthDays *int `json:"networkGrowthDays"`
}

func (h *UsersHandler) UpdateProfile(c *fiber.Ctx) error {
	authUser := middleware.GetAuthUser(c)
	if authUser == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if req.ProfileCompletion == nil && req.RemainingItems == nil &&
		req.NetworkGrowth == nil && req.NetworkGrowthDays == nil {
		return utils.Error(c, fiber.StatusBadRequest, "no valid fields to update")
	}

	if req.ProfileCompletion != nil && (*req.ProfileCompletion < 0 || *req.ProfileCompletion > 100) {
		return utils.Error(c, fiber.StatusBadRequest, "profileCompletion must be between 0 and 100")
	}

	profile, ok := h.Store.UpdateProfile(authUser.ID, store.ProfileUpdate{
		ProfileCompletion: req.ProfileCompletion,
		RemainingItems:    req.RemainingItems,
		NetworkGrowth:     req.NetworkGrowth,
		NetworkGrowthDays: req.NetworkGrowthDays,
	})
	if !ok {
		return utils.Error(c, fiber.StatusNotFound, "Profile not found")
	}

	return utils.Success(c, fiber.StatusOK, profile)
}

func (h *UsersHandler) ConnectionRequests(c *fiber.Ctx) error {
	authUser := middleware.GetAuthUser(c)
	if authUser == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	requests := h.Store.GetConnectionRequests(authUser.ID)
	return utils.Success(c, fiber.StatusOK, requests)
}

// Directory lists every other user, optionally narrowed by specialty,
// connection status and a free-text search over name, specialty and
// organization.
func (h *UsersHandler) Directory(c *fiber.Ctx) error {
	authUser := middleware.GetAuthUser(c)
	if authUser == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	searchTerm := strings.TrimSpace(c.Query("searchTerm"))
	specialtyFilter := c.Query("specialtyFilter")
	showConnected := c.Query("showConnected") == "true"

	users := h.Store.GetUsers()
	if specialtyFilter != "" && specialtyFilter != "all" {
		users = h.Store.GetUsersBySpecialty(specialtyFilter)
	}

	filtered := users[:0:0]
	for _, user := range users {
		if user.ID == authUser.ID {
			continue
		}
		if showConnected && !user.IsConnected {
			continue
		}
		filtered = append(filtered, user)
	}

	if searchTerm != "" {
		filtered = store.SearchUsers(filtered, searchTerm)
	}

	return utils.Success(c, fiber.StatusOK, filtered)
}

func (h *UsersHandler) List(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, h.Store.GetUsers())
}

func (h *UsersHandler) Specialties(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, h.Store.GetSpecialties())
}
