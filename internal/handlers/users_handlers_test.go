package handlers

import (
	"net/http"
	"testing"

	"github.com/medconnect/backend/internal/models"
)

func TestUsersEndpoints(t *testing.T) {
	env := setupTestEnv(t)

	_, adminToken := createTestUser(t, env.db, "users-admin", models.RoleAdmin)
	member, memberToken := createTestUser(t, env.db, "users-member", models.RolePatient)

	connected, err := env.db.CreateUser(models.User{
		Username:    "users-connected",
		Password:    "password123",
		Name:        "Dr. Connected Colleague",
		Initials:    "CC",
		Specialty:   "Neurology",
		IsConnected: true,
		Role:        models.RoleDoctor,
	})
	if err != nil {
		t.Fatalf("failed creating connected user: %v", err)
	}

	t.Run("GET /api/users/colleagues returns connected users only", func(t *testing.T) {
		resp := performRequest(t, env.app, http.MethodGet, "/api/users/colleagues", nil, authHeaders(memberToken))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusOK)

		items := dataSlice(t, body)
		if len(items) != 1 {
			t.Fatalf("expected 1 colleague, got %d", len(items))
		}
		colleague := items[0].(map[string]any)
		if int(colleague["id"].(float64)) != connected.ID {
			t.Fatalf("expected colleague id %d, got %v", connected.ID, colleague["id"])
		}
		if colleague["colorClass"] != "bg-secondary/20 text-secondary" {
			t.Fatalf("expected neurology color class, got %v", colleague["colorClass"])
		}
	})

	t.Run("GET /api/users/suggestions returns unconnected users excluding caller", func(t *testing.T) {
		resp := performRequest(t, env.app, http.MethodGet, "/api/users/suggestions", nil, authHeaders(memberToken))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusOK)

		for _, item := range dataSlice(t, body) {
			suggestion := item.(map[string]any)
			if int(suggestion["id"].(float64)) == member.ID {
				t.Fatal("suggestions must not include the caller")
			}
			if int(suggestion["id"].(float64)) == connected.ID {
				t.Fatal("suggestions must not include already connected users")
			}
		}
	})

	t.Run("GET /api/users/profile without record is not found", func(t *testing.T) {
		resp := performRequest(t, env.app, http.MethodGet, "/api/users/profile", nil, authHeaders(memberToken))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusNotFound)
		assertEnvelopeError(t, body, "Profile not found")
	})

	t.Run("GET /api/users/profile merges profile and user fields", func(t *testing.T) {
		env.db.CreateProfile(models.Profile{
			UserID:            member.ID,
			ProfileCompletion: 65,
			RemainingItems:    3,
			NetworkGrowth:     12,
			NetworkGrowthDays: 30,
		})

		resp := performRequest(t, env.app, http.MethodGet, "/api/users/profile", nil, authHeaders(memberToken))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusOK)

		data := dataMap(t, body)
		if int(data["profileCompletion"].(float64)) != 65 {
			t.Fatalf("expected profileCompletion 65, got %v", data["profileCompletion"])
		}
		if data["name"] != member.Name {
			t.Fatalf("expected name %q, got %v", member.Name, data["name"])
		}
	})

	t.Run("PUT /api/users/profile applies a partial update", func(t *testing.T) {
		resp := performJSONRequest(t, env.app, http.MethodPut, "/api/users/profile", map[string]any{
			"profileCompletion": 80,
		}, authHeaders(memberToken))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusOK)

		data := dataMap(t, body)
		if int(data["profileCompletion"].(float64)) != 80 {
			t.Fatalf("expected profileCompletion 80, got %v", data["profileCompletion"])
		}
		if int(data["remainingItems"].(float64)) != 3 {
			t.Fatalf("expected remainingItems untouched at 3, got %v", data["remainingItems"])
		}
	})

	t.Run("PUT /api/users/profile rejects out-of-range completion", func(t *testing.T) {
		resp := performJSONRequest(t, env.app, http.MethodPut, "/api/users/profile", map[string]any{
			"profileCompletion": 140,
		}, authHeaders(memberToken))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusBadRequest)
		assertEnvelopeError(t, body, "profileCompletion must be between 0 and 100")
	})

	t.Run("PUT /api/users/profile rejects empty update", func(t *testing.T) {
		resp := performJSONRequest(t, env.app, http.MethodPut, "/api/users/profile", map[string]any{}, authHeaders(memberToken))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusBadRequest)
		assertEnvelopeError(t, body, "no valid fields to update")
	})

	t.Run("GET /api/users/directory excludes the caller", func(t *testing.T) {
		resp := performRequest(t, env.app, http.MethodGet, "/api/users/directory", nil, authHeaders(memberToken))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusOK)

		for _, item := range dataSlice(t, body) {
			user := item.(map[string]any)
			if int(user["id"].(float64)) == member.ID {
				t.Fatal("directory must not include the caller")
			}
		}
	})

	t.Run("GET /api/users/directory filters by specialty", func(t *testing.T) {
		resp := performRequest(t, env.app, http.MethodGet, "/api/users/directory?specialtyFilter=Neurology", nil, authHeaders(memberToken))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusOK)

		items := dataSlice(t, body)
		if len(items) != 1 {
			t.Fatalf("expected 1 neurologist, got %d", len(items))
		}
	})

	t.Run("GET /api/users/directory searches name, specialty and organization", func(t *testing.T) {
		resp := performRequest(t, env.app, http.MethodGet, "/api/users/directory?searchTerm=colleague", nil, authHeaders(memberToken))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusOK)

		items := dataSlice(t, body)
		if len(items) != 1 {
			t.Fatalf("expected 1 search hit, got %d", len(items))
		}
	})

	t.Run("GET /api/users/directory showConnected keeps connected users only", func(t *testing.T) {
		resp := performRequest(t, env.app, http.MethodGet, "/api/users/directory?showConnected=true", nil, authHeaders(memberToken))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusOK)

		items := dataSlice(t, body)
		if len(items) != 1 {
			t.Fatalf("expected 1 connected user, got %d", len(items))
		}
	})

	t.Run("GET /api/users requires an admin role", func(t *testing.T) {
		resp := performRequest(t, env.app, http.MethodGet, "/api/users", nil, authHeaders(memberToken))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusForbidden)
		assertEnvelopeError(t, body, "insufficient role")
	})

	t.Run("GET /api/users lists everyone for an admin", func(t *testing.T) {
		resp := performRequest(t, env.app, http.MethodGet, "/api/users", nil, authHeaders(adminToken))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusOK)

		if got := len(dataSlice(t, body)); got != 3 {
			t.Fatalf("expected 3 users, got %d", got)
		}
	})

	t.Run("GET /api/specialties is public and sorted", func(t *testing.T) {
		resp := performRequest(t, env.app, http.MethodGet, "/api/specialties", nil, nil)
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusOK)

		items := dataSlice(t, body)
		if len(items) != 2 {
			t.Fatalf("expected 2 distinct specialties, got %d", len(items))
		}
		if items[0] != "Cardiology" || items[1] != "Neurology" {
			t.Fatalf("expected sorted specialties, got %v", items)
		}
	})
}
