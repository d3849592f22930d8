package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/medconnect/backend/internal/middleware"
	"github.com/medconnect/backend/internal/models"
	"github.com/medconnect/backend/internal/store"
	"github.com/medconnect/backend/pkg/logger"
	"github.com/medconnect/backend/pkg/utils"
)

type testEnv struct {
	app *fiber.App
	db  *store.Store
}

var testSetupOnce sync.Once

// setupTestEnv builds a fresh empty store and an app wired with the full
// route table, mirroring cmd/server.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	testSetupOnce.Do(func() {
		logger.Init()
		utils.ConfigureJWT("test-secret", 24)
	})

	db := store.New()

	authHandler := NewAuthHandler(db)
	usersHandler := NewUsersHandler(db)
	connectionsHandler := NewConnectionsHandler(db)
	postsHandler := NewPostsHandler(db)
	documentsHandler := NewDocumentsHandler(db, t.TempDir())
	eventsHandler := NewEventsHandler(db)
	statsHandler := NewStatsHandler(db)

	app := fiber.New(fiber.Config{BodyLimit: 25 * 1024 * 1024})
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(middleware.CORS())
	app.Use(middleware.RequestLogger())
	app.Use(middleware.SecurityLogger())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	authRoutes := api.Group("/auth")
	authRoutes.Post("/signup", authHandler.Signup)
	authRoutes.Post("/login", authHandler.Login)

	api.Get("/users/current", middleware.RequireAuth, authHandler.Current)
	api.Get("/users/colleagues", middleware.RequireAuth, usersHandler.Colleagues)
	api.Get("/users/suggestions", middleware.RequireAuth, usersHandler.Suggestions)
	api.Get("/users/profile", middleware.RequireAuth, usersHandler.Profile)
	api.Put("/users/profile", middleware.RequireAuth, usersHandler.UpdateProfile)
	api.Get("/users/connection-requests", middleware.RequireAuth, usersHandler.ConnectionRequests)
	api.Get("/users/directory", middleware.RequireAuth, usersHandler.Directory)
	api.Get("/users", middleware.RequireAuth, middleware.RequireRoles(models.RoleAdmin, models.RoleSuperadmin), usersHandler.List)

	connectionRoutes := api.Group("/connections", middleware.RequireAuth)
	connectionRoutes.Post("/connect", connectionsHandler.Connect)
	connectionRoutes.Post("/:id/accept", connectionsHandler.Accept)
	connectionRoutes.Post("/:id/ignore", connectionsHandler.Ignore)

	api.Get("/specialties", usersHandler.Specialties)
	api.Get("/stats", middleware.RequireAuth, statsHandler.List)

	api.Get("/posts", middleware.OptionalAuth, postsHandler.List)
	api.Post("/posts", middleware.RequireAuth, middleware.RequireRoles(models.RoleAdmin, models.RoleSuperadmin), postsHandler.Create)
	api.Post("/posts/:id/save", middleware.RequireAuth, postsHandler.Save)
	api.Get("/categories", postsHandler.Categories)

	api.Get("/documents", middleware.OptionalAuth, documentsHandler.List)
	api.Get("/documents/recent", documentsHandler.Recent)
	api.Post("/documents/upload", middleware.RequireAuth, middleware.RequireRoles(models.RoleAdmin, models.RoleSuperadmin), documentsHandler.Upload)
	api.Post("/documents/:id/share", middleware.RequireAuth, documentsHandler.Share)
	api.Get("/documents/:id/download", documentsHandler.Download)

	api.Get("/events/upcoming", eventsHandler.Upcoming)
	api.Post("/events", middleware.RequireAuth, middleware.RequireRoles(models.RoleAdmin, models.RoleSuperadmin), eventsHandler.Create)

	return &testEnv{app: app, db: db}
}

func createTestUser(t *testing.T, db *store.Store, username string, role models.Role) (models.User, string) {
	t.Helper()

	user, err := db.CreateUser(models.User{
		Username:  username,
		Password:  "password123",
		Name:      "Test User",
		Initials:  "TU",
		Specialty: "Cardiology",
		Role:      role,
	})
	if err != nil {
		t.Fatalf("failed creating test user: %v", err)
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		t.Fatalf("failed generating auth token: %v", err)
	}

	return user, token
}

func authHeaders(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func performRequest(t *testing.T, app *fiber.App, method, path string, body io.Reader, headers map[string]string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := app.Test(req, int((10 * time.Second).Milliseconds()))
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}

	return resp
}

func performJSONRequest(t *testing.T, app *fiber.App, method, path string, payload any, headers map[string]string) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	requestHeaders := map[string]string{}
	for key, value := range headers {
		requestHeaders[key] = value
	}
	if payload != nil {
		requestHeaders["Content-Type"] = "application/json"
	}

	return performRequest(t, app, method, path, body, requestHeaders)
}

func decodeJSONMap(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed reading response body: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("failed decoding JSON response: %v body=%q", err, string(raw))
	}

	return payload
}

func dataSlice(t *testing.T, body map[string]any) []any {
	t.Helper()

	items, ok := body["data"].([]any)
	if !ok {
		t.Fatalf("expected data array, got %+v", body["data"])
	}
	return items
}

func dataMap(t *testing.T, body map[string]any) map[string]any {
	t.Helper()

	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %+v", body["data"])
	}
	return data
}

func assertStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Fatalf("expected status %d, got %d", expected, resp.StatusCode)
	}
}

func assertEnvelopeError(t *testing.T, body map[string]any, expected string) {
	t.Helper()
	if success, _ := body["success"].(bool); success {
		t.Fatalf("expected success=false, got %+v", body)
	}
	if got, _ := body["error"].(string); got != expected {
		t.Fatalf("expected error %q, got %q", expected, got)
	}
}
