package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/medconnect/backend/internal/models"
	"github.com/medconnect/backend/pkg/logger"
	"github.com/medconnect/backend/pkg/utils"
)

var authTestSetupOnce sync.Once

func setupAuthTestApp(t *testing.T) *fiber.App {
	t.Helper()

	authTestSetupOnce.Do(func() {
		logger.Init()
		utils.ConfigureJWT("middleware-test-secret", 24)
	})

	app := fiber.New()

	identity := func(c *fiber.Ctx) error {
		user := GetAuthUser(c)
		if user == nil {
			return c.JSON(fiber.Map{"anonymous": true})
		}
		return c.JSON(fiber.Map{"id": user.ID, "username": user.Username, "role": string(user.Role)})
	}

	app.Get("/protected", RequireAuth, identity)
	app.Get("/optional", OptionalAuth, identity)
	app.Get("/admin-only", RequireAuth, RequireRoles(models.RoleAdmin, models.RoleSuperadmin), identity)

	return app
}

func requestWithAuth(t *testing.T, app *fiber.App, path, authHeader string) (*http.Response, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	resp, err := app.Test(req, int((5 * time.Second).Milliseconds()))
	if err != nil {
		t.Fatalf("request %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed reading response body: %v", err)
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("failed decoding response: %v body=%q", err, string(raw))
	}

	return resp, body
}

func tokenForRole(t *testing.T, role models.Role) string {
	t.Helper()

	token, err := utils.GenerateToken(&models.User{ID: 1, Username: "tester", Role: role})
	if err != nil {
		t.Fatalf("failed generating token: %v", err)
	}
	return token
}

func expiredToken(t *testing.T) string {
	t.Helper()

	claims := utils.Claims{
		ID:       1,
		Username: "expired",
		Role:     models.RoleDoctor,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("middleware-test-secret"))
	if err != nil {
		t.Fatalf("failed signing expired token: %v", err)
	}
	return signed
}

func TestRequireAuth(t *testing.T) {
	app := setupAuthTestApp(t)

	t.Run("missing header is unauthorized", func(t *testing.T) {
		resp, body := requestWithAuth(t, app, "/protected", "")
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", resp.StatusCode)
		}
		if body["error"] != "missing authorization header" {
			t.Fatalf("unexpected error message: %v", body["error"])
		}
	})

	t.Run("non-bearer header is forbidden", func(t *testing.T) {
		resp, body := requestWithAuth(t, app, "/protected", "Basic dXNlcjpwdw==")
		if resp.StatusCode != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", resp.StatusCode)
		}
		if body["error"] != "invalid authorization format" {
			t.Fatalf("unexpected error message: %v", body["error"])
		}
	})

	t.Run("garbage token is forbidden", func(t *testing.T) {
		resp, body := requestWithAuth(t, app, "/protected", "Bearer garbage")
		if resp.StatusCode != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", resp.StatusCode)
		}
		if body["error"] != "invalid or expired token" {
			t.Fatalf("unexpected error message: %v", body["error"])
		}
	})

	t.Run("expired token is forbidden", func(t *testing.T) {
		resp, body := requestWithAuth(t, app, "/protected", "Bearer "+expiredToken(t))
		if resp.StatusCode != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", resp.StatusCode)
		}
		if body["error"] != "invalid or expired token" {
			t.Fatalf("unexpected error message: %v", body["error"])
		}
	})

	t.Run("valid token populates the identity", func(t *testing.T) {
		resp, body := requestWithAuth(t, app, "/protected", "Bearer "+tokenForRole(t, models.RoleDoctor))
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		if body["username"] != "tester" {
			t.Fatalf("expected identity in handler, got %+v", body)
		}
	})
}

func TestOptionalAuth(t *testing.T) {
	app := setupAuthTestApp(t)

	t.Run("passes anonymous requests through", func(t *testing.T) {
		resp, body := requestWithAuth(t, app, "/optional", "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		if anonymous, _ := body["anonymous"].(bool); !anonymous {
			t.Fatalf("expected anonymous identity, got %+v", body)
		}
	})

	t.Run("passes invalid tokens through as anonymous", func(t *testing.T) {
		resp, body := requestWithAuth(t, app, "/optional", "Bearer garbage")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		if anonymous, _ := body["anonymous"].(bool); !anonymous {
			t.Fatalf("expected anonymous identity, got %+v", body)
		}
	})

	t.Run("attaches identity when the token is valid", func(t *testing.T) {
		resp, body := requestWithAuth(t, app, "/optional", "Bearer "+tokenForRole(t, models.RoleNurse))
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		if body["role"] != "nurse" {
			t.Fatalf("expected nurse identity, got %+v", body)
		}
	})
}

func TestRequireRoles(t *testing.T) {
	app := setupAuthTestApp(t)

	t.Run("allows a listed role", func(t *testing.T) {
		resp, _ := requestWithAuth(t, app, "/admin-only", "Bearer "+tokenForRole(t, models.RoleAdmin))
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
	})

	t.Run("allows any listed role, not just the first", func(t *testing.T) {
		resp, _ := requestWithAuth(t, app, "/admin-only", "Bearer "+tokenForRole(t, models.RoleSuperadmin))
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
	})

	t.Run("rejects an unlisted role without hierarchy", func(t *testing.T) {
		resp, body := requestWithAuth(t, app, "/admin-only", "Bearer "+tokenForRole(t, models.RoleDoctor))
		if resp.StatusCode != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", resp.StatusCode)
		}
		if body["error"] != "insufficient role" {
			t.Fatalf("unexpected error message: %v", body["error"])
		}
	})
}
