package middleware

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/medconnect/backend/internal/models"
	"github.com/medconnect/backend/pkg/logger"
	"github.com/medconnect/backend/pkg/utils"
)

const authUserKey = "authUser"

// AuthUser is the request-scoped identity extracted from a verified token.
type AuthUser struct {
	ID       int
	Username string
	Role     models.Role
}

func CORS() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "http://localhost:3001,http://127.0.0.1:3001",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	})
}

// RequireAuth enforces the bearer scheme. A missing header is
// unauthenticated (401); a header carrying a malformed, invalid or expired
// token is forbidden (403). Requests are evaluated once, statelessly.
func RequireAuth(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		logger.Warn("jwt_missing_header", map[string]interface{}{
			"ip":   c.IP(),
			"path": c.Path(),
		})
		return utils.Error(c, fiber.StatusUnauthorized, "missing authorization header")
	}

	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
	if tokenString == authHeader || tokenString == "" {
		logger.Warn("jwt_invalid_format", map[string]interface{}{
			"ip":   c.IP(),
			"path": c.Path(),
		})
		return utils.Error(c, fiber.StatusForbidden, "invalid authorization format")
	}

	claims, err := utils.ValidateToken(tokenString)
	if err != nil {
		logger.Warn("jwt_validation_failed", map[string]interface{}{
			"ip":    c.IP(),
			"path":  c.Path(),
			"error": err.Error(),
		})
		return utils.Error(c, fiber.StatusForbidden, "invalid or expired token")
	}

	setAuthUser(c, claims)
	return c.Next()
}

// OptionalAuth populates the identity when a valid token is supplied and
// passes the request through otherwise.
func OptionalAuth(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Next()
	}

	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
	if tokenString == authHeader || tokenString == "" {
		return c.Next()
	}

	claims, err := utils.ValidateToken(tokenString)
	if err != nil {
		return c.Next()
	}

	setAuthUser(c, claims)
	return c.Next()
}

// RequireRoles gates a route to the given role set. Membership is flat;
// there is no role hierarchy.
func RequireRoles(allowedRoles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetAuthUser(c)
		if user == nil {
			return utils.Error(c, fiber.StatusUnauthorized, "unauthorized")
		}

		for _, role := range allowedRoles {
			if user.Role == role {
				return c.Next()
			}
		}

		logger.WarnWithUser(strconv.Itoa(user.ID), "role_denied", map[string]interface{}{
			"path": c.Path(),
			"role": string(user.Role),
		})
		return utils.Error(c, fiber.StatusForbidden, "insufficient role")
	}
}

func setAuthUser(c *fiber.Ctx, claims *utils.Claims) {
	c.Locals(authUserKey, &AuthUser{
		ID:       claims.ID,
		Username: claims.Username,
		Role:     claims.Role,
	})
	c.Locals("userID", strconv.Itoa(claims.ID))
}

func GetAuthUser(c *fiber.Ctx) *AuthUser {
	value := c.Locals(authUserKey)
	if value == nil {
		return nil
	}
	user, ok := value.(*AuthUser)
	if !ok {
		return nil
	}
	return user
}
