package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/medconnect/backend/internal/config"
	"github.com/medconnect/backend/internal/handlers"
	"github.com/medconnect/backend/internal/middleware"
	"github.com/medconnect/backend/internal/models"
	"github.com/medconnect/backend/internal/store"
	"github.com/medconnect/backend/pkg/logger"
	"github.com/medconnect/backend/pkg/utils"
)

func main() {
	_ = godotenv.Load()

	logger.Init()

	cfg := config.Load()
	utils.ConfigureJWT(cfg.JWT.Secret, cfg.JWT.ExpirationHours)

	db := store.New()
	if err := db.Seed(); err != nil {
		log.Fatalf("seeding store failed: %v", err)
	}

	authHandler := handlers.NewAuthHandler(db)
	usersHandler := handlers.NewUsersHandler(db)
	connectionsHandler := handlers.NewConnectionsHandler(db)
	postsHandler := handlers.NewPostsHandler(db)
	documentsHandler := handlers.NewDocumentsHandler(db, cfg.Upload.Dir)
	eventsHandler := handlers.NewEventsHandler(db)
	statsHandler := handlers.NewStatsHandler(db)

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

	listenAddr := fmt.Sprintf(":%s", cfg.Server.Port)

	logger.Info("server_starting", map[string]interface{}{
		"port":    cfg.Server.Port,
		"address": listenAddr,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(listenAddr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("shutting down server due to signal: %s", sig)
		shutdownDone := make(chan struct{})
		go func() {
			_ = app.Shutdown()
			close(shutdownDone)
		}()
		select {
		case <-shutdownDone:
		case <-time.After(10 * time.Second):
			log.Print("forced shutdown timeout reached")
		}
	case err := <-errCh:
		if err != nil {
			log.Fatalf("server error: %v", err)
		}
	}
}
