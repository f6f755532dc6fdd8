package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
	"github.com/velmariner/rentora/internal/api"
	"github.com/velmariner/rentora/internal/config"
	"github.com/velmariner/rentora/internal/db"
	"github.com/velmariner/rentora/internal/services"
	"github.com/velmariner/rentora/internal/storage"
)

const shutdownTimeout = 10 * time.Second

var templateDir string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Rentora web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func init() {
	serveCmd.Flags().StringVar(&templateDir, "templates", "internal/templates", "directory holding the HTML templates")
}

func runServer() error {
	cfg := config.Load()

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return err
	}

	uploads, err := storage.NewUploadStore(cfg.UploadDir, cfg.AllowedExtensions)
	if err != nil {
		return err
	}

	handler, err := api.NewHandler(database, cfg.SecretKey, templateDir, uploads, cfg.CookieSecure)
	if err != nil {
		return err
	}

	// Seed the admin account on first boot; an existing account is left alone.
	authService := services.NewAuthService(db.NewRepositories(database).Users)
	if _, created, err := authService.EnsureAdmin(cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword, false); err != nil {
		return err
	} else if created {
		log.Printf("seeded admin account %s", cfg.AdminEmail)
	}

	app := fiber.New(fiber.Config{
		AppName: "Rentora",
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf_token",
		CookieName:     "rentora_csrf",
		CookieHTTPOnly: true,
		CookieSecure:   cfg.CookieSecure,
		CookieSameSite: "Lax",
		ContextKey:     "csrf",
		Expiration:     1 * time.Hour,
	}))
	app.Static("/uploads", uploads.Dir())

	api.RegisterRoutes(app, handler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	services.NewLeaseExpiryNotifier(database).Start(ctx)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.Listen(":" + cfg.Port)
	}()
	log.Printf("Rentora listening on http://localhost:%s", cfg.Port)

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		log.Println("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	}
}
