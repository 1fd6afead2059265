package cmd

import (
	"context"
	"fmt"

	"ics-diff/core/config"
	"ics-diff/core/loader"
	"ics-diff/core/logger"
	"ics-diff/core/middleware/auth"
	"ics-diff/core/middleware/rayid"
	"ics-diff/core/report"
	"ics-diff/feature/diff"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "ics-diff/docs/swagger"
)

// @title ics-diff API
// @version 1.0
// @description Compare iCalendar documents and keep a history of the differences.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// serveCmd runs the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the diff HTTP API",
	Long:  `Starts the HTTP server and loads all enabled features. Stops gracefully on interrupt.`,
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 1. Load Configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Initialize Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	// 3. Report history (optional)
	var store *report.Store
	if cfg.Database.Enabled {
		if s, err := openStore(ctx, cfg); err != nil {
			logg.Warn("Report history unavailable", zap.Error(err))
		} else {
			store = s
			logg.Info("Report history enabled", zap.String("driver", cfg.Database.Driver))
		}
	}

	// 4. Sources
	src, err := newSourceLoader(cfg, logg)
	if err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             cfg.Server.BodyLimit(),
	})

	mgr := loader.NewManager(logg)
	mgr.Register(diff.NewFeature(src, store, cfg.Diff, cfg.Source.HTTPFileRefs, logg))

	// Middleware: RayID first so every later log line carries it
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	// Swagger is public
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey, Skip: []string{"/swagger"}}))

	if err := mgr.LoadAll(app); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logg.Info("Starting server", zap.String("port", cfg.Server.Port))
		errCh <- app.Listen(":" + cfg.Server.Port)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logg.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout())
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}
