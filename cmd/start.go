package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"catalog-reconciler/core/loader"
	"catalog-reconciler/core/logger"
	"catalog-reconciler/core/middleware/auth"
	"catalog-reconciler/core/middleware/rayid"
	"catalog-reconciler/core/storage"
	"catalog-reconciler/feature/integrity"
	"catalog-reconciler/feature/products"
	"catalog-reconciler/feature/report"
	"catalog-reconciler/feature/runs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "catalog-reconciler/docs/swagger"
)

// @title Catalog Reconciler API
// @version 1.0
// @description Reconciliation runs of crawled product state against the marketplace item export.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the reconciliation API server",
	Long:  `Starts the HTTP server that triggers bucket reconciliation runs and serves their history.`,
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		logg := a.log
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		store, err := storage.NewClient(a.cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// Optional; the runs feature migrates it on load
		db := a.historyDB()
		var repo *runs.Repository
		if db != nil {
			repo = runs.NewRepository(db)
		}

		spec := a.cfg.Catalog.Spec(a.bucketAdapter(store))
		svc := runs.NewService(spec, report.NewAssembler(spec.Options, a.cfg.Report), repo,
			store, a.cfg.Storage.Bucket, a.cfg.Storage.ReportPrefix, logg)

		app := fiber.New(a.cfg.Server.FiberConfig())

		mgr := loader.NewManager()
		mgr.Register(integrity.NewFeature(store, a.cfg.Storage, logg, db))
		mgr.Register(runs.NewFeature(svc))
		mgr.Register(products.NewFeature(spec, logg))

		// RayID first so every later log line carries it
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

		// Swagger stays public
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: a.cfg.Server.ApiKey}))

		loaded, err := mgr.LoadAll(app)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		go func() {
			logg.Info("Starting server", zap.String("addr", a.cfg.Server.Address()))
			if err := app.Listen(a.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
