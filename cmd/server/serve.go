package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/farmstand/internal/database"
	"github.com/h4ks-com/farmstand/internal/handlers"
	"github.com/h4ks-com/farmstand/internal/repository"
	"github.com/h4ks-com/farmstand/internal/services"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	servePort        string
	serveDatabaseURL string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Example: `  farmstand serve
  farmstand serve --port 8080 --database-url sqlite:farmstand.db`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}
		if cmd.Flags().Changed("database-url") {
			cfg.Database.URL = serveDatabaseURL
		}
		return runServe(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Port to listen on (overrides PORT)")
	serveCmd.Flags().StringVar(&serveDatabaseURL, "database-url", "", "Database URL (overrides DATABASE_URL)")
}

func runServe(ctx context.Context) error {
	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		return err
	}
	defer database.Close(db)

	logger.Info("running database migrations")
	if err := database.Migrate(db); err != nil {
		return err
	}

	farmRepo := repository.NewFarmRepository(db)
	productRepo := repository.NewProductRepository(db)

	farmService := services.NewFarmService(farmRepo, productRepo, db)
	productService := services.NewProductService(productRepo)

	router, err := handlers.NewRouter(handlers.RouterConfig{
		FarmService:    farmService,
		ProductService: productService,
		Logger:         logger,
		SessionName:    cfg.Session.Name,
		SessionSecret:  cfg.Session.Secret,
		SessionSecure:  cfg.Session.Secure,
	})
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting farm stand server", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
