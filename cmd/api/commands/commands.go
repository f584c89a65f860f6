package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/excelenergy/cms/internal/adapters/repository"
	"github.com/excelenergy/cms/internal/application/services"
	"github.com/excelenergy/cms/internal/infrastructure/config"
	"github.com/excelenergy/cms/internal/infrastructure/logger"
	"github.com/excelenergy/cms/internal/infrastructure/server"
	"github.com/excelenergy/cms/internal/infrastructure/storage"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the CMS API server",
		Long:  "Start the CMS API server with all configured routes and middleware",
		Run: func(cmd *cobra.Command, args []string) {
			runServer()
		},
	}
}

// NewSeedCommand creates the seed command
func NewSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write starter content into the data directory",
		Long:  "Seed default services, projects, team members and page content. Existing content is never overwritten.",
		Run: func(cmd *cobra.Command, args []string) {
			runSeed()
		},
	}
}

// NewAdminCommand creates the admin management command
func NewAdminCommand() *cobra.Command {
	adminCmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin account commands",
	}

	hashCmd := &cobra.Command{
		Use:   "hash-password",
		Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
		Run: func(cmd *cobra.Command, args []string) {
			password, _ := cmd.Flags().GetString("password")
			if password == "" {
				log.Fatal("Password is required")
			}
			hashPassword(password)
		},
	}

	hashCmd.Flags().String("password", "", "Plaintext password to hash (required)")

	adminCmd.AddCommand(hashCmd)
	return adminCmd
}

func runServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	store := storage.New(cfg.Storage.DataDir, appLogger)
	if err := store.HealthCheck(); err != nil {
		appLogger.Fatal("Data directory is not writable", "error", err, "dir", cfg.Storage.DataDir)
	}

	srv, err := server.New(cfg, store, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize server", "error", err)
	}

	appLogger.Info("Starting CMS API server",
		"port", cfg.Server.Port,
		"environment", cfg.App.Environment,
		"data_dir", cfg.Storage.DataDir,
	)

	go func() {
		if err := srv.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
			appLogger.Info("Server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("Forced shutdown", "error", err)
	}
}

func runSeed() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	store := storage.New(cfg.Storage.DataDir, appLogger)
	contentRepo := repository.NewContentRepository(store)
	catalogRepo := repository.NewCatalogRepository(store)

	seedService := services.NewSeedService(contentRepo, catalogRepo, appLogger)
	if err := seedService.Seed(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	fmt.Printf("Default content seeded into %s\n", cfg.Storage.DataDir)
}

func hashPassword(password string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	fmt.Println(string(hash))
}
