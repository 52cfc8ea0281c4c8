package main

import (
	"CarePortal/cache"
	"CarePortal/config"
	"CarePortal/database"
	"CarePortal/routes"
	"CarePortal/utils"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const sampleDoctorEmail = "doctor@healthcare.com"

func main() {
	rootCmd := &cobra.Command{
		Use:   "careportal",
		Short: "CarePortal healthcare portal server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(true)
			if err != nil {
				return err
			}
			return runServer(cfg)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(false)
			if err != nil {
				return err
			}
			db, err := database.InitDB(cmd.Context(), cfg.DBURL, cfg.IsDev())
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return err
			}
			log.Info().Msg("migrations applied")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	var (
		sampleDoctor   bool
		doctorPassword string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the bootstrap admin account and optional sample data",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(false)
			if err != nil {
				return err
			}
			if cfg.AdminPassword == "" {
				return errors.New("ADMIN_PASSWORD is required to seed the admin account")
			}
			if sampleDoctor && len(doctorPassword) < 6 {
				return errors.New("--doctor-password of at least 6 characters is required with --sample-doctor")
			}

			ctx := cmd.Context()
			db, err := database.InitDB(ctx, cfg.DBURL, cfg.IsDev())
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return err
			}

			hash, err := utils.HashPassword(cfg.AdminPassword)
			if err != nil {
				return err
			}
			created, err := database.SeedAdmin(ctx, db, cfg.AdminEmail, hash)
			if err != nil {
				return fmt.Errorf("failed to seed admin: %w", err)
			}
			if !created {
				log.Info().Msg("an admin account already exists, skipping")
			}

			if sampleDoctor {
				hash, err := utils.HashPassword(doctorPassword)
				if err != nil {
					return err
				}
				if _, err := database.SeedSampleDoctor(ctx, db, sampleDoctorEmail, hash); err != nil {
					return fmt.Errorf("failed to seed sample doctor: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&sampleDoctor, "sample-doctor", false, "also create a sample doctor when none exists")
	cmd.Flags().StringVar(&doctorPassword, "doctor-password", "", "password for the sample doctor account")
	return cmd
}

// loadConfig reads the configuration and sets up the global logger.
// The database commands only need DB_URL, the server needs everything.
func loadConfig(server bool) (*config.AppConfig, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	setupLogger(cfg)
	validate := cfg.ValidateDatabase
	if server {
		validate = cfg.Validate
	}
	if err := validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setupLogger(cfg *config.AppConfig) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	log.Logger = logger
}

func runServer(cfg *config.AppConfig) error {
	ctx := context.Background()

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize the database
	db, err := database.InitDB(ctx, cfg.DBURL, cfg.IsDev())
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return err
	}

	// Initialize Redis and the cache utility on top of it
	redisClient, err := database.NewRedisClient(database.DefaultRedisConfig(cfg.RedisAddress))
	if err != nil {
		return err
	}
	defer redisClient.Close()

	sessionCache, err := cache.NewCache(redisClient)
	if err != nil {
		return err
	}

	var mailer utils.Mailer = utils.NopMailer{}
	if cfg.MailEnabled() {
		mailer = utils.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	}

	handler, err := routes.SetupRoutes(sessionCache, cfg, db, mailer)
	if err != nil {
		return err
	}

	// Configure and start the server
	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        handler,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
		IdleTimeout:    30 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)

	serveErr := make(chan error, 1)
	go func() {
		defer wg.Done()
		log.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serveErr:
		return fmt.Errorf("listen and serve: %w", err)
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	log.Info().Msg("shutting down server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	wg.Wait()
	log.Info().Msg("server exited gracefully")
	return nil
}
