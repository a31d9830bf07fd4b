package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"darzi/internal/commons"
	"darzi/internal/company"
	"darzi/internal/config"
	"darzi/internal/employee"
	"darzi/internal/infrastructure/logger"
	"darzi/internal/infrastructure/mysql"
	"darzi/internal/order"
	"darzi/internal/server"
)

const configPath = "internal/config/config.yaml"

const migrationVersionFormat = "20060102150405"

func main() {
	rootCmd := &cobra.Command{
		Use:   "darzi",
		Short: "tailoring shop order management service",
		Run: func(cmd *cobra.Command, args []string) {
			serve()
		},
	}
	rootCmd.AddCommand(serveCommand(), migrateUpCommand(), migrateCreateCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "run the HTTP server",
		Run: func(cmd *cobra.Command, args []string) {
			serve()
		},
	}
}

func migrateUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate-up",
		Short: "apply all pending database migrations",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig()

			applied, err := mysql.MigrateUp(cfg.Migrations.Dir, cfg.Database)
			if err != nil {
				log.Fatalf("migrating: %v", err)
			}
			if !applied {
				fmt.Println("no change in migration")
				return
			}
			fmt.Println("migrated up")
		},
	}
}

func migrateCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate-create [name]",
		Short: "create empty up/down migration files",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig()
			version := time.Now().Format(migrationVersionFormat)

			up := fmt.Sprintf("%s/%s_%s.up.sql", cfg.Migrations.Dir, version, args[0])
			down := fmt.Sprintf("%s/%s_%s.down.sql", cfg.Migrations.Dir, version, args[0])

			if err := os.WriteFile(up, []byte{}, 0644); err != nil {
				log.Fatalf("creating migration: %v", err)
			}
			if err := os.WriteFile(down, []byte{}, 0644); err != nil {
				log.Fatalf("creating migration: %v", err)
			}

			fmt.Println("created SQL up script:", up)
			fmt.Println("created SQL down script:", down)
		},
	}
}

// loadConfig prefers the YAML file and falls back to environment variables.
func loadConfig() *config.Config {
	if _, err := os.Stat(configPath); err == nil {
		cfg, err := commons.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		return cfg
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	return cfg
}

func serve() {
	cfg := loadConfig()

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	orderCtrl := order.NewModule(db, zapLogger)
	companyCtrl := company.NewModule(db, zapLogger)
	employeeCtrl := employee.NewModule(db, zapLogger)

	router := server.NewRouter(orderCtrl, companyCtrl, employeeCtrl, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
