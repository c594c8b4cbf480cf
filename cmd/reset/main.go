package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/PocketGarden_Go/internal/bootstrap"
	"github.com/osse101/PocketGarden_Go/internal/config"
	"github.com/osse101/PocketGarden_Go/internal/database"
)

func main() {
	dropDB := flag.Bool("drop-db", false, "drop and recreate the postgres database instead of deleting the save")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	if *dropDB {
		if cfg.StorageBackend != config.StorageBackendPostgres {
			log.Fatalf("-drop-db requires STORAGE_BACKEND=%s", config.StorageBackendPostgres)
		}
		recreateDatabase(ctx, cfg)
		return
	}

	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open save storage: %v", err)
	}
	defer storage.Close()

	exists, err := storage.Saves.Exists(ctx, cfg.SaveKey)
	if err != nil {
		log.Fatalf("Failed to check save: %v", err)
	}
	if !exists {
		log.Printf("No save found under %q, nothing to reset.\n", cfg.SaveKey)
		return
	}

	if err := storage.Saves.Delete(ctx, cfg.SaveKey); err != nil {
		log.Fatalf("Failed to delete save: %v", err)
	}
	log.Printf("Save %q deleted. The next start begins a new game.\n", cfg.SaveKey)
}

// recreateDatabase connects to the server's maintenance database and drops
// and recreates the configured one
func recreateDatabase(ctx context.Context, cfg *config.Config) {
	serverConnString := database.ConnString(cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, "postgres")

	serverPool, err := database.NewPool(ctx, serverConnString, 2, database.DefaultMaxConnIdleTime, database.DefaultMaxConnLifetime)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL server: %v", err)
	}
	defer serverPool.Close()

	dbName := pgx.Identifier{cfg.DBName}.Sanitize()

	log.Printf("Terminating existing connections to database %s...\n", cfg.DBName)
	_, err = serverPool.Exec(ctx, `
		SELECT pg_terminate_backend(pg_stat_activity.pid)
		FROM pg_stat_activity
		WHERE pg_stat_activity.datname = $1
		AND pid <> pg_backend_pid()
	`, cfg.DBName)
	if err != nil {
		log.Printf("Warning: Failed to terminate connections: %v\n", err)
	}

	log.Printf("Dropping database %s if it exists...\n", cfg.DBName)
	if _, err := serverPool.Exec(ctx, fmt.Sprintf("DROP DATABASE IF EXISTS %s", dbName)); err != nil {
		log.Fatalf("Failed to drop database: %v", err)
	}

	log.Printf("Creating database %s...\n", cfg.DBName)
	if _, err := serverPool.Exec(ctx, fmt.Sprintf("CREATE DATABASE %s", dbName)); err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}

	log.Println("\n✅ Database reset complete!")
	log.Println("Migrations are applied on the next start.")
}
