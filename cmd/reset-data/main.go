package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"gorm.io/gorm"

	"meetapp/infrastructure/postgres"
	"meetapp/pkg/config"
)

// child tables first
var resetTables = []string{
	"registrations",
	"meetups",
	"files",
	"users",
}

func main() {
	force := flag.Bool("force", false, "allow running when APP_ENV=production")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if cfg.App.Env == "production" && !*force {
		fmt.Println("Refusing to wipe a production environment (use -force)")
		os.Exit(1)
	}

	fmt.Println("============================================")
	fmt.Println("  Meetapp - Reset All Data")
	fmt.Println("============================================")
	fmt.Println()

	clearPostgreSQL(cfg)
	clearNATS(cfg)
	clearUploads(cfg)

	fmt.Println()
	fmt.Println("============================================")
	fmt.Println("  Done! Ready for fresh testing.")
	fmt.Println("============================================")
}

func clearPostgreSQL(cfg *config.Config) {
	fmt.Println("[1/3] Clearing PostgreSQL...")

	db, err := postgres.NewDatabase(postgres.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
		LogLevel: "silent",
	})
	if err != nil {
		fmt.Printf("     Failed to connect to database: %v\n", err)
		return
	}

	if err := truncateAll(db); err != nil {
		fmt.Printf("     Warning: %v\n", err)
		return
	}
	fmt.Println("     PostgreSQL cleared successfully!")
}

func truncateAll(db *gorm.DB) error {
	for _, table := range resetTables {
		if err := db.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			return fmt.Errorf("could not truncate %s: %w", table, err)
		}
	}
	return nil
}

func clearNATS(cfg *config.Config) {
	fmt.Println("[2/3] Clearing NATS JetStream...")

	nc, err := nats.Connect(cfg.NATS.URL, nats.Timeout(5*time.Second))
	if err != nil {
		fmt.Printf("     NATS not available: %v (skipping)\n", err)
		return
	}
	defer nc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	js, err := jetstream.New(nc)
	if err != nil {
		fmt.Printf("     JetStream not available: %v\n", err)
		return
	}

	stream, err := js.Stream(ctx, cfg.NATS.Stream)
	if err != nil {
		fmt.Printf("     Stream '%s' not found (OK - nothing to clear)\n", cfg.NATS.Stream)
		return
	}

	if err := stream.Purge(ctx); err != nil {
		fmt.Printf("     Failed to purge stream: %v\n", err)
		return
	}

	info, err := stream.Info(ctx)
	if err != nil {
		fmt.Println("     NATS stream purged!")
		return
	}
	fmt.Printf("     NATS stream purged! Messages: %d\n", info.State.Msgs)
}

// only local storage is wiped; s3 buckets are left as they are
func clearUploads(cfg *config.Config) {
	fmt.Println("[3/3] Clearing local uploads...")

	if cfg.Storage.Type != "local" {
		fmt.Printf("     Storage type is %s (skipping)\n", cfg.Storage.Type)
		return
	}

	dir := filepath.Join(cfg.Storage.BasePath, "banners")
	if err := os.RemoveAll(dir); err != nil {
		fmt.Printf("     Failed to remove %s: %v\n", dir, err)
		return
	}
	fmt.Printf("     Removed %s\n", dir)
}
