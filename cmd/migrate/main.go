package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
)

// migrator is the subset of *migrate.Migrate this tool drives.
type migrator interface {
	Up() error
	Steps(n int) error
}

// runMigration applies the requested direction. ErrNoChange is not a failure;
// it just means the schema is already current.
func runMigration(m migrator, mode string) error {
	var err error
	switch mode {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	default:
		return fmt.Errorf("unknown mode: %s (use 'up' or 'down')", mode)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func main() {
	_ = godotenv.Load()

	mode := flag.String("mode", "up", "migration mode: up or down")
	flag.Parse()

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		log.Fatal("DB_URL not set in environment")
	}

	m, err := migrate.New("file://migrations", dbURL)
	if err != nil {
		log.Fatalf("failed to init migrations: %v", err)
	}
	defer m.Close()

	if err := runMigration(m, *mode); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	log.Println("✅ Migrations applied successfully.")
}
