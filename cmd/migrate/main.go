// Command migrate manages the database schema and the initial administrator.
//
//	migrate up       apply all pending migrations
//	migrate down     roll back the most recent migration
//	migrate version  print the current schema version
//	migrate seed     create or promote ADMIN_EMAIL with ADMIN_PASSWORD
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"logistics/cmd"
	"logistics/internal/adapters/out/auth"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/core/application/usecases/commands"

	"github.com/golang-migrate/migrate/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm/logger"
)

const usage = "usage: migrate up|down|version|seed"

func main() {
	if len(os.Args) != 2 {
		log.Fatal(usage)
	}

	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	switch os.Args[1] {
	case "up":
		err = postgres.MigrateUp(configs.DSN())
	case "down":
		err = withMigrator(configs, func(m *migrate.Migrate) error { return m.Steps(-1) })
	case "version":
		err = withMigrator(configs, printVersion)
	case "seed":
		err = seed(configs)
	default:
		log.Fatal(usage)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("migrate %s: %v", os.Args[1], err)
	}
}

func withMigrator(configs cmd.Config, fn func(m *migrate.Migrate) error) error {
	m, err := postgres.NewMigrator(configs.DSN())
	if err != nil {
		return err
	}
	defer m.Close()
	return fn(m)
}

func printVersion(m *migrate.Migrate) error {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		fmt.Println("no migrations applied")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Printf("version %d (dirty: %t)\n", version, dirty)
	return nil
}

func seed(configs cmd.Config) error {
	gormDB, err := postgres.Open(configs.DSN(), logger.Warn)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	seedCmd, err := commands.NewSeedAdministratorCommand(configs.AdminEmail, configs.AdminPassword)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := commands.NewSeedAdministratorCommandHandler(postgres.NewGormStore(gormDB), auth.NewBcryptHasher()).
		Handle(ctx, seedCmd)
	if err != nil {
		return err
	}
	fmt.Printf("administrator %s ready\n", admin.Email())
	return nil
}
