package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Lixing-Zhang/storefront-api/internal/auth"
	"github.com/Lixing-Zhang/storefront-api/internal/config"
	"github.com/Lixing-Zhang/storefront-api/internal/repository"
	"github.com/Lixing-Zhang/storefront-api/internal/seed"
	"github.com/Lixing-Zhang/storefront-api/pkg/logger"
)

const usage = "expected 'seed' or 'add-admin' subcommand"

func main() {
	addAdminCmd := flag.NewFlagSet("add-admin", flag.ExitOnError)
	email := addAdminCmd.String("email", "", "Email for the admin user")
	password := addAdminCmd.String("password", "", "Password for the admin user")
	firstName := addAdminCmd.String("first", "Admin", "First name")
	lastName := addAdminCmd.String("last", "User", "Last name")

	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if cfg.Database.Storage != config.StoragePostgres {
		fmt.Fprintln(os.Stderr, "seeding requires STORAGE=postgres")
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	hasher := auth.NewPasswordHasher()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	switch os.Args[1] {
	case "seed":
		err = runSeed(ctx, cfg, hasher, log)
	case "add-admin":
		_ = addAdminCmd.Parse(os.Args[2:])
		if *email == "" || *password == "" {
			fmt.Println("email and password are required")
			addAdminCmd.PrintDefaults()
			os.Exit(1)
		}
		err = addAdmin(ctx, cfg, hasher, log, *email, *password, *firstName, *lastName)
	default:
		fmt.Println(usage)
		os.Exit(1)
	}

	if err != nil {
		log.Error("command failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (*repository.PostgresStore, error) {
	store, err := repository.NewPostgresStore(ctx, cfg.Database, log)
	if err != nil {
		return nil, err
	}
	// Ensure tables exist if running before the server
	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}

func runSeed(ctx context.Context, cfg *config.Config, hasher *auth.PasswordHasher, log *slog.Logger) error {
	store, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer store.Close()

	sum, err := seed.Apply(ctx, store, hasher)
	if err != nil {
		return err
	}

	log.Info("database seeded",
		"categories", sum.Categories,
		"products", sum.Products,
		"users", sum.Users,
		"reviews", sum.Reviews,
	)
	fmt.Println("Admin login: admin@ecommerce.com / admin123")
	fmt.Println("Customer login: customer@test.com / customer123")
	return nil
}

func addAdmin(ctx context.Context, cfg *config.Config, hasher *auth.PasswordHasher, log *slog.Logger, email, password, firstName, lastName string) error {
	store, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer store.Close()

	user, err := seed.AdminUser(email, password, firstName, lastName, hasher)
	if err != nil {
		return err
	}
	if err := store.UpsertUser(ctx, user); err != nil {
		return err
	}

	fmt.Printf("Admin '%s' saved.\n", email)
	return nil
}
