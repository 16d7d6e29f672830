// cmd/adduser/main.go
//
// Seeding CLI: users are created out-of-band, not through the HTTP API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/DanielA2212/ServerSideProject/internal/config"
	"github.com/DanielA2212/ServerSideProject/internal/domain"
	"github.com/DanielA2212/ServerSideProject/internal/repository"
	"github.com/DanielA2212/ServerSideProject/internal/repository/postgres"
	"github.com/DanielA2212/ServerSideProject/internal/repository/sqlite"
	"github.com/DanielA2212/ServerSideProject/pkg/db"
)

func main() {
	id := flag.Int64("id", 0, "user identifier (positive integer, required)")
	first := flag.String("first", "", "first name (required)")
	last := flag.String("last", "", "last name (required)")
	birthday := flag.String("birthday", "", "birthday, YYYY-MM-DD (optional)")
	marital := flag.String("marital", "", "marital status (optional)")
	flag.Parse()

	if *id <= 0 || *first == "" || *last == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*id, *first, *last, *birthday, *marital); err != nil {
		fmt.Fprintf(os.Stderr, "adduser: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("user %d created\n", *id)
}

func run(id int64, first, last, birthday, marital string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	var (
		conn     *sqlx.DB
		userRepo repository.UserRepository
	)
	switch cfg.DataBackend {
	case "sqlite":
		conn, err = db.NewSQLiteDB(cfg.SQLitePath)
		if err != nil {
			return err
		}
		userRepo = sqlite.NewUserRepository(conn)
	default:
		conn, err = db.NewPostgresDB(cfg.DB)
		if err != nil {
			return err
		}
		userRepo = postgres.NewUserRepository(conn)
	}
	defer conn.Close()

	if err := db.RunMigrations(conn.DB, cfg.DataBackend); err != nil {
		return err
	}

	return createUser(userRepo, conn, id, first, last, birthday, marital)
}

func createUser(userRepo repository.UserRepository, exec repository.DBExecutor, id int64, first, last, birthday, marital string) error {
	var bday *time.Time
	if birthday != "" {
		parsed, err := time.Parse("2006-01-02", birthday)
		if err != nil {
			return fmt.Errorf("invalid birthday %q: %w", birthday, err)
		}
		utc := parsed.UTC()
		bday = &utc
	}
	var status *string
	if marital != "" {
		status = &marital
	}

	user := domain.NewUser(id, first, last, bday, status)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return userRepo.CreateUser(ctx, exec, user)
}
