package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"customer-datatable/internal/config"
	"customer-datatable/internal/migrate"
)

const defaultSeedCount = 50

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]

	switch command {
	case "up", "down", "seed", "status":
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		printUsage()
		os.Exit(1)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(command, os.Args[2:], logger); err != nil {
		logger.Error("migration failed", zap.String("command", command), zap.Error(err))
		os.Exit(1)
	}
}

func run(command string, args []string, logger *zap.Logger) error {
	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.DB.DSN())
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	logger.Info("connected to database", zap.String("host", cfg.DB.Host), zap.String("name", cfg.DB.Name))

	m := migrate.New(db, logger, uint64(time.Now().UnixNano()))

	switch command {
	case "up":
		return m.Up(ctx)
	case "down":
		return m.Down(ctx)
	case "seed":
		n := defaultSeedCount
		if len(args) > 0 {
			n, err = strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid seed count %q: %w", args[0], err)
			}
		}
		return m.Seed(ctx, n)
	case "status":
		st, err := m.Status(ctx)
		if err != nil {
			return err
		}
		if !st.TableExists {
			fmt.Println("customer table: missing (run `migrate up`)")
			return nil
		}
		fmt.Printf("customer table: present, %d rows\n", st.Rows)
	}
	return nil
}

func printUsage() {
	fmt.Println(`Usage: migrate <command> [args]

Commands:
  up            create the customer table
  down          drop the customer table
  seed [n]      insert n generated customers (default 50)
  status        show whether the table exists and its row count`)
}
