package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"voting-be/internal/migrate"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	if len(os.Args) < 2 {
		fmt.Println("Usage: migrate [up|down]")
		os.Exit(1)
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "up":
		if err := migrate.Up(ctx, dbURL); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
		fmt.Println("Migrations applied successfully")

	case "down":
		if err := migrate.Down(ctx, dbURL); err != nil {
			log.Fatalf("Failed to roll back migration: %v", err)
		}
		fmt.Println("Migration rolled back successfully")

	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		fmt.Println("Usage: migrate [up|down]")
		os.Exit(1)
	}
}
