// Command promote changes a user's role by email address. It is used to
// bootstrap the first admin, since no API endpoint grants roles.
//
// Usage:
//
//	promote --email=user@example.com [--role=admin|user]
//
// Requires DATABASE_DSN (or the database section of the config file).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/adapter/postgres"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/adapter/postgres/user"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/config"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of the user to update")
	role := flag.String("role", string(domain.UserRoleAdmin), "role to grant: admin or user")
	flag.Parse()

	if strings.TrimSpace(*email) == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com [--role=admin|user]")
		os.Exit(1)
	}
	target := domain.UserRole(*role)
	if !target.IsValid() {
		log.Fatalf("unknown role %q", *role)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	u, err := user.New(pool).SetRoleByEmail(ctx, strings.TrimSpace(*email), target, time.Now().UTC())
	if errors.Is(err, domain.ErrNotFound) {
		fmt.Printf("No user found with email %q, or already %s.\n", *email, target)
		pool.Close()
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("update role: %v", err)
	}

	fmt.Printf("User %q (%s) is now %s.\n", u.Email, u.ID, u.Role)
}
