// Package main provides a CLI tool for bootstrapping HIU requester accounts.
// It writes directly to the configured database, bypassing the HTTP API, so
// the first admin account can be created before the service has any users.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"hiu/internal/platform/config"
	"hiu/internal/platform/database"
	"hiu/internal/user"
	"hiu/pkg/secrets"
)

func main() {
	username := flag.String("username", "", "Username for the new account")
	password := flag.String("password", "", "Password for the new account")
	role := flag.String("role", "DOCTOR", "Role: ADMIN or DOCTOR")
	flag.Parse()

	if *username == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: adduser -username <name> -password <password> [-role ADMIN|DOCTOR]")
		os.Exit(2)
	}

	cfg := config.FromEnv()
	if cfg.Database.URL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is not set")
		os.Exit(1)
	}

	dbCfg := database.DefaultConfig()
	dbCfg.URL = cfg.Database.URL
	pool, err := database.New(dbCfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "database:", err)
		os.Exit(1)
	}
	defer pool.Close()

	hashed, err := secrets.Hash(*password)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hash password:", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	store := user.NewPostgresStore(pool.DB())
	account := &user.User{
		Username: *username,
		Password: hashed,
		Role:     user.ParseRole(*role),
		Verified: true,
	}
	if err := store.Save(ctx, account); err != nil {
		fmt.Fprintln(os.Stderr, "save user:", err)
		os.Exit(1)
	}

	fmt.Printf("created %s (%s)\n", account.Username, account.Role)
}
