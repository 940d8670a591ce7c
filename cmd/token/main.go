// Command token mints an operator token for the statistics endpoint.
//
// It reads JWT_SECRET and JWT_EXPIRY from the environment (or .env) and
// prints the token to stdout:
//
//	go run ./cmd/token ops-dashboard
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/vaultpass/passmeter/internal/config"
	"github.com/vaultpass/passmeter/internal/crypto"
)

func main() {
	if len(os.Args) != 2 || os.Args[1] == "" {
		fmt.Fprintln(os.Stderr, "usage: token <subject>")
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	token, err := crypto.GenerateToken(os.Args[1], crypto.ScopeStats, cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		slog.Error("signing token failed", "error", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
