// Command token issues a staff bearer token for the front desk.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"lane-booking/internal/pkg/config"
	"lane-booking/internal/pkg/jwt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	subject := flag.String("subject", "", "staff member the token is issued to")
	ttl := flag.Duration("ttl", 0, "token lifetime, JWT_DURATION when zero")
	flag.Parse()

	if *subject == "" {
		fmt.Fprintln(os.Stderr, "usage: token -subject <name> [-ttl 720h]")
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("could not read .env", "error", err)
	}

	var cfg config.JWTConfig
	if err := envconfig.Process("", &cfg); err != nil {
		slog.Error("invalid jwt config", "error", err)
		os.Exit(1)
	}

	lifetime := *ttl
	if lifetime == 0 {
		d, err := time.ParseDuration(cfg.Duration)
		if err != nil {
			slog.Error("invalid JWT_DURATION", "error", err)
			os.Exit(1)
		}
		lifetime = d
	}

	token, err := jwt.NewService(cfg.Secret, lifetime).GenerateToken(*subject, jwt.RoleStaff, time.Now())
	if err != nil {
		slog.Error("token generation failed", "error", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
