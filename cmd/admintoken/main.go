// Command admintoken mints a bearer token for the admin event endpoints.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"ticket-booking/internal/pkg/jwt"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/pflag"
)

type tokenConfig struct {
	Secret string `envconfig:"ADMIN_JWT_SECRET" required:"true"`
}

func main() {
	flagSet := pflag.NewFlagSet("admintoken", pflag.ExitOnError)
	subject := flagSet.String("subject", "admin", "token subject")
	ttl := flagSet.Duration("ttl", 24*time.Hour, "token lifetime")
	_ = flagSet.Parse(os.Args[1:])

	var cfg tokenConfig
	if err := envconfig.Process("", &cfg); err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	token, err := jwt.NewService(cfg.Secret).GenerateToken(*subject, jwt.RoleAdmin, *ttl)
	if err != nil {
		slog.Error("Failed to sign token", "error", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
