// Command optoken prints an operator token for the folder switch endpoint.
//
//	OPERATOR_JWT_SECRET=... optoken -sub alice -ttl 12h
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/bees/mediahub/internal/middleware"
)

func main() {
	sub := flag.String("sub", "operator", "token subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	_ = godotenv.Load()

	secret := os.Getenv("OPERATOR_JWT_SECRET")
	if secret == "" {
		slog.Error("OPERATOR_JWT_SECRET is not set")
		os.Exit(1)
	}

	token, err := middleware.NewOperatorToken(secret, *sub, *ttl)
	if err != nil {
		slog.Error("sign token", "error", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
