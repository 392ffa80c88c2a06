// Command devtoken signs a gateway access token for local testing with the
// signing settings the gateway reads from its environment.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	jwttoken "assurance/internal/jwt_token"
	"assurance/internal/platform/config"
)

func main() {
	subject := flag.String("sub", "", "user id to put in the token subject")
	email := flag.String("email", "", "optional email claim")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	if *subject == "" {
		fmt.Fprintln(os.Stderr, "devtoken: -sub is required")
		os.Exit(2)
	}
	cfg, err := config.Load("devtoken")
	if err != nil {
		fmt.Fprintln(os.Stderr, "devtoken:", err)
		os.Exit(1)
	}
	if cfg.Env == "production" {
		fmt.Fprintln(os.Stderr, "devtoken: refusing to sign tokens with APP_ENV=production")
		os.Exit(1)
	}

	svc := jwttoken.NewJWTService(cfg.Gateway.JWTSigningKey, cfg.Gateway.JWTIssuer, cfg.Gateway.JWTAudience)
	token, err := svc.GenerateAccessToken(*subject, *email, *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, "devtoken:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
