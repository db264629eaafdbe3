// Command xave_token issues a bearer token for an account, signed with the
// server's JWT settings. The token lives for JWT_EXPIRY_DURATION unless -ttl
// is given.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	"github.com/agarrido2001/XaveMarket/internal/middleware"
	"github.com/agarrido2001/XaveMarket/internal/platform/config"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("issue token: %v", err)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("xave_token", flag.ContinueOnError)
	account := fs.String("address", "", "Account address the token authenticates (0x hex or Neo address)")
	ttl := fs.Duration("ttl", 0, "Token lifetime; defaults to JWT_EXPIRY_DURATION")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *account == "" {
		fs.Usage()
		return fmt.Errorf("-address is required")
	}

	caller, err := domain.ParseAddress(*account)
	if err != nil {
		return err
	}
	if caller.IsZero() {
		return fmt.Errorf("the zero address cannot hold a token")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	lifetime := cfg.JWTExpiryDuration
	if *ttl > 0 {
		lifetime = *ttl
	}

	token, err := middleware.IssueToken(caller, cfg.JWTSecret, cfg.JWTIssuer, lifetime)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s\nexpires %s\n", token, time.Now().Add(lifetime).UTC().Format(time.RFC3339))
	return err
}
