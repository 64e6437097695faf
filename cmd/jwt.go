package main

import (
	"coursesearch/internal/config"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
)

// JWTCommand constructs the 'jwt' subcommand that issues a signed RS256 bearer
// token for API clients, using the configured private key or --key.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Issues an API bearer token for the given client",
		RunE: func(cmd *cobra.Command, args []string) error {
			subject, _ := cmd.Flags().GetString("subject")
			ttl, _ := cmd.Flags().GetDuration("ttl")
			keyPath, _ := cmd.Flags().GetString("key")

			pem := []byte(cfg.JWT.PrivateKey)
			if keyPath != "" {
				var err error
				if pem, err = os.ReadFile(keyPath); err != nil {
					return fmt.Errorf("could not read private key: %w", err)
				}
			}
			if len(pem) == 0 {
				return errors.New("no private key configured: set jwt.privateKey or pass --key")
			}

			key, err := jwt.ParseRSAPrivateKeyFromPEM(pem)
			if err != nil {
				return fmt.Errorf("could not parse RSA private key: %w", err)
			}

			now := time.Now()
			claims := jwt.RegisteredClaims{
				Subject:   subject,
				ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
				IssuedAt:  jwt.NewNumericDate(now),
				NotBefore: jwt.NewNumericDate(now),
			}
			signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
			if err != nil {
				return fmt.Errorf("could not sign JWT: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), signed)

			return err
		},
	}

	cmd.Flags().String("subject", "", "Token subject, the API client name")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")
	cmd.Flags().String("key", "", "PEM file with the RSA private key, overrides jwt.privateKey")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
