package main

import (
	"fmt"
	"os"

	"github.com/scriptkit/scriptkit-bridge/auth"
	"github.com/scriptkit/scriptkit-bridge/config"
	"github.com/spf13/cobra"
)

func newTokenCommand(cfg *config.Config) *cobra.Command {
	var regenerate bool

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print the bridge's bearer token, creating one if needed",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfg.ResolvedTokenPath()
			if regenerate {
				if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("token: removing existing token: %w", err)
				}
			}

			token, err := auth.LoadOrCreateToken(path)
			if err != nil {
				return fmt.Errorf("token: %w", err)
			}

			fmt.Println(token)
			return nil
		},
	}

	cmd.Flags().BoolVar(&regenerate, "regenerate", false, "discard the existing token and mint a new one")
	return cmd
}
