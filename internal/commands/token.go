package commands

import (
	"fmt"
	"time"

	"github.com/SscSPs/rental_ledger/internal/platform/config"
	"github.com/SscSPs/rental_ledger/internal/utils"
	"github.com/spf13/cobra"
)

func newTokenCommand() *cobra.Command {
	var userID string
	var workplaces []string
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a development JWT for the configured secret",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if cfg.IsProduction {
				return fmt.Errorf("refusing to issue tokens in production")
			}
			token, err := utils.GenerateJWT(userID, workplaces, cfg.JWTSecret, ttl, cfg.JWTIssuer)
			if err != nil {
				return fmt.Errorf("signing token: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user id placed in the subject claim (required)")
	_ = cmd.MarkFlagRequired("user")
	cmd.Flags().StringSliceVar(&workplaces, "workplace", nil, "workplace the token grants; repeatable (required)")
	_ = cmd.MarkFlagRequired("workplace")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")

	return cmd
}
