package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/greentech-painting/greenpush/internal/config"
	"github.com/greentech-painting/greenpush/internal/logger"
	"github.com/greentech-painting/greenpush/internal/oauth"
)

var revokeCmd = &cobra.Command{
	Use:   "revoke",
	Short: "Revoke the configured refresh token",
	Long: `Disconnects this integration from QuickBooks Online by revoking the
configured refresh token. A new authorization flow is needed afterwards.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRevoke(cmd)
	},
}

func init() {
	rootCmd.AddCommand(revokeCmd)
}

func runRevoke(cmd *cobra.Command) error {
	log := logger.NewCLILogger("revoke")

	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}
	if cfg.QBO.RefreshToken == "" {
		return fmt.Errorf("no refresh token configured")
	}

	tokens := oauth.New(cfg.QBO, log)
	ok, err := tokens.Revoke(cmd.Context(), cfg.QBO.RefreshToken)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(os.Stderr, "revocation was not accepted; see log for details")
		os.Exit(1)
	}

	fmt.Println("refresh token revoked")
	return nil
}
