// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GreenTech Painting

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/greentech-painting/greenpush/internal/config"
	"github.com/greentech-painting/greenpush/internal/logger"
	"github.com/greentech-painting/greenpush/internal/oauth"
	"github.com/greentech-painting/greenpush/internal/qbo"
	"github.com/greentech-painting/greenpush/internal/service"
	"github.com/greentech-painting/greenpush/internal/store"
	"github.com/greentech-painting/greenpush/models"
)

var (
	pushJSONPath string
	pushMock     bool
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push one quote JSON file to QuickBooks Online",
	Long: `Reads the quote document at --json, validates it, and creates the
matching customer and estimate remotely. With --mock no remote call is made
and a local stand-in document is written instead.

The final result object is printed to stdout as JSON; logs go to stderr.`,
	Run: func(cmd *cobra.Command, args []string) {
		if !runPush(cmd) {
			os.Exit(1)
		}
	},
}

func init() {
	pushCmd.Flags().StringVar(&pushJSONPath, "json", "", "path to the quote JSON file")
	pushCmd.Flags().BoolVar(&pushMock, "mock", false, "render a local stand-in document instead of calling the API")
	pushCmd.MarkFlagRequired("json")
	rootCmd.AddCommand(pushCmd)
}

func runPush(cmd *cobra.Command) bool {
	log := logger.NewCLILogger("push")

	raw, err := loadQuote(pushJSONPath)
	if err != nil {
		// An unreadable input never reaches the pipeline and writes no
		// audit row.
		printResult(models.SyncResult{OK: false, Error: "Failed to load JSON: " + err.Error()})
		return false
	}

	cfg, err := config.GetConfig()
	if err != nil {
		printResult(models.SyncResult{OK: false, Error: "Unexpected error: " + err.Error()})
		return false
	}

	audit := store.NewAuditLog(cfg.Output.AuditLog)

	var history service.HistoryRecorder
	if cfg.QBO.HistoryDB != "" {
		repo, err := store.NewHistoryRepository(cfg.QBO.HistoryDB, log)
		if err != nil {
			log.Warn().Err(err).Msg("history store unavailable, continuing without it")
		} else {
			defer repo.Close()
			history = repo
		}
	}

	var api service.AccountingAPI
	if !pushMock {
		tokens := oauth.New(cfg.QBO, log)
		api = qbo.NewClient(cfg.QBO, tokens, log)
	}

	orch := service.New(api, audit, history, service.Options{QuotesDir: cfg.Output.QuotesDir}, log)
	res := orch.Run(cmd.Context(), raw, pushMock)

	printResult(res)
	return res.OK
}

func loadQuote(path string) (models.RawQuote, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.RawQuote{}, err
	}

	var raw models.RawQuote
	if err = json.Unmarshal(data, &raw); err != nil {
		return models.RawQuote{}, err
	}

	return raw, nil
}

func printResult(res models.SyncResult) {
	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(string(out))
}
