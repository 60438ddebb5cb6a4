package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/greentech-painting/greenpush/internal/config"
	"github.com/greentech-painting/greenpush/internal/logger"
	"github.com/greentech-painting/greenpush/internal/store"
)

var (
	historyReference string
	historyStatus    string
	historyLimit     int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past push runs from the local history store",
	Long: `Lists the most recent pipeline runs recorded in the local sqlite
history database (QBO_HISTORY_DB). The CSV audit log is unaffected.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHistory(cmd)
	},
}

func init() {
	historyCmd.Flags().StringVar(&historyReference, "reference", "", "filter by quote reference")
	historyCmd.Flags().StringVar(&historyStatus, "status", "", "filter by status (created, mock_created, failed)")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of rows")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command) error {
	log := logger.NewCLILogger("history")

	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}
	if cfg.QBO.HistoryDB == "" {
		return fmt.Errorf("history store is not configured; set QBO_HISTORY_DB")
	}

	repo, err := store.NewHistoryRepository(cfg.QBO.HistoryDB, log)
	if err != nil {
		return err
	}
	defer repo.Close()

	rows, err := repo.ListRuns(cmd.Context(), store.HistoryFilter{
		Reference: historyReference,
		Status:    historyStatus,
		Limit:     historyLimit,
	})
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		fmt.Println("no runs recorded")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TS\tREFERENCE\tCUSTOMER\tSTATUS\tSUBTOTAL\tESTIMATE\tERROR")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f %s\t%s\t%s\n",
			row.Timestamp, row.Reference, row.CustomerName, row.Status,
			row.Subtotal, row.Currency, row.EstimateID, row.Error)
	}
	return w.Flush()
}
