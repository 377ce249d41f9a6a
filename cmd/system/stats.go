package system

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dentio/dentio_backend/internal/service/dashboard"
)

func NewStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print dashboard statistics for the stored records",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, closer, err := openClient(cmd)
			if err != nil {
				return err
			}
			defer closer()

			st, err := dashboard.New(db).Stats(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to compute stats: %w", err)
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(st)
		},
	}

	return cmd
}
