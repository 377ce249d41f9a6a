package system

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dentio/dentio_backend/config"
	"github.com/dentio/dentio_backend/internal/records"
	"github.com/dentio/dentio_backend/internal/store"
)

// openClient reads the config named by the root --config flag and opens
// the record repository over the configured store.
func openClient(cmd *cobra.Command) (*records.Client, func() error, error) {
	cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read config: %w", err)
	}

	s, closer, err := store.FromConfig(cfg)
	if err != nil {
		return nil, nil, err
	}
	return records.NewClient(s, nil), closer, nil
}

func NewSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Initialize store slots with the default dataset",
		Long: `Ensure every record slot exists, writing the default dataset into any
slot that has never been written. Existing data is left untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, closer, err := openClient(cmd)
			if err != nil {
				return err
			}
			defer closer()

			ctx := cmd.Context()

			// Reading a never-written slot writes the default dataset.
			patients, err := db.Patients(ctx)
			if err != nil {
				return fmt.Errorf("failed to seed patients: %w", err)
			}
			incidents, err := db.Incidents(ctx)
			if err != nil {
				return fmt.Errorf("failed to seed incidents: %w", err)
			}

			fmt.Printf("Store ready: %d patients, %d incidents.\n", len(patients), len(incidents))
			return nil
		},
	}

	return cmd
}
