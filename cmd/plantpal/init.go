package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/plantpal/internal/db"
	"github.com/jacksmith/plantpal/internal/storage"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty plant list",
	Long: `Create an empty plant list in the data directory (--dir, default ".").

With the default json backend this writes an empty plants.json (or the
data_file named in .plantpal.yaml). With backend: sqlite the database is
created and migrated.

Fails if the plant file already exists.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	s, err := storage.Init(flagDir)
	if err != nil {
		return err
	}
	cfg, err := s.LoadConfig()
	if err != nil {
		return err
	}

	if cfg.Backend == storage.BackendSQLite {
		path := s.Path(cfg.DBFile)
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
		st, err := db.Open(path, zerolog.Nop())
		if err != nil {
			return err
		}
		if err := st.Close(); err != nil {
			return fmt.Errorf("failed to close %s: %w", path, err)
		}
		fmt.Printf("Initialized plant database %s\n", path)
		return nil
	}

	fmt.Printf("Initialized empty plant list %s\n", s.Path(cfg.DataFile))
	return nil
}
