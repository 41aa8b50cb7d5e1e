package system

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/config"
	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/pkg/database"
)

func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the application database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			fmt.Println("Initializing database...")
			if err := database.InitializeDatabase(cfg); err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			fmt.Println("Database initialized successfully.")
			return nil
		},
	}

	return cmd
}
