package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/ADITYATHUNGAK/Ai-For-Healthcare/cmd/http"
	systemcmd "github.com/ADITYATHUNGAK/Ai-For-Healthcare/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "aihealth",
	Short: "Post-operative recovery monitoring backend.",
	Long: `aihealth is the backend for a post-operative recovery monitoring portal.
Patients submit daily recovery reports and chat with a health assistant; doctors
get a risk-ranked dashboard of their patients and write prescriptions back.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
