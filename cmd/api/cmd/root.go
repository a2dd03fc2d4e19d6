package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "suar-time",
	Short: "Time conversion API",
	Long: `suar-time converts Unix timestamps and YYYY/MM/DD@HH:mm:ss dates into
utc, readable, iso8601 and unix representations.

Without a subcommand the HTTP server is started.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "warning: could not read .env: %v\n", err)
		}
	},
	RunE: runServe,
}

func Execute() error {
	return rootCmd.Execute()
}
