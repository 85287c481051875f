package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"motionview/internal/version"
	"motionview/pkg/log"
)

var (
	logLevel   string
	configFile string
)

var rootCmd = &cobra.Command{
	Use:   "motionview",
	Short: "motionview is a motion event archive viewer",
	Long: `Browse recorded motion events by date and detected objects.
Version: ` + version.VERSION + `/` + version.COMMIT,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.InitLog(logLevel)
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "Log level (debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to config file, defaults are used when empty")

	rootCmd.AddCommand(serveCommand)
	rootCmd.AddCommand(queryCommand)
	rootCmd.AddCommand(schemaCommand)
}
