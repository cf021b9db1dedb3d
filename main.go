package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tuannh982/linear-map/cmd/compare"
	"github.com/tuannh982/linear-map/cmd/demo"
	"github.com/tuannh982/linear-map/utils/logging"
)

var rootCmd = &cobra.Command{
	Use:   "linearmap",
	Short: "Linear map playground",
	PersistentPreRun: func(*cobra.Command, []string) {
		logging.Configure(os.Stderr)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&logging.Debug, "log-debug", "d", false, "Enable debug logs")
	rootCmd.PersistentFlags().BoolVarP(&logging.JSON, "log-json", "j", false, "Print logs in JSON format")

	rootCmd.AddCommand(demo.Cmd)
	rootCmd.AddCommand(compare.Cmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
