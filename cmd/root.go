package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "nocache-server [port]",
	Short: "serve the current directory over HTTP with caching disabled",
	Long: `Serve a directory over HTTP for local development.

Every response carries headers that disable client caching and allow
cross-origin access, so edited files show up on the next refresh.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runServer,
}

func init() {
	viper.SetEnvPrefix("nocache")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	serverInit()
}

// Execute primary function for cobra
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
