package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/outlet/pkg/outlet"
)

var (
	// Global flags
	jsonOutput   bool
	logLevel     string
	manifestPath string
)

// rootCmd is the root command for outlet.
var rootCmd = &cobra.Command{
	Use:     "outlet",
	Version: "dev",
	Short:   "Replay single-page-app navigation against a route manifest",
	Long: `outlet loads a TOML route manifest and shows where each navigation mounts its view.

Use it to check outlet behaviour (nested child views inside a parent's container)
without a browser: push pathnames, go back and forward, and inspect the document.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		outlet.SetLogWriter(cmd.ErrOrStderr())
		outlet.Init(outlet.Options{LogLevel: logLevel})
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "error", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&manifestPath, "routes", "r", "routes.toml", "Path to the route manifest")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the outlet CLI version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(routesCmd)
	rootCmd.AddCommand(replayCmd)
}

// Execute executes the root command.
func Execute() error {
	defer outlet.Close()
	return rootCmd.Execute()
}
