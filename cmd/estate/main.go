// Estate Core serves in-memory property listings and a string list over a
// self-documenting REST API.
//
//	estate serve --config configs/config.yaml
//	estate openapi --format yaml
//	estate version
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

// configEnvVar names the environment variable holding the config path.
const configEnvVar = "ESTATE_CONFIG"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Running the root command without a
// subcommand starts the server.
func newRootCmd() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:   "estate",
		Short: "Estate Core REST service",
		Long: `Estate Core serves property listings and an ordered string list from memory.
It documents itself with an OpenAPI 3 document (/swagger.json) and Swagger UI (/docs).`,
		SilenceUsage:  true,
		SilenceErrors: true, // main prints the error
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cfgPath)
		},
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "",
		"config file (default $"+configEnvVar+" or "+defaultConfigPath+")")

	root.AddCommand(
		newServeCmd(&cfgPath),
		newOpenAPICmd(),
		newVersionCmd(),
	)
	return root
}
