// Command scriptkit-bridge runs the Script-as-Tool Bridge standalone,
// serving the kit namespace and an empty scripts catalog against the
// host collaborators' no-op defaults. A real host embeds the bridge
// packages directly and supplies its own ScriptSource/WindowController/
// PendingExecutor; this binary exists for smoke-testing the protocol and
// for `token` management (§6 "CLI surface... the enclosing application
// hosts any CLI" — this is that enclosing application, in miniature).
package main

import (
	"fmt"
	"os"

	"github.com/scriptkit/scriptkit-bridge/config"
	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	cfg := config.New()

	if err := cfg.PreloadConfigFile(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:           "scriptkit-bridge",
		Short:         "Script Kit MCP bridge",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cfg.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newServeCommand(cfg))
	rootCmd.AddCommand(newTokenCommand(cfg))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
