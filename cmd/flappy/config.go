package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration the game would run with.

The file is looked up in this order: --config, ~/.flappy/configs/flappy.yaml,
./configs/flappy.yaml, then the built-in defaults.

Examples:
  flappy config
  flappy config --defaults > configs/flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	if flagDefaults {
		fmt.Fprint(out, string(config.DefaultYAML()))
		return
	}

	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if path := config.ResolvePath(flagConfig); path != "" {
		fmt.Fprintf(out, "# from %s\n", path)
	} else {
		fmt.Fprintln(out, "# built-in defaults")
	}
	fmt.Fprint(out, string(data))
}
