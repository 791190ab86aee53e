package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quantcla/archiscope/version"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "archiscope",
	Short: "Interactive measurement and section-cut viewer for architectural models",
	Long: `archiscope loads STL building models and provides snap-assisted distance
and area measurement, horizontal section cuts with solid cross-sections,
and DXF export of the measured geometry.`,
	Version: version.GetVersion(),
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
