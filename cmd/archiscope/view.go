package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quantcla/archiscope/internal/app"
	"github.com/quantcla/archiscope/internal/config"
	"github.com/quantcla/archiscope/internal/logger"
	"github.com/quantcla/archiscope/pkg/scene"
	"github.com/quantcla/archiscope/pkg/stl"
)

var viewWatch bool

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Open a model in the interactive measurement viewer",
	Long: `Open an STL model in the viewer. Click with the line or polygon tool to
take snap-assisted measurements, toggle a horizontal section cut with S,
and export the visible measurements to DXF with E.`,
	Args: cobra.ExactArgs(1),
	Run:  runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().BoolVarP(&viewWatch, "watch", "w", false, "Reload the model when the file changes")
}

func runView(cmd *cobra.Command, args []string) {
	filename := args[0]

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if viewWatch {
		cfg.Viewer.Watch = true
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	model, err := stl.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	sc := scene.NewScene()
	sc.Add(scene.SurfaceFromModel(model.Name, model))

	viewer := app.New(cfg, filename, sc, log)
	if err := viewer.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
