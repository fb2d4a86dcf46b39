package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MichaelCho6556/cardgrid/internal/catalog"
	"github.com/MichaelCho6556/cardgrid/internal/config"
	"github.com/MichaelCho6556/cardgrid/internal/logger"
	"github.com/MichaelCho6556/cardgrid/internal/tui"
)

// version is set via ldflags: go build -ldflags "-X main.version=1.0.0"
var version = "dev"

func main() {
	showVersion := flag.Bool("version", false, "Show version")
	configPath := flag.String("config", "", "Path to config file")
	dataPath := flag.String("data", "", "Path to a YAML catalog (overrides config)")
	count := flag.Int("count", 10000, "Synthetic record count when no catalog file is given")
	seed := flag.Int64("seed", 1, "Seed for the synthetic catalog")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if *showVersion {
		fmt.Printf("cardgrid %s\n", version)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *dataPath != "" {
		cfg.CatalogPath = *dataPath
	}
	if *debug {
		cfg.Debug = true
	}

	if err := logger.Init(cfg.Debug); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logger: %v\n", err)
	}
	defer logger.Close()

	loader := func() ([]catalog.Record, error) {
		if cfg.CatalogPath != "" {
			return catalog.Load(cfg.CatalogPath)
		}
		return catalog.Generate(*count, *seed), nil
	}

	p := tea.NewProgram(
		tui.NewModel(cfg, loader),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
