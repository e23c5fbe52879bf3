package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/jask/themenu/internal/assets"
	"github.com/jask/themenu/internal/catalog"
	"github.com/jask/themenu/internal/config"
	"github.com/jask/themenu/internal/database"
	"github.com/jask/themenu/internal/logging"
	"github.com/jask/themenu/internal/order"
	"github.com/jask/themenu/internal/session"
	"github.com/jask/themenu/internal/tui"
)

func main() {
	writeConfig := flag.Bool("write-config", false, "write the effective configuration to the config file and exit")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *writeConfig {
		path, err := config.Save(cfg)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		fmt.Println(path)
		return
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer closer.Close()

	menu, err := loadCatalog(ctx, cfg.Catalog)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}
	logger.WithFields(logrus.Fields{
		"source": cfg.Catalog.Source,
		"items":  menu.Len(),
	}).Info("catalog loaded")

	app, err := tui.New(session.Options{
		Catalog:         menu,
		Logger:          logger,
		Prices:          order.PriceFormatter{Prefix: cfg.UI.CurrencySymbol},
		DefaultCategory: cfg.UI.DefaultCategory,
	}, assets.Default())
	if err != nil {
		log.Fatalf("session: %v", err)
	}

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(app, opts...).Run(); err != nil {
		logger.WithError(err).Error("program exited")
		fmt.Printf("error: %v\n", err)
	}
}

func loadCatalog(ctx context.Context, cfg config.CatalogConfig) (*catalog.Catalog, error) {
	if cfg.Source == config.SourceBuiltin {
		return catalog.Builtin(), nil
	}
	return database.OpenCatalog(ctx, cfg.Path)
}
