package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nmarks/rolo/internal/config"
	"github.com/nmarks/rolo/internal/database"
	"github.com/nmarks/rolo/internal/database/repository"
	"github.com/nmarks/rolo/internal/service"
	"github.com/nmarks/rolo/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.SeedDefaults(ctx, db); err != nil {
		log.Fatalf("seed defaults: %v", err)
	}

	contactRepo := repository.NewContactRepo(db)
	tagRepo := repository.NewTagRepo(db)

	importer := &service.ImportService{Contacts: contactRepo, Tags: tagRepo, DefaultTag: cfg.Import.DefaultTag}
	deduper := &service.Deduper{Contacts: contactRepo}
	maintenance := &service.MaintenanceService{DB: db}

	p := tea.NewProgram(tui.New(ctx, cfg,
		tui.Repos{Contacts: contactRepo, Tags: tagRepo},
		tui.Services{Import: importer, Dedupe: deduper, Maintenance: maintenance},
	), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
