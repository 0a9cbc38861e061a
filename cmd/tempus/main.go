package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/tempus/internal/cli"
	"github.com/alexanderramin/tempus/internal/cli/formatter"
	"github.com/alexanderramin/tempus/internal/db"
	"github.com/alexanderramin/tempus/internal/repository"
	"github.com/alexanderramin/tempus/internal/service"
	"github.com/alexanderramin/tempus/internal/webhook"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.tempus/tempus.db
	dbPath := os.Getenv("TEMPUS_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".tempus", "tempus.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	entryRepo := repository.NewSQLiteEntryRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	pusher := webhook.NewClient()

	// Webhook delivery outcomes go to stderr so they never pollute
	// parseable command output.
	notify := func(msg string) {
		fmt.Fprintln(os.Stderr, formatter.Dim(msg))
	}

	var observers []service.UseCaseObserver
	if os.Getenv("TEMPUS_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Entries:  service.NewEntryService(entryRepo, settingsRepo, pusher, notify, observers...),
		Summary:  service.NewSummaryService(entryRepo, settingsRepo),
		Settings: service.NewSettingsService(settingsRepo, pusher),
		Backup:   service.NewBackupService(entryRepo, settingsRepo, uow),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
