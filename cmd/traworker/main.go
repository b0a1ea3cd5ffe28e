package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/traworker/internal/cli"
	"github.com/alexanderramin/traworker/internal/config"
	"github.com/alexanderramin/traworker/internal/db"
	"github.com/alexanderramin/traworker/internal/repository"
	"github.com/alexanderramin/traworker/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Settings: TRAWORKER_CONFIG or ~/.traworker/config.toml, then TRAWORKER_* env vars
	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	refs := repository.NewSQLiteReferenceRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Evaluations: service.NewEvaluationService(cfg.Precision, observer),
		Tables:      service.NewTableService(refs, uow, observer),
		Config:      cfg,
		IsInteractive: func() bool {
			return isTerminal(os.Stdin) && isTerminal(os.Stdout)
		},
	}

	return cli.NewRootCmd(app).Execute()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
