package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/mountainflow/internal/cli"
	"github.com/alexanderramin/mountainflow/internal/config"
	"github.com/alexanderramin/mountainflow/internal/content"
	"github.com/alexanderramin/mountainflow/internal/db"
	"github.com/alexanderramin/mountainflow/internal/repository"
	"github.com/alexanderramin/mountainflow/internal/service"
	"github.com/alexanderramin/mountainflow/internal/store"
	"github.com/alexanderramin/mountainflow/internal/suggest"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogFile != "" {
		level, _ := cfg.Level()
		logOut := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		defer logOut.Close()
		observer = service.NewLogUseCaseObserver(logOut, level, uuid.NewString())
	}

	tables, err := loadContent(cfg.ContentPath)
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	st := store.New(repository.NewSQLitePreferenceRepo(database), db.NewSQLiteUnitOfWork(database))
	shell := service.NewShell(context.Background(), st, suggest.NewEngine(tables), service.WithObserver(observer))

	app := &cli.App{
		Shell: shell,
		Store: st,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}

func loadContent(path string) (*content.Tables, error) {
	if path == "" {
		return content.Default()
	}
	tables, err := content.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading content %s: %w", path, err)
	}
	return tables, nil
}
