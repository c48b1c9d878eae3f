package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/Alfredofh/game-collector-front/internal/services"
	"github.com/Alfredofh/game-collector-front/internal/session"
	"github.com/Alfredofh/game-collector-front/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	ctx := context.Background()
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	appDir, err := shared.AppDir()
	if err != nil {
		logger.Fatalf("failed to prepare application directory: %v", err)
	}

	sessionManager := session.NewManager(session.NewFileTokenStore(appDir), logger)
	if err := sessionManager.Initialize(); err != nil {
		logger.Fatalf("failed to restore session: %v", err)
	}

	authedClient := services.AuthClient(ctx, sessionManager.Token())
	baseURL := config.API.BaseURL

	runner := NewRunner(RunnerOpts{
		Config:  config,
		Session: sessionManager,
		Account: services.NewAccountService(baseURL, nil),
		Catalog: services.NewCollectionService(baseURL, authedClient),
		Library: services.NewGameService(baseURL, authedClient),
		Search:  services.NewSearchService(baseURL, authedClient, config.Search.RatePerSecond),
		API:     services.NewAPIService(baseURL, authedClient),
		Logger:  logger,
	})

	app := &cli.Command{
		Name:     "gcf",
		Usage:    "Manage your video game collections from the terminal",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(ctx, os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}

// cacheDatabasePath resolves the local database location, keeping relative
// paths inside the application directory.
func cacheDatabasePath(config *shared.Config) (string, error) {
	path := config.Database.Path
	if path == ":memory:" || filepath.IsAbs(path) {
		return path, nil
	}
	dir, err := shared.AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, path), nil
}
