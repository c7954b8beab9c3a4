package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/Veraticus/gilded-rose/internal/common"
	"github.com/Veraticus/gilded-rose/internal/config"
	"github.com/Veraticus/gilded-rose/internal/service"
	"github.com/Veraticus/gilded-rose/internal/storage"
	"github.com/spf13/viper"
)

// envKeyReplacer maps nested keys such as database.path to ROSE_DATABASE_PATH.
var envKeyReplacer = strings.NewReplacer(".", "_")

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, common.NewUserError("invalid configuration", err)
	}
	return cfg, nil
}

// initStorage opens the stock ledger and brings its schema up to date.
func initStorage(ctx context.Context) (service.Storage, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	store, err := storage.NewSQLiteStorage(cfg.Database.Path)
	if err != nil {
		return nil, common.NewUserError("could not open the stock ledger", err)
	}

	common.LogDebug("opened stock ledger", common.Fields{"path": store.Path()})

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}
