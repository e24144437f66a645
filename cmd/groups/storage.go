// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/taibuivan/grouproster/internal/core/group"
	"github.com/taibuivan/grouproster/internal/platform/config"
	pgstore "github.com/taibuivan/grouproster/internal/platform/postgres"
)

// storage is the opened repository plus the hooks the server needs around it.
type storage struct {
	repository group.Repository

	// ping backs the readiness probe; nil for the memory driver.
	ping func(ctx context.Context) error

	// db exposes pool statistics to metrics; nil for the memory driver.
	db *sql.DB

	close func()
}

// openStorage connects the configured backend and ensures its schema.
func openStorage(ctx context.Context, cfg *config.Config, log *slog.Logger) (*storage, error) {
	if cfg.StorageDriver == config.DriverMemory {
		log.Warn("memory_storage_selected", slog.String("note", "data is lost on exit"))
		return &storage{repository: group.NewMemoryRepository(), close: func() {}}, nil
	}

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return nil, err
	}

	db, err := pgstore.OpenGorm(pool, log)
	if err != nil {
		pool.Close()
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: unwrap sql.DB: %w", err)
	}

	repository := group.NewGormRepository(db)
	if cfg.EnsureSchema {
		if err := repository.EnsureCreated(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("ensure schema: %w", err)
		}
		log.Info("schema_ensured", slog.String("table", group.Entity{}.TableName()))
	}

	return &storage{
		repository: repository,
		ping: func(ctx context.Context) error {
			return pgstore.Ping(ctx, pool)
		},
		db: sqlDB,
		close: func() {
			log.Info("closing_postgres_pool")
			_ = sqlDB.Close()
			pool.Close()
		},
	}, nil
}
