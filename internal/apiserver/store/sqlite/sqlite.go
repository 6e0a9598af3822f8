// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package sqlite 基于 sqlx 的 SQLite 存储实现，适合单机部署与集成测试
package sqlite

import (
	"embed"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"

	"github.com/abdulrazak24/cake-manager-api/internal/apiserver/store"
	genericoptions "github.com/abdulrazak24/cake-manager-api/internal/pkg/options"
	"github.com/abdulrazak24/cake-manager-api/pkg/errors"
	"github.com/abdulrazak24/cake-manager-api/pkg/log"
)

const backend = "sqlite"

//go:embed migrations/*.sql
var migrationsFS embed.FS

type datastore struct {
	db *sqlx.DB
}

func (ds *datastore) Cakes() store.CakeStore {
	return newCakes(ds)
}

func (ds *datastore) Close() error {
	return ds.db.Close()
}

// NewFactory 打开 SQLite 并按需执行迁移
func NewFactory(opts *genericoptions.SQLiteOptions, migrateSchema bool) (store.Factory, error) {
	db, err := opts.NewClient()
	if err != nil {
		return nil, err
	}

	if migrateSchema {
		if err := migrateDatabase(db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return &datastore{db: db}, nil
}

// migrateDatabase 执行内嵌的建表迁移
func migrateDatabase(db *sqlx.DB) error {
	driver, err := sqlite3.WithInstance(db.DB, &sqlite3.Config{NoTxWrap: true})
	if err != nil {
		return errors.Wrap(err, "create migration driver")
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return errors.Wrap(err, "create migration source")
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return errors.Wrap(err, "create migrator")
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "run migrations")
	}

	version, _, _ := m.Version()
	log.Infof("sqlite schema migrated to version %d", version)

	return nil
}
