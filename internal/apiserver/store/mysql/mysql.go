// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package mysql 基于 gorm 的 MySQL 存储实现
package mysql

import (
	"embed"
	"fmt"
	"sync"

	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"

	"github.com/abdulrazak24/cake-manager-api/internal/apiserver/store"
	genericoptions "github.com/abdulrazak24/cake-manager-api/internal/pkg/options"
	"github.com/abdulrazak24/cake-manager-api/pkg/errors"
	"github.com/abdulrazak24/cake-manager-api/pkg/log"
)

const backend = "mysql"

//go:embed migrations/*.sql
var migrationsFS embed.FS

type datastore struct {
	db *gorm.DB
}

func (ds *datastore) Cakes() store.CakeStore {
	return newCakes(ds)
}

func (ds *datastore) Close() error {
	db, err := ds.db.DB()
	if err != nil {
		return errors.Wrap(err, "get gorm db instance failed")
	}

	return db.Close()
}

// NewFactory 用已有的 gorm 连接构造存储
func NewFactory(db *gorm.DB) store.Factory {
	return &datastore{db: db}
}

var (
	mysqlFactory store.Factory
	once         sync.Once
)

// GetMySQLFactoryOr 按配置创建 MySQL 存储，只初始化一次
func GetMySQLFactoryOr(opts *genericoptions.MySQLOptions, migrateSchema bool) (store.Factory, error) {
	if opts == nil && mysqlFactory == nil {
		return nil, fmt.Errorf("failed to get mysql store factory")
	}

	var err error
	once.Do(func() {
		var dbIns *gorm.DB
		dbIns, err = opts.NewClient()
		if err != nil {
			return
		}

		if migrateSchema {
			if err = migrateDatabase(dbIns); err != nil {
				return
			}
		}

		mysqlFactory = &datastore{dbIns}
	})

	if mysqlFactory == nil || err != nil {
		return nil, fmt.Errorf("failed to get mysql store factory, mysqlFactory: %+v, error: %w", mysqlFactory, err)
	}

	return mysqlFactory, nil
}

// migrateDatabase 执行内嵌的建表迁移
func migrateDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "get gorm db instance failed")
	}

	driver, err := migratemysql.WithInstance(sqlDB, &migratemysql.Config{})
	if err != nil {
		return errors.Wrap(err, "create migration driver")
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return errors.Wrap(err, "create migration source")
	}

	m, err := migrate.NewWithInstance("iofs", source, backend, driver)
	if err != nil {
		return errors.Wrap(err, "create migrator")
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "run migrations")
	}

	version, _, _ := m.Version()
	log.Infof("mysql schema migrated to version %d", version)

	return nil
}
