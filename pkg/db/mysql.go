// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package db 构造关系型数据库连接：MySQL 走 gorm，SQLite 走 sqlx。
package db

import (
	"context"
	"fmt"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/abdulrazak24/cake-manager-api/pkg/log"
)

// Options MySQL 连接参数
type Options struct {
	Host                  string        // 如 "127.0.0.1:3306"
	Username              string        // 用户名
	Password              string        // 密码
	Database              string        // 库名
	MaxIdleConnections    int           // 最大空闲连接
	MaxOpenConnections    int           // 最大打开连接
	MaxConnectionLifeTime time.Duration // 连接最长复用时间
	LogLevel              int           // gorm 日志级别 0-3
	SlowQueryThreshold    time.Duration // 慢查询阈值
	Timeout               time.Duration // 单条语句超时
	Logger                logger.Interface
}

// DSN 组装 MySQL 连接串。
// ClientFoundRows 让 UPDATE 返回匹配行数而非变更行数，
// 内容未变的更新不会被误判为记录不存在。
func (o *Options) DSN() string {
	cfg := mysqldriver.NewConfig()
	cfg.User = o.Username
	cfg.Passwd = o.Password
	cfg.Net = "tcp"
	cfg.Addr = o.Host
	cfg.DBName = o.Database
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Timeout = 10 * time.Second
	cfg.ReadTimeout = 30 * time.Second
	cfg.WriteTimeout = 30 * time.Second
	cfg.ClientFoundRows = true
	cfg.MultiStatements = true
	cfg.Params = map[string]string{"charset": "utf8mb4"}

	return cfg.FormatDSN()
}

// New 打开 MySQL 连接并配置连接池
func New(opts *Options) (*gorm.DB, error) {
	setDefaultOptions(opts)

	db, err := gorm.Open(mysql.Open(opts.DSN()), &gorm.Config{
		Logger:                 opts.Logger,
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(opts.MaxOpenConnections)
	sqlDB.SetMaxIdleConns(opts.MaxIdleConnections)
	sqlDB.SetConnMaxLifetime(opts.MaxConnectionLifeTime)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	addQueryTimeoutCallbacks(db, opts.Timeout)

	log.Infof("Database connection pool initialized: MaxOpenConns=%d, MaxIdleConns=%d, ConnMaxLifetime=%v",
		opts.MaxOpenConnections, opts.MaxIdleConnections, opts.MaxConnectionLifeTime)

	return db, nil
}

// addQueryTimeoutCallbacks 为没有截止时间的语句补上超时
func addQueryTimeoutCallbacks(db *gorm.DB, timeout time.Duration) {
	cb := db.Callback()
	_ = cb.Create().Before("gorm:create").Register("query_timeout:create", withTimeout(timeout))
	_ = cb.Create().After("gorm:create").Register("query_timeout:create_cleanup", cleanupTimeout)
	_ = cb.Query().Before("gorm:query").Register("query_timeout:query", withTimeout(timeout))
	_ = cb.Query().After("gorm:query").Register("query_timeout:query_cleanup", cleanupTimeout)
	_ = cb.Update().Before("gorm:update").Register("query_timeout:update", withTimeout(timeout))
	_ = cb.Update().After("gorm:update").Register("query_timeout:update_cleanup", cleanupTimeout)
	_ = cb.Delete().Before("gorm:delete").Register("query_timeout:delete", withTimeout(timeout))
	_ = cb.Delete().After("gorm:delete").Register("query_timeout:delete_cleanup", cleanupTimeout)
}

func withTimeout(timeout time.Duration) func(*gorm.DB) {
	return func(db *gorm.DB) {
		parent := db.Statement.Context
		if parent == nil {
			parent = context.Background()
		}
		if _, ok := parent.Deadline(); ok {
			return
		}
		ctx, cancel := context.WithTimeout(parent, timeout)
		db.Statement.Context = ctx
		db.InstanceSet("query_timeout_cancel", cancel)
	}
}

func cleanupTimeout(db *gorm.DB) {
	if v, ok := db.InstanceGet("query_timeout_cancel"); ok {
		if cancel, ok := v.(context.CancelFunc); ok {
			cancel()
		}
		db.InstanceSet("query_timeout_cancel", nil)
	}
}

func setDefaultOptions(opts *Options) {
	if opts.MaxOpenConnections <= 0 {
		opts.MaxOpenConnections = 100
	}
	if opts.MaxIdleConnections <= 0 {
		opts.MaxIdleConnections = 10
	}
	if opts.MaxConnectionLifeTime <= 0 {
		opts.MaxConnectionLifeTime = time.Hour
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 3 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = newGormLogger(opts)
	}
}
