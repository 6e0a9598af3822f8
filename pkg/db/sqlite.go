// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package db

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // sqlite3 驱动

	"github.com/abdulrazak24/cake-manager-api/pkg/log"
)

// SQLiteOptions SQLite 连接参数
type SQLiteOptions struct {
	// Path 数据库文件路径，":memory:" 为内存库
	Path string
	// MaxOpenConnections 内存库必须为 1，否则每个连接各自一份数据
	MaxOpenConnections int
}

// NewSQLite 打开 SQLite 并开启外键约束
func NewSQLite(opts *SQLiteOptions) (*sqlx.DB, error) {
	dsn := opts.Path
	if strings.Contains(dsn, "?") {
		dsn += "&_foreign_keys=on"
	} else {
		dsn += "?_foreign_keys=on"
	}

	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	maxOpen := opts.MaxOpenConnections
	if opts.Path == ":memory:" || maxOpen <= 0 {
		maxOpen = 1
	}
	db.SetMaxOpenConns(maxOpen)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	log.Infof("SQLite database opened: path=%s", opts.Path)

	return db, nil
}
