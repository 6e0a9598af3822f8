// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package options

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/pflag"

	"github.com/abdulrazak24/cake-manager-api/pkg/db"
)

// SQLiteOptions SQLite 存储选项
type SQLiteOptions struct {
	Path               string `json:"path"                 mapstructure:"path"`
	MaxOpenConnections int    `json:"max-open-connections" mapstructure:"max-open-connections"`
}

// NewSQLiteOptions 默认在工作目录下建库
func NewSQLiteOptions() *SQLiteOptions {
	return &SQLiteOptions{
		Path:               "cakes.db",
		MaxOpenConnections: 1,
	}
}

// Validate 路径不能为空
func (o *SQLiteOptions) Validate() []error {
	var errs []error

	if strings.TrimSpace(o.Path) == "" {
		errs = append(errs, fmt.Errorf("--sqlite.path must not be empty"))
	}

	return errs
}

// AddFlags 绑定命令行参数
func (o *SQLiteOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Path, "sqlite.path", o.Path, ""+
		"SQLite database file. Use :memory: for a throwaway in-process database. Used when --store.type=sqlite.")

	fs.IntVar(&o.MaxOpenConnections, "sqlite.max-open-connections", o.MaxOpenConnections, ""+
		"Maximum open connections to the sqlite file. Forced to 1 for :memory:.")
}

// NewClient 打开 SQLite 连接
func (o *SQLiteOptions) NewClient() (*sqlx.DB, error) {
	return db.NewSQLite(&db.SQLiteOptions{
		Path:               o.Path,
		MaxOpenConnections: o.MaxOpenConnections,
	})
}
