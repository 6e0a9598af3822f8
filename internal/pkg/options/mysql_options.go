// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package options

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"gorm.io/gorm"

	"github.com/abdulrazak24/cake-manager-api/pkg/db"
)

// MySQLOptions MySQL 存储选项
type MySQLOptions struct {
	Host                  string        `json:"host,omitempty"                     mapstructure:"host"`
	Username              string        `json:"username,omitempty"                 mapstructure:"username"`
	Password              string        `json:"-"                                  mapstructure:"password"`
	Database              string        `json:"database"                           mapstructure:"database"`
	MaxIdleConnections    int           `json:"max-idle-connections,omitempty"     mapstructure:"max-idle-connections"`
	MaxOpenConnections    int           `json:"max-open-connections,omitempty"     mapstructure:"max-open-connections"`
	MaxConnectionLifeTime time.Duration `json:"max-connection-life-time,omitempty" mapstructure:"max-connection-life-time"`
	SlowQueryThreshold    time.Duration `json:"slow-query-threshold,omitempty"     mapstructure:"slow-query-threshold"`
	LogLevel              int           `json:"log-level"                          mapstructure:"log-level"`
}

// NewMySQLOptions 默认值
func NewMySQLOptions() *MySQLOptions {
	return &MySQLOptions{
		Host:                  "127.0.0.1:3306",
		Username:              "cake",
		Password:              "",
		Database:              "cakes",
		MaxIdleConnections:    10,
		MaxOpenConnections:    100,
		MaxConnectionLifeTime: 10 * time.Second,
		SlowQueryThreshold:    200 * time.Millisecond,
		LogLevel:              1,
	}
}

// Validate 连接池参数不能为负
func (o *MySQLOptions) Validate() []error {
	var errs []error

	if o.MaxIdleConnections < 0 || o.MaxOpenConnections < 0 {
		errs = append(errs, fmt.Errorf("--mysql.max-idle-connections and --mysql.max-open-connections must not be negative"))
	}
	if o.MaxOpenConnections > 0 && o.MaxIdleConnections > o.MaxOpenConnections {
		errs = append(errs, fmt.Errorf("--mysql.max-idle-connections %d exceeds --mysql.max-open-connections %d",
			o.MaxIdleConnections, o.MaxOpenConnections))
	}

	return errs
}

// AddFlags 绑定命令行参数
func (o *MySQLOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Host, "mysql.host", o.Host, ""+
		"MySQL service host address. Used when --store.type=mysql.")

	fs.StringVar(&o.Username, "mysql.username", o.Username, ""+
		"Username for access to mysql service.")

	fs.StringVar(&o.Password, "mysql.password", o.Password, ""+
		"Password for access to mysql, should be used pair with password.")

	fs.StringVar(&o.Database, "mysql.database", o.Database, ""+
		"Database name for the server to use.")

	fs.IntVar(&o.MaxIdleConnections, "mysql.max-idle-connections", o.MaxIdleConnections, ""+
		"Maximum idle connections allowed to connect to mysql.")

	fs.IntVar(&o.MaxOpenConnections, "mysql.max-open-connections", o.MaxOpenConnections, ""+
		"Maximum open connections allowed to connect to mysql.")

	fs.DurationVar(&o.MaxConnectionLifeTime, "mysql.max-connection-life-time", o.MaxConnectionLifeTime, ""+
		"Maximum connection life time allowed to connect to mysql.")

	fs.DurationVar(&o.SlowQueryThreshold, "mysql.slow-query-threshold", o.SlowQueryThreshold, ""+
		"Queries slower than this are logged as warnings.")

	fs.IntVar(&o.LogLevel, "mysql.log-mode", o.LogLevel, ""+
		"Specify gorm log level.")
}

// NewClient 按当前选项创建 gorm 连接
func (o *MySQLOptions) NewClient() (*gorm.DB, error) {
	opts := &db.Options{
		Host:                  o.Host,
		Username:              o.Username,
		Password:              o.Password,
		Database:              o.Database,
		MaxIdleConnections:    o.MaxIdleConnections,
		MaxOpenConnections:    o.MaxOpenConnections,
		MaxConnectionLifeTime: o.MaxConnectionLifeTime,
		SlowQueryThreshold:    o.SlowQueryThreshold,
		LogLevel:              o.LogLevel,
	}

	return db.New(opts)
}
