// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package options

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/spf13/pflag"
)

// RedisOptions 令牌吊销列表所用的 Redis 选项
type RedisOptions struct {
	Enabled  bool          `json:"enabled"  mapstructure:"enabled"`
	Host     string        `json:"host"     mapstructure:"host"`
	Port     int           `json:"port"     mapstructure:"port"`
	Username string        `json:"username" mapstructure:"username"`
	Password string        `json:"-"        mapstructure:"password"`
	Database int           `json:"database" mapstructure:"database"`
	Timeout  time.Duration `json:"timeout"  mapstructure:"timeout"`
}

// NewRedisOptions 默认关闭，吊销列表保存在进程内
func NewRedisOptions() *RedisOptions {
	return &RedisOptions{
		Enabled:  false,
		Host:     "127.0.0.1",
		Port:     6379,
		Database: 0,
		Timeout:  5 * time.Second,
	}
}

// Validate 开启时校验地址与库号
func (o *RedisOptions) Validate() []error {
	var errs []error
	if !o.Enabled {
		return errs
	}

	if o.Host == "" {
		errs = append(errs, fmt.Errorf("--redis.host must not be empty when redis is enabled"))
	}
	if o.Port <= 0 || o.Port > 65535 {
		errs = append(errs, fmt.Errorf("--redis.port %d must be between 1 and 65535", o.Port))
	}
	if o.Database < 0 {
		errs = append(errs, fmt.Errorf("--redis.database %d must not be negative", o.Database))
	}

	return errs
}

// AddFlags 绑定命令行参数
func (o *RedisOptions) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&o.Enabled, "redis.enabled", o.Enabled, ""+
		"Store revoked tokens in redis. When disabled they are kept in process memory.")
	fs.StringVar(&o.Host, "redis.host", o.Host, "Hostname of your Redis server.")
	fs.IntVar(&o.Port, "redis.port", o.Port, "The port the Redis server is listening on.")
	fs.StringVar(&o.Username, "redis.username", o.Username, "Username for access to redis service.")
	fs.StringVar(&o.Password, "redis.password", o.Password, "Optional auth password for Redis db.")
	fs.IntVar(&o.Database, "redis.database", o.Database, "By default, the database is 0.")
	fs.DurationVar(&o.Timeout, "redis.timeout", o.Timeout, "Timeout when connecting to redis service.")
}

// NewClient 创建 Redis 客户端，不做连通性检查
func (o *RedisOptions) NewClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         net.JoinHostPort(o.Host, strconv.Itoa(o.Port)),
		Username:     o.Username,
		Password:     o.Password,
		DB:           o.Database,
		DialTimeout:  o.Timeout,
		ReadTimeout:  o.Timeout,
		WriteTimeout: o.Timeout,
	})
}
