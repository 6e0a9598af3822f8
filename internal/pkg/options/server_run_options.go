// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package options 各组件的命令行与配置文件选项
package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"

	"github.com/abdulrazak24/cake-manager-api/internal/pkg/server"
)

// ServerRunOptions 通用服务器运行选项
type ServerRunOptions struct {
	Mode            string        `json:"mode"             mapstructure:"mode"`
	Healthz         bool          `json:"healthz"          mapstructure:"healthz"`
	Middlewares     []string      `json:"middlewares"      mapstructure:"middlewares"`
	AllowedOrigins  []string      `json:"allowed-origins"  mapstructure:"allowed-origins"`
	ShutdownTimeout time.Duration `json:"shutdown-timeout" mapstructure:"shutdown-timeout"`
}

// NewServerRunOptions 默认值取自 server.NewConfig
func NewServerRunOptions() *ServerRunOptions {
	defaults := server.NewConfig()

	return &ServerRunOptions{
		Mode:            defaults.Mode,
		Healthz:         defaults.Healthz,
		Middlewares:     defaults.Middlewares,
		AllowedOrigins:  defaults.AllowedOrigins,
		ShutdownTimeout: defaults.ShutdownTimeout,
	}
}

// ApplyTo 写入服务器配置
func (s *ServerRunOptions) ApplyTo(c *server.Config) error {
	c.Mode = s.Mode
	c.Healthz = s.Healthz
	c.Middlewares = s.Middlewares
	c.AllowedOrigins = s.AllowedOrigins
	c.ShutdownTimeout = s.ShutdownTimeout

	return nil
}

// Validate 校验运行模式与中间件列表
func (s *ServerRunOptions) Validate() []error {
	var errs []error

	switch s.Mode {
	case gin.DebugMode, gin.TestMode, gin.ReleaseMode:
	default:
		errs = append(errs, fmt.Errorf("--server.mode %q is invalid, must be one of: debug, test, release", s.Mode))
	}

	for i, m := range s.Middlewares {
		if strings.TrimSpace(m) == "" {
			errs = append(errs, fmt.Errorf("--server.middlewares has an empty entry at index %d", i))
		}
	}

	if s.ShutdownTimeout < 0 {
		errs = append(errs, fmt.Errorf("--server.shutdown-timeout %s must not be negative", s.ShutdownTimeout))
	}

	return errs
}

// AddFlags 绑定命令行参数
func (s *ServerRunOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&s.Mode, "server.mode", s.Mode, ""+
		"Start the server in a specified server mode. Supported server mode: debug, test, release.")

	fs.BoolVar(&s.Healthz, "server.healthz", s.Healthz, ""+
		"Add self readiness check and install /healthz router.")

	fs.StringSliceVar(&s.Middlewares, "server.middlewares", s.Middlewares, ""+
		"List of allowed middlewares for server, comma separated. If this list is empty default middlewares will be used.")

	fs.StringSliceVar(&s.AllowedOrigins, "server.allowed-origins", s.AllowedOrigins, ""+
		"Origins accepted by the cors middleware in release mode, comma separated.")

	fs.DurationVar(&s.ShutdownTimeout, "server.shutdown-timeout", s.ShutdownTimeout, ""+
		"Time allowed for in-flight requests to finish on shutdown.")
}
