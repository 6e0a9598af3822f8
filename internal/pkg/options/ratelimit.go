// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package options

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/abdulrazak24/cake-manager-api/internal/pkg/server"
)

// RateLimitOptions 全局令牌桶限流
type RateLimitOptions struct {
	Enabled bool    `json:"enabled" mapstructure:"enabled"`
	QPS     float64 `json:"qps"     mapstructure:"qps"`
	Burst   int     `json:"burst"   mapstructure:"burst"`
}

// NewRateLimitOptions 默认关闭
func NewRateLimitOptions() *RateLimitOptions {
	return &RateLimitOptions{
		Enabled: false,
		QPS:     100,
		Burst:   200,
	}
}

// ApplyTo 写入服务器配置
func (o *RateLimitOptions) ApplyTo(c *server.Config) error {
	c.RateLimit = &server.RateLimitInfo{
		Enabled: o.Enabled,
		QPS:     o.QPS,
		Burst:   o.Burst,
	}

	return nil
}

// Validate 开启时 qps 与 burst 必须为正
func (o *RateLimitOptions) Validate() []error {
	var errs []error
	if !o.Enabled {
		return errs
	}

	if o.QPS <= 0 {
		errs = append(errs, fmt.Errorf("--ratelimit.qps must be greater than 0"))
	}
	if o.Burst <= 0 {
		errs = append(errs, fmt.Errorf("--ratelimit.burst must be greater than 0"))
	}

	return errs
}

// AddFlags 绑定命令行参数
func (o *RateLimitOptions) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&o.Enabled, "ratelimit.enabled", o.Enabled, "Enable the global token bucket rate limiter.")
	fs.Float64Var(&o.QPS, "ratelimit.qps", o.QPS, "Requests per second allowed by the rate limiter.")
	fs.IntVar(&o.Burst, "ratelimit.burst", o.Burst, "Maximum burst size of the rate limiter.")
}
