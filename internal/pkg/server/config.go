// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package server

import (
	"net"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// RecommendedHomeDir 用户目录下的配置目录
	RecommendedHomeDir = ".cake"

	// RecommendedEnvPrefix 环境变量前缀，如 CAKE_APISERVER_SERVER_MODE
	RecommendedEnvPrefix = "CAKE_APISERVER"
)

// Config 通用 API 服务器配置
type Config struct {
	SecureServing   *SecureServingInfo
	InsecureServing *InsecureServingInfo
	Jwt             *JwtInfo
	RateLimit       *RateLimitInfo
	Mode            string
	Middlewares     []string
	AllowedOrigins  []string
	Healthz         bool
	EnableProfiling bool
	EnableMetrics   bool
	ShutdownTimeout time.Duration
}

// CertKey TLS 证书与私钥
type CertKey struct {
	// CertFile PEM 编码的证书，可包含完整证书链
	CertFile string
	// KeyFile PEM 编码的私钥
	KeyFile string
}

// SecureServingInfo HTTPS 监听配置
type SecureServingInfo struct {
	BindAddress string
	BindPort    int
	CertKey     CertKey
}

// Address host:port
func (s *SecureServingInfo) Address() string {
	return net.JoinHostPort(s.BindAddress, strconv.Itoa(s.BindPort))
}

// Enabled 端口与证书齐全才启动 HTTPS
func (s *SecureServingInfo) Enabled() bool {
	return s != nil && s.BindPort != 0 && s.CertKey.CertFile != "" && s.CertKey.KeyFile != ""
}

// InsecureServingInfo HTTP 监听配置
type InsecureServingInfo struct {
	Address string
}

// JwtInfo JWT 签发参数
type JwtInfo struct {
	// Realm 默认 "cake jwt"
	Realm string
	// Key HMAC 签名密钥
	Key string
	// Timeout 令牌有效期，默认 1 小时
	Timeout time.Duration
	// MaxRefresh 允许刷新的最长时间，默认 1 小时
	MaxRefresh time.Duration
}

// RateLimitInfo 全局令牌桶
type RateLimitInfo struct {
	Enabled bool
	QPS     float64
	Burst   int
}

// NewConfig 默认配置
func NewConfig() *Config {
	return &Config{
		Healthz:         true,
		Mode:            gin.ReleaseMode,
		Middlewares:     []string{},
		EnableProfiling: true,
		EnableMetrics:   true,
		ShutdownTimeout: 10 * time.Second,
		Jwt: &JwtInfo{
			Realm:      "cake jwt",
			Timeout:    1 * time.Hour,
			MaxRefresh: 1 * time.Hour,
		},
		RateLimit: &RateLimitInfo{},
	}
}

// CompletedConfig 补全后的配置
type CompletedConfig struct {
	*Config
}

// Complete 补全默认值
func (c *Config) Complete() CompletedConfig {
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
	if c.RateLimit == nil {
		c.RateLimit = &RateLimitInfo{}
	}

	return CompletedConfig{c}
}

// New 创建通用 API 服务器并安装中间件与基础接口
func (c CompletedConfig) New() (*GenericAPIServer, error) {
	gin.SetMode(c.Mode)

	s := &GenericAPIServer{
		SecureServingInfo:   c.SecureServing,
		InsecureServingInfo: c.InsecureServing,
		ShutdownTimeout:     c.ShutdownTimeout,
		healthz:             c.Healthz,
		enableMetrics:       c.EnableMetrics,
		enableProfiling:     c.EnableProfiling,
		middlewares:         c.Middlewares,
		allowedOrigins:      c.AllowedOrigins,
		rateLimit:           *c.RateLimit,
		Engine:              gin.New(),
	}

	initGenericAPIServer(s)

	return s, nil
}
