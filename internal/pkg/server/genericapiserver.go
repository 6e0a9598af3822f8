// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package server 基于 gin 的通用 API 服务器：HTTP/HTTPS 监听、/healthz、/version、
// pprof、Prometheus 指标以及按名称安装的中间件。
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/abdulrazak24/cake-manager-api/internal/pkg/middleware"
	"github.com/abdulrazak24/cake-manager-api/pkg/core"
	"github.com/abdulrazak24/cake-manager-api/pkg/log"
	"github.com/abdulrazak24/cake-manager-api/pkg/version"
)

// GenericAPIServer 通用 API 服务器
type GenericAPIServer struct {
	middlewares    []string
	allowedOrigins []string
	rateLimit      RateLimitInfo

	SecureServingInfo   *SecureServingInfo
	InsecureServingInfo *InsecureServingInfo

	// ShutdownTimeout 优雅关闭的最长等待时间
	ShutdownTimeout time.Duration

	*gin.Engine
	healthz         bool
	enableMetrics   bool
	enableProfiling bool

	insecureServer, secureServer *http.Server
}

func initGenericAPIServer(s *GenericAPIServer) {
	s.Setup()
	s.InstallMiddlewares()
	s.InstallAPIs()
}

// InstallAPIs 安装通用接口
func (s *GenericAPIServer) InstallAPIs() {
	if s.healthz {
		s.GET("/healthz", func(c *gin.Context) {
			core.WriteResponse(c, nil, map[string]string{"status": "ok"})
		})
	}

	if s.enableMetrics {
		prometheus := ginprometheus.NewPrometheus("gin")
		prometheus.Use(s.Engine)
	}

	if s.enableProfiling {
		pprof.Register(s.Engine)
	}

	s.GET("/version", func(c *gin.Context) {
		core.WriteResponse(c, nil, version.Get())
	})
}

// Setup 路由注册信息走统一日志
func (s *GenericAPIServer) Setup() {
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
		log.Infof("%-6s %-s --> %s (%d handlers)", httpMethod, absolutePath, handlerName, nuHandlers)
	}
}

// InstallMiddlewares 先装请求 ID 与日志上下文，再按配置安装其余中间件
func (s *GenericAPIServer) InstallMiddlewares() {
	s.Use(middleware.RequestID())
	s.Use(middleware.Context())

	for _, m := range s.middlewares {
		if m == "cors" {
			log.Infof("install middleware: %s", m)
			s.Use(middleware.Cors(gin.Mode(), s.allowedOrigins))

			continue
		}

		mw, ok := middleware.Middlewares[m]
		if !ok {
			log.Warnf("can not find middleware: %s", m)

			continue
		}

		log.Infof("install middleware: %s", m)
		s.Use(mw)
	}

	if s.rateLimit.Enabled {
		log.Infof("install middleware: limit(qps=%.1f, burst=%d)", s.rateLimit.QPS, s.rateLimit.Burst)
		s.Use(middleware.Limit(s.rateLimit.QPS, s.rateLimit.Burst))
	}
}

// Run 启动 HTTP 与 HTTPS 监听，阻塞直到两者都退出
func (s *GenericAPIServer) Run() error {
	eg, egCtx := errgroup.WithContext(context.Background())

	if s.InsecureServingInfo != nil {
		s.insecureServer = &http.Server{
			Addr:           s.InsecureServingInfo.Address,
			Handler:        s,
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   30 * time.Second,
			MaxHeaderBytes: 1 << 20,
			ErrorLog:       log.StdErrLogger(),
		}

		eg.Go(func() error {
			log.Infof("start to listening the incoming requests on http address: %s", s.InsecureServingInfo.Address)

			if err := s.insecureServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Errorf("http server: %s", err.Error())

				return err
			}

			log.Infof("server on %s stopped", s.InsecureServingInfo.Address)

			return nil
		})
	}

	if s.SecureServingInfo.Enabled() {
		s.secureServer = &http.Server{
			Addr:     s.SecureServingInfo.Address(),
			Handler:  s,
			ErrorLog: log.StdErrLogger(),
		}

		eg.Go(func() error {
			cert, key := s.SecureServingInfo.CertKey.CertFile, s.SecureServingInfo.CertKey.KeyFile
			log.Infof("start to listening the incoming requests on https address: %s", s.SecureServingInfo.Address())

			if err := s.secureServer.ListenAndServeTLS(cert, key); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Errorf("https server: %s", err.Error())

				return err
			}

			log.Infof("server on %s stopped", s.SecureServingInfo.Address())

			return nil
		})
	}

	if s.insecureServer == nil && s.secureServer == nil {
		return fmt.Errorf("neither http nor https serving is enabled")
	}

	// 监听失败会取消 egCtx，此时返回监听的原始错误
	ctx, cancel := context.WithTimeout(egCtx, 10*time.Second)
	defer cancel()
	if s.healthz && s.insecureServer != nil {
		if err := s.ping(ctx); err != nil {
			if egCtx.Err() != nil {
				return eg.Wait()
			}

			return err
		}
	}

	return eg.Wait()
}

// Close 优雅关闭，等待进行中的请求完成
func (s *GenericAPIServer) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), s.ShutdownTimeout)
	defer cancel()

	if s.secureServer != nil {
		if err := s.secureServer.Shutdown(ctx); err != nil {
			log.Warnf("shutdown secure server failed: %s", err.Error())
		}
	}

	if s.insecureServer != nil {
		if err := s.insecureServer.Shutdown(ctx); err != nil {
			log.Warnf("shutdown insecure server failed: %s", err.Error())
		}
	}
}

// ping 轮询 /healthz 直到服务可用或超时
func (s *GenericAPIServer) ping(ctx context.Context) error {
	url := fmt.Sprintf("http://%s/healthz", s.InsecureServingInfo.Address)
	if strings.Contains(s.InsecureServingInfo.Address, "0.0.0.0") {
		url = fmt.Sprintf("http://127.0.0.1:%s/healthz", strings.Split(s.InsecureServingInfo.Address, ":")[1])
	}

	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}

		resp, err := http.DefaultClient.Do(req)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				log.Info("the router has been deployed successfully")

				return nil
			}
		}

		log.Info("waiting for the router, retry in 1 second")

		select {
		case <-ctx.Done():
			return fmt.Errorf("can not ping http server within the specified time interval: %w", ctx.Err())
		case <-time.After(time.Second):
		}
	}
}
