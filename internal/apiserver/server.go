// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package apiserver

import (
	"context"
	"fmt"

	"github.com/abdulrazak24/cake-manager-api/internal/apiserver/config"
	"github.com/abdulrazak24/cake-manager-api/internal/apiserver/store"
	"github.com/abdulrazak24/cake-manager-api/internal/apiserver/store/fake"
	"github.com/abdulrazak24/cake-manager-api/internal/apiserver/store/mysql"
	"github.com/abdulrazak24/cake-manager-api/internal/apiserver/store/sqlite"
	genericoptions "github.com/abdulrazak24/cake-manager-api/internal/pkg/options"
	"github.com/abdulrazak24/cake-manager-api/internal/pkg/revocation"
	genericapiserver "github.com/abdulrazak24/cake-manager-api/internal/pkg/server"
	"github.com/abdulrazak24/cake-manager-api/pkg/log"
	"github.com/abdulrazak24/cake-manager-api/pkg/shutdown"
	"github.com/abdulrazak24/cake-manager-api/pkg/shutdown/shutdownmanagers/posixsignal"
)

type apiServer struct {
	gs               *shutdown.GracefulShutdown
	genericAPIServer *genericapiserver.GenericAPIServer
	store            store.Factory
	auth             *authenticator
}

type preparedAPIServer struct {
	*apiServer
}

func createAPIServer(cfg *config.Config) (*apiServer, error) {
	gs := shutdown.New()
	gs.AddShutdownManager(posixsignal.NewPosixSignalManager())

	genericConfig, err := buildGenericConfig(cfg)
	if err != nil {
		return nil, err
	}

	genericServer, err := genericConfig.Complete().New()
	if err != nil {
		return nil, err
	}

	storeIns, err := newStoreFactory(cfg.StoreOptions, cfg)
	if err != nil {
		return nil, err
	}

	return &apiServer{
		gs:               gs,
		genericAPIServer: genericServer,
		store:            storeIns,
		auth: &authenticator{
			accounts: cfg.AccountOptions,
			jwt:      genericConfig.Jwt,
			revoked:  newRevocationStore(cfg.RedisOptions),
		},
	}, nil
}

func (s *apiServer) PrepareRun() (preparedAPIServer, error) {
	if err := initRouter(s.genericAPIServer.Engine, s.store, s.auth); err != nil {
		return preparedAPIServer{}, err
	}

	s.gs.AddShutdownCallback(shutdown.ShutdownFunc(func(string) error {
		s.genericAPIServer.Close()

		if err := s.auth.revoked.Close(); err != nil {
			log.Warnf("close revocation store failed: %s", err.Error())
		}

		return s.store.Close()
	}))

	return preparedAPIServer{s}, nil
}

// Run 阻塞直到监听退出；收到退出信号时等待关闭回调全部完成
func (s preparedAPIServer) Run() error {
	if err := s.gs.Start(); err != nil {
		log.Fatalf("start shutdown manager failed: %s", err.Error())
	}

	if err := s.genericAPIServer.Run(); err != nil {
		_ = s.auth.revoked.Close()
		_ = s.store.Close()

		return err
	}

	<-s.gs.Done()

	return nil
}

func buildGenericConfig(cfg *config.Config) (genericConfig *genericapiserver.Config, lastErr error) {
	genericConfig = genericapiserver.NewConfig()
	if lastErr = cfg.GenericServerRunOptions.ApplyTo(genericConfig); lastErr != nil {
		return
	}

	if lastErr = cfg.FeatureOptions.ApplyTo(genericConfig); lastErr != nil {
		return
	}

	if lastErr = cfg.SecureServing.ApplyTo(genericConfig); lastErr != nil {
		return
	}

	if lastErr = cfg.InsecureServing.ApplyTo(genericConfig); lastErr != nil {
		return
	}

	if lastErr = cfg.JwtOptions.ApplyTo(genericConfig); lastErr != nil {
		return
	}

	if lastErr = cfg.RateLimitOptions.ApplyTo(genericConfig); lastErr != nil {
		return
	}

	return
}

// newStoreFactory 按 --store.type 构造存储
func newStoreFactory(opts *genericoptions.StoreOptions, cfg *config.Config) (store.Factory, error) {
	switch opts.Type {
	case genericoptions.StoreMySQL:
		return mysql.GetMySQLFactoryOr(cfg.MySQLOptions, opts.Migrate)
	case genericoptions.StoreSQLite:
		return sqlite.NewFactory(cfg.SQLiteOptions, opts.Migrate)
	case genericoptions.StoreMemory:
		log.Warn("using in-memory cake store, data is lost on restart")

		return fake.NewFactory(), nil
	default:
		return nil, fmt.Errorf("unsupported store type %q", opts.Type)
	}
}

// newRevocationStore redis 不可用时退回进程内存储
func newRevocationStore(opts *genericoptions.RedisOptions) revocation.Store {
	if !opts.Enabled {
		return revocation.NewMemoryStore()
	}

	client := opts.NewClient()
	if err := revocation.Ping(context.Background(), client); err != nil {
		log.Warnf("redis unavailable, revoked tokens are kept in memory: %s", err.Error())
		_ = client.Close()

		return revocation.NewMemoryStore()
	}

	log.Infof("revoked tokens are stored in redis %s", client.Options().Addr)

	return revocation.NewRedisStore(client, revocation.DefaultKeyPrefix)
}
