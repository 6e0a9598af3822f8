// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package revocation

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/abdulrazak24/cake-manager-api/internal/pkg/code"
	"github.com/abdulrazak24/cake-manager-api/internal/pkg/metrics"
	"github.com/abdulrazak24/cake-manager-api/pkg/errors"
	"github.com/abdulrazak24/cake-manager-api/pkg/log"
)

type redisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore 基于 redis 的黑名单，多实例部署时共享
func NewRedisStore(client *redis.Client, prefix string) Store {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}

	return &redisStore{client: client, prefix: prefix}
}

func (s *redisStore) Revoke(ctx context.Context, jti string, expireAt time.Time) error {
	key := s.prefix + jti
	if err := s.client.Set(ctx, key, "1", ttlFor(expireAt)).Err(); err != nil {
		return errors.WrapC(err, code.ErrDatabase, "add token to blacklist failed")
	}

	metrics.TokenRevocations.WithLabelValues("redis").Inc()
	log.L(ctx).Debugf("token added to blacklist: key=%s", key)

	return nil
}

func (s *redisStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, s.prefix+jti).Result()
	if err != nil {
		return false, errors.WrapC(err, code.ErrDatabase, "query token blacklist failed")
	}

	return n > 0, nil
}

func (s *redisStore) Close() error {
	return s.client.Close()
}

// Ping 检查 redis 是否可用
func Ping(ctx context.Context, client *redis.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return errors.Wrapf(err, "ping redis %s", client.Options().Addr)
	}

	return nil
}
