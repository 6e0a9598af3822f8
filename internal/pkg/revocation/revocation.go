// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package revocation 已注销 JWT 的黑名单，按 jti 记录，过期后自动清除
package revocation

import (
	"context"
	"time"
)

// DefaultKeyPrefix redis 中黑名单键前缀
const DefaultKeyPrefix = "cake:blacklist:"

// Store 令牌黑名单
type Store interface {
	// Revoke 拉黑 jti，直到 expireAt 之后
	Revoke(ctx context.Context, jti string, expireAt time.Time) error
	// IsRevoked 判断 jti 是否已被拉黑
	IsRevoked(ctx context.Context, jti string) (bool, error)
	Close() error
}

// ttlFor 黑名单保留到令牌过期后再多一小时，覆盖时钟偏差
func ttlFor(expireAt time.Time) time.Duration {
	ttl := time.Until(expireAt) + time.Hour
	if ttl <= 0 {
		ttl = time.Hour
	}

	return ttl
}
