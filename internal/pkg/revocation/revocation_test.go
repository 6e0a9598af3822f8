// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package revocation

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdulrazak24/cake-manager-api/internal/pkg/code"
	"github.com/abdulrazak24/cake-manager-api/pkg/errors"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore().(*memoryStore)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	revoked, err := s.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, s.Revoke(ctx, "jti-1", now.Add(30*time.Minute)))
	revoked, err = s.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	// 超过保留期后自动失效
	now = now.Add(48 * time.Hour)
	revoked, err = s.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
	assert.Empty(t, s.entries)
}

func TestMemoryStore_PruneOnRevoke(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore().(*memoryStore)
	now := time.Now()
	s.now = func() time.Time { return now }

	require.NoError(t, s.Revoke(ctx, "old", now))
	now = now.Add(2 * time.Hour)
	require.NoError(t, s.Revoke(ctx, "new", now.Add(time.Hour)))

	assert.Len(t, s.entries, 1)
	assert.Contains(t, s.entries, "new")
}

func TestTTLFor(t *testing.T) {
	assert.Equal(t, time.Hour, ttlFor(time.Now().Add(-2*time.Hour)))
	assert.InDelta(t, float64(2*time.Hour), float64(ttlFor(time.Now().Add(time.Hour))), float64(time.Second))
}

func TestRedisStore_Unavailable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	s := NewRedisStore(client, "")
	defer s.Close()

	_, err := s.IsRevoked(context.Background(), "jti")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, code.ErrDatabase))

	err = s.Revoke(context.Background(), "jti", time.Now().Add(time.Hour))
	assert.True(t, errors.IsCode(err, code.ErrDatabase))
}
