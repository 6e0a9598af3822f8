// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package revocation

import (
	"context"
	"sync"
	"time"

	"github.com/abdulrazak24/cake-manager-api/internal/pkg/metrics"
)

type memoryStore struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

// NewMemoryStore 进程内黑名单，重启即丢失，仅适合单实例
func NewMemoryStore() Store {
	return &memoryStore{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (s *memoryStore) Revoke(_ context.Context, jti string, expireAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prune()
	s.entries[jti] = s.now().Add(ttlFor(expireAt))
	metrics.TokenRevocations.WithLabelValues("memory").Inc()

	return nil
}

func (s *memoryStore) IsRevoked(_ context.Context, jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	until, ok := s.entries[jti]
	if !ok {
		return false, nil
	}
	if s.now().After(until) {
		delete(s.entries, jti)
		return false, nil
	}

	return true, nil
}

func (s *memoryStore) Close() error {
	return nil
}

// prune 清除过期条目，调用方持锁
func (s *memoryStore) prune() {
	now := s.now()
	for jti, until := range s.entries {
		if now.After(until) {
			delete(s.entries, jti)
		}
	}
}
