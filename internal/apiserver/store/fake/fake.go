// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package fake 进程内存储，用于 --store.type=memory 以及各层单元测试。
// 记录每一次存储调用，可按操作注入错误。
package fake

import (
	"sync"

	"github.com/abdulrazak24/cake-manager-api/internal/apiserver/store"
)

const backend = "memory"

// 操作名，与 Call.Op 对应
const (
	OpList           = "list"
	OpGet            = "get"
	OpSave           = "save"
	OpSaveCollection = "save_collection"
	OpDelete         = "delete"
)

// Call 一次存储调用
type Call struct {
	Op string
	ID uint64
	// Count 仅 SaveCollection 使用，为批量条数
	Count int
}

type datastore struct {
	mu     sync.RWMutex
	cakes  *cakes
	calls  []Call
	errors map[string]error
}

// Store 内存存储，实现 store.Factory
type Store struct {
	ds *datastore
}

var _ store.Factory = (*Store)(nil)

// NewFactory 创建空的内存存储
func NewFactory() *Store {
	ds := &datastore{errors: map[string]error{}}
	ds.cakes = &cakes{ds: ds, rows: map[uint64]stored{}}

	return &Store{ds: ds}
}

func (s *Store) Cakes() store.CakeStore {
	return s.ds.cakes
}

func (s *Store) Close() error {
	return nil
}

// Calls 返回至今的调用记录副本
func (s *Store) Calls() []Call {
	s.ds.mu.RLock()
	defer s.ds.mu.RUnlock()

	calls := make([]Call, len(s.ds.calls))
	copy(calls, s.ds.calls)

	return calls
}

// Reset 清空调用记录与注入的错误，数据保留
func (s *Store) Reset() {
	s.ds.mu.Lock()
	defer s.ds.mu.Unlock()

	s.ds.calls = nil
	s.ds.errors = map[string]error{}
}

// FailOn 让指定操作返回 err，err 为 nil 时取消注入
func (s *Store) FailOn(op string, err error) {
	s.ds.mu.Lock()
	defer s.ds.mu.Unlock()

	if err == nil {
		delete(s.ds.errors, op)
		return
	}
	s.ds.errors[op] = err
}

// record 记录调用并返回注入的错误，调用方需持有写锁
func (ds *datastore) record(call Call) error {
	ds.calls = append(ds.calls, call)

	return ds.errors[call.Op]
}
