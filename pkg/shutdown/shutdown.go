// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

/*
Package shutdown 提供优雅关闭框架。

ShutdownManager 负责感知关闭事件（如 POSIX 信号），触发后 GracefulShutdown
并发执行所有 ShutdownCallback，等待全部完成再通知管理器收尾。

	gs := shutdown.New()
	gs.AddShutdownManager(posixsignal.NewPosixSignalManager())
	gs.AddShutdownCallback(shutdown.ShutdownFunc(func(string) error {
		server.Close()
		return nil
	}))
	if err := gs.Start(); err != nil {
		return err
	}
	<-gs.Done()
*/
package shutdown

import (
	"sync"
)

// ShutdownCallback 关闭时执行的回调，参数为触发关闭的管理器名
type ShutdownCallback interface {
	OnShutdown(string) error
}

// ShutdownFunc 函数形式的 ShutdownCallback
type ShutdownFunc func(string) error

// OnShutdown 调用函数本身
func (f ShutdownFunc) OnShutdown(shutdownManager string) error {
	return f(shutdownManager)
}

// ShutdownManager 监听关闭事件并在前后做准备与收尾
type ShutdownManager interface {
	GetName() string
	Start(gs GSInterface) error
	ShutdownStart() error
	ShutdownFinish() error
}

// ErrorHandler 处理关闭过程中的错误
type ErrorHandler interface {
	OnError(err error)
}

// ErrorFunc 函数形式的 ErrorHandler
type ErrorFunc func(err error)

// OnError 调用函数本身
func (f ErrorFunc) OnError(err error) {
	f(err)
}

// GSInterface 暴露给 ShutdownManager 的最小接口
type GSInterface interface {
	StartShutdown(sm ShutdownManager)
	ReportError(err error)
	AddShutdownCallback(shutdownCallback ShutdownCallback)
}

// GracefulShutdown 管理器与回调的集合
type GracefulShutdown struct {
	mu           sync.Mutex
	callbacks    []ShutdownCallback
	managers     []ShutdownManager
	errorHandler ErrorHandler

	once sync.Once
	done chan struct{}
}

// New 创建 GracefulShutdown
func New() *GracefulShutdown {
	return &GracefulShutdown{
		callbacks: make([]ShutdownCallback, 0, 10),
		managers:  make([]ShutdownManager, 0, 3),
		done:      make(chan struct{}),
	}
}

// Start 启动所有管理器
func (gs *GracefulShutdown) Start() error {
	for _, manager := range gs.managers {
		if err := manager.Start(gs); err != nil {
			return err
		}
	}

	return nil
}

// AddShutdownManager 添加管理器，须在 Start 前调用
func (gs *GracefulShutdown) AddShutdownManager(manager ShutdownManager) {
	gs.managers = append(gs.managers, manager)
}

// AddShutdownCallback 添加关闭回调
func (gs *GracefulShutdown) AddShutdownCallback(shutdownCallback ShutdownCallback) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.callbacks = append(gs.callbacks, shutdownCallback)
}

// SetErrorHandler 设置错误处理器
func (gs *GracefulShutdown) SetErrorHandler(errorHandler ErrorHandler) {
	gs.errorHandler = errorHandler
}

// StartShutdown 并发执行全部回调，只生效一次
func (gs *GracefulShutdown) StartShutdown(sm ShutdownManager) {
	gs.once.Do(func() {
		defer close(gs.done)

		gs.ReportError(sm.ShutdownStart())

		gs.mu.Lock()
		callbacks := append([]ShutdownCallback(nil), gs.callbacks...)
		gs.mu.Unlock()

		var wg sync.WaitGroup
		for _, cb := range callbacks {
			wg.Add(1)
			go func(cb ShutdownCallback) {
				defer wg.Done()
				gs.ReportError(cb.OnShutdown(sm.GetName()))
			}(cb)
		}
		wg.Wait()

		gs.ReportError(sm.ShutdownFinish())
	})
}

// Done 全部回调与收尾完成后关闭
func (gs *GracefulShutdown) Done() <-chan struct{} {
	return gs.done
}

// ReportError 把非 nil 错误交给错误处理器
func (gs *GracefulShutdown) ReportError(err error) {
	if err != nil && gs.errorHandler != nil {
		gs.errorHandler.OnError(err)
	}
}
