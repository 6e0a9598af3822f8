// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package posixsignal 收到 SIGINT/SIGTERM 时触发优雅关闭
package posixsignal

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/abdulrazak24/cake-manager-api/pkg/shutdown"
)

// Name 管理器名，会传给每个回调
const Name = "PosixSignalManager"

// PosixSignalManager 监听 POSIX 信号
type PosixSignalManager struct {
	signals []os.Signal
}

// NewPosixSignalManager 未指定信号时监听 SIGINT 与 SIGTERM
func NewPosixSignalManager(sig ...os.Signal) *PosixSignalManager {
	if len(sig) == 0 {
		sig = []os.Signal{os.Interrupt, syscall.SIGTERM}
	}

	return &PosixSignalManager{
		signals: sig,
	}
}

// GetName 返回 Name
func (m *PosixSignalManager) GetName() string {
	return Name
}

// Start 后台等待第一个信号
func (m *PosixSignalManager) Start(gs shutdown.GSInterface) error {
	c := make(chan os.Signal, 1)
	signal.Notify(c, m.signals...)

	go func() {
		<-c
		signal.Stop(c)
		gs.StartShutdown(m)
	}()

	return nil
}

// ShutdownStart 无需准备
func (m *PosixSignalManager) ShutdownStart() error {
	return nil
}

// ShutdownFinish 进程退出交给调用方，等待 GracefulShutdown.Done 即可
func (m *PosixSignalManager) ShutdownFinish() error {
	return nil
}
