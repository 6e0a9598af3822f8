// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package store 定义存储层接口。具体实现位于 mysql、sqlite、fake 子包，
// 启动时按配置构造一个 Factory 并注入业务层。
package store

// Factory 存储层入口
type Factory interface {
	Cakes() CakeStore
	Close() error
}
