// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package store

import (
	"context"

	v1 "github.com/abdulrazak24/cake-manager-api/api/apiserver/v1"
)

// CakeStore cake 记录的持久化操作。
// 记录不存在时返回 code.ErrCakeNotFound，其它失败返回 code.ErrDatabase。
type CakeStore interface {
	// List 按 id 升序返回全部记录，没有记录时返回空切片
	List(ctx context.Context) ([]*v1.Cake, error)

	Get(ctx context.Context, id uint64) (*v1.Cake, error)

	// Save ID 为 0 时插入并回填 ID，否则只更新已有记录，不会插入
	Save(ctx context.Context, cake *v1.Cake) error

	// SaveCollection 在一个事务中插入全部记录，按顺序回填 ID；失败时不写入任何记录
	SaveCollection(ctx context.Context, cakes []*v1.Cake) error

	Delete(ctx context.Context, cake *v1.Cake) error
}
