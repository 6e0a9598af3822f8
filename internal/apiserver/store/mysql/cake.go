// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	v1 "github.com/abdulrazak24/cake-manager-api/api/apiserver/v1"
	"github.com/abdulrazak24/cake-manager-api/internal/pkg/code"
	"github.com/abdulrazak24/cake-manager-api/internal/pkg/metrics"
	"github.com/abdulrazak24/cake-manager-api/pkg/errors"
)

type cakes struct {
	db *gorm.DB
}

func newCakes(ds *datastore) *cakes {
	return &cakes{ds.db}
}

// List 按 id 升序返回全部记录
func (c *cakes) List(ctx context.Context) (ret []*v1.Cake, err error) {
	defer func(start time.Time) { metrics.RecordDatabaseOperation("list", backend, start, err) }(time.Now())

	ret = make([]*v1.Cake, 0)
	if err = c.db.WithContext(ctx).Order("id").Find(&ret).Error; err != nil {
		return nil, errors.WrapC(err, code.ErrDatabase, "list cakes failed")
	}

	return ret, nil
}

// Get 按 id 查询
func (c *cakes) Get(ctx context.Context, id uint64) (cake *v1.Cake, err error) {
	defer func(start time.Time) { metrics.RecordDatabaseOperation("get", backend, start, err) }(time.Now())

	cake = &v1.Cake{}
	if err = c.db.WithContext(ctx).Where("id = ?", id).First(cake).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithCode(code.ErrCakeNotFound, "Cake not found with id %d", id)
		}

		return nil, errors.WrapC(err, code.ErrDatabase, "get cake %d failed", id)
	}

	return cake, nil
}

// Save 新记录插入，已有记录只更新三个业务字段。
// 连接串开启了 ClientFoundRows，影响行数为 0 说明记录已被删除。
func (c *cakes) Save(ctx context.Context, cake *v1.Cake) (err error) {
	defer func(start time.Time) { metrics.RecordDatabaseOperation("save", backend, start, err) }(time.Now())

	if cake.ID == 0 {
		if err = c.db.WithContext(ctx).Create(cake).Error; err != nil {
			return errors.WrapC(err, code.ErrDatabase, "create cake failed")
		}

		return nil
	}

	result := c.db.WithContext(ctx).Model(&v1.Cake{}).Where("id = ?", cake.ID).Updates(map[string]interface{}{
		"flavour": cake.Flavour,
		"icing":   cake.Icing,
		"image":   cake.Image,
	})
	if err = result.Error; err != nil {
		return errors.WrapC(err, code.ErrDatabase, "update cake %d failed", cake.ID)
	}
	if result.RowsAffected == 0 {
		err = errors.WithCode(code.ErrCakeNotFound, "Cake not found with id %d", cake.ID)
		return err
	}

	return nil
}

// SaveCollection 事务内逐条插入，保证 ID 与输入顺序一致
func (c *cakes) SaveCollection(ctx context.Context, list []*v1.Cake) (err error) {
	defer func(start time.Time) { metrics.RecordDatabaseOperation("save_collection", backend, start, err) }(time.Now())

	err = c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, cake := range list {
			cake.ID = 0
			if err := tx.Create(cake).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		for _, cake := range list {
			cake.ID = 0
		}

		return errors.WrapC(err, code.ErrDatabase, "create cakes failed")
	}

	return nil
}

// Delete 删除记录，记录已不存在时返回 ErrCakeNotFound
func (c *cakes) Delete(ctx context.Context, cake *v1.Cake) (err error) {
	defer func(start time.Time) { metrics.RecordDatabaseOperation("delete", backend, start, err) }(time.Now())

	result := c.db.WithContext(ctx).Where("id = ?", cake.ID).Delete(&v1.Cake{})
	if err = result.Error; err != nil {
		return errors.WrapC(err, code.ErrDatabase, "delete cake %d failed", cake.ID)
	}
	if result.RowsAffected == 0 {
		err = errors.WithCode(code.ErrCakeNotFound, "Cake not found with id %d", cake.ID)
		return err
	}

	return nil
}
