// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package v1

import (
	"context"
	"time"

	v1 "github.com/abdulrazak24/cake-manager-api/api/apiserver/v1"
	"github.com/abdulrazak24/cake-manager-api/internal/apiserver/store"
	"github.com/abdulrazak24/cake-manager-api/internal/pkg/code"
	"github.com/abdulrazak24/cake-manager-api/internal/pkg/metrics"
	"github.com/abdulrazak24/cake-manager-api/pkg/errors"
	"github.com/abdulrazak24/cake-manager-api/pkg/log"
)

// CakeSrv cake 业务操作。写操作先校验，校验失败不会触达存储。
type CakeSrv interface {
	List(ctx context.Context) ([]*v1.Cake, error)
	Get(ctx context.Context, id uint64) (*v1.Cake, error)
	Create(ctx context.Context, cake *v1.Cake) (*v1.Cake, error)
	// CreateCollection 全部校验通过后在一个事务里写入，任何一项失败都不写入
	CreateCollection(ctx context.Context, cakes v1.CakeList) (v1.CakeList, error)
	// Update 读出已有记录，覆盖 flavour、icing、image 后保存
	Update(ctx context.Context, id uint64, cake *v1.Cake) (*v1.Cake, error)
	Delete(ctx context.Context, id uint64) error
}

type cakeService struct {
	store store.Factory
}

var _ CakeSrv = (*cakeService)(nil)

func newCakes(srv *service) *cakeService {
	return &cakeService{store: srv.store}
}

func (c *cakeService) List(ctx context.Context) (ret []*v1.Cake, err error) {
	defer func(start time.Time) { metrics.RecordCakeOperation("list", start, err) }(time.Now())

	ret, err = c.store.Cakes().List(ctx)
	if err != nil {
		log.L(ctx).Errorf("list cakes from storage failed: %-v", err)
		return nil, err
	}

	return ret, nil
}

func (c *cakeService) Get(ctx context.Context, id uint64) (cake *v1.Cake, err error) {
	defer func(start time.Time) { metrics.RecordCakeOperation("get", start, err) }(time.Now())

	return c.store.Cakes().Get(ctx, id)
}

func (c *cakeService) Create(ctx context.Context, cake *v1.Cake) (ret *v1.Cake, err error) {
	defer func(start time.Time) { metrics.RecordCakeOperation("create", start, err) }(time.Now())

	if err = cake.Validate(); err != nil {
		return nil, err
	}

	// id 由存储分配
	cake.ID = 0
	if err = c.store.Cakes().Save(ctx, cake); err != nil {
		log.L(ctx).Errorf("save cake failed: %-v", err)
		return nil, err
	}

	return cake, nil
}

func (c *cakeService) CreateCollection(ctx context.Context, cakes v1.CakeList) (ret v1.CakeList, err error) {
	defer func(start time.Time) { metrics.RecordCakeOperation("create_collection", start, err) }(time.Now())

	if err = cakes.Validate(); err != nil {
		return nil, err
	}

	if len(cakes) == 0 {
		return v1.CakeList{}, nil
	}

	for _, cake := range cakes {
		cake.ID = 0
	}
	if err = c.store.Cakes().SaveCollection(ctx, cakes); err != nil {
		log.L(ctx).Errorf("save %d cakes failed: %-v", len(cakes), err)
		return nil, err
	}

	return cakes, nil
}

func (c *cakeService) Update(ctx context.Context, id uint64, cake *v1.Cake) (ret *v1.Cake, err error) {
	defer func(start time.Time) { metrics.RecordCakeOperation("update", start, err) }(time.Now())

	if err = cake.Validate(); err != nil {
		return nil, err
	}

	existing, err := c.store.Cakes().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Flavour = cake.Flavour
	existing.Icing = cake.Icing
	existing.Image = cake.Image

	if err = c.store.Cakes().Save(ctx, existing); err != nil {
		if !errors.IsCode(err, code.ErrCakeNotFound) {
			log.L(ctx).Errorf("update cake %d failed: %-v", id, err)
		}
		return nil, err
	}

	return existing, nil
}

func (c *cakeService) Delete(ctx context.Context, id uint64) (err error) {
	defer func(start time.Time) { metrics.RecordCakeOperation("delete", start, err) }(time.Now())

	existing, err := c.store.Cakes().Get(ctx, id)
	if err != nil {
		return err
	}

	if err = c.store.Cakes().Delete(ctx, existing); err != nil {
		if !errors.IsCode(err, code.ErrCakeNotFound) {
			log.L(ctx).Errorf("delete cake %d failed: %-v", id, err)
		}
		return err
	}

	return nil
}
