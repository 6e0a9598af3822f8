// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package fake

import (
	"context"
	"sort"
	"time"

	v1 "github.com/abdulrazak24/cake-manager-api/api/apiserver/v1"
	"github.com/abdulrazak24/cake-manager-api/internal/pkg/code"
	"github.com/abdulrazak24/cake-manager-api/internal/pkg/metrics"
	"github.com/abdulrazak24/cake-manager-api/pkg/errors"
)

// stored 保存值拷贝，调用方改动传入或返回的指针不影响存储内容
type stored struct {
	flavour, icing, image string
}

type cakes struct {
	ds     *datastore
	rows   map[uint64]stored
	nextID uint64
}

func (c *cakes) List(ctx context.Context) (ret []*v1.Cake, err error) {
	defer func(start time.Time) { metrics.RecordDatabaseOperation(OpList, backend, start, err) }(time.Now())

	c.ds.mu.Lock()
	defer c.ds.mu.Unlock()

	if err = c.ds.record(Call{Op: OpList}); err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(c.rows))
	for id := range c.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	ret = make([]*v1.Cake, 0, len(ids))
	for _, id := range ids {
		ret = append(ret, c.row(id))
	}

	return ret, nil
}

func (c *cakes) Get(ctx context.Context, id uint64) (cake *v1.Cake, err error) {
	defer func(start time.Time) { metrics.RecordDatabaseOperation(OpGet, backend, start, err) }(time.Now())

	c.ds.mu.Lock()
	defer c.ds.mu.Unlock()

	if err = c.ds.record(Call{Op: OpGet, ID: id}); err != nil {
		return nil, err
	}

	if _, ok := c.rows[id]; !ok {
		return nil, errors.WithCode(code.ErrCakeNotFound, "Cake not found with id %d", id)
	}

	return c.row(id), nil
}

func (c *cakes) Save(ctx context.Context, cake *v1.Cake) (err error) {
	defer func(start time.Time) { metrics.RecordDatabaseOperation(OpSave, backend, start, err) }(time.Now())

	c.ds.mu.Lock()
	defer c.ds.mu.Unlock()

	if err = c.ds.record(Call{Op: OpSave, ID: cake.ID}); err != nil {
		return err
	}

	if cake.ID == 0 {
		c.nextID++
		cake.ID = c.nextID
	} else if _, ok := c.rows[cake.ID]; !ok {
		return errors.WithCode(code.ErrCakeNotFound, "Cake not found with id %d", cake.ID)
	}
	c.rows[cake.ID] = toStored(cake)

	return nil
}

func (c *cakes) SaveCollection(ctx context.Context, list []*v1.Cake) (err error) {
	defer func(start time.Time) { metrics.RecordDatabaseOperation(OpSaveCollection, backend, start, err) }(time.Now())

	c.ds.mu.Lock()
	defer c.ds.mu.Unlock()

	if err = c.ds.record(Call{Op: OpSaveCollection, Count: len(list)}); err != nil {
		return err
	}

	for _, cake := range list {
		c.nextID++
		cake.ID = c.nextID
		c.rows[cake.ID] = toStored(cake)
	}

	return nil
}

func (c *cakes) Delete(ctx context.Context, cake *v1.Cake) (err error) {
	defer func(start time.Time) { metrics.RecordDatabaseOperation(OpDelete, backend, start, err) }(time.Now())

	c.ds.mu.Lock()
	defer c.ds.mu.Unlock()

	if err = c.ds.record(Call{Op: OpDelete, ID: cake.ID}); err != nil {
		return err
	}

	if _, ok := c.rows[cake.ID]; !ok {
		return errors.WithCode(code.ErrCakeNotFound, "Cake not found with id %d", cake.ID)
	}
	delete(c.rows, cake.ID)

	return nil
}

func (c *cakes) row(id uint64) *v1.Cake {
	r := c.rows[id]

	return &v1.Cake{ID: id, Flavour: r.flavour, Icing: r.icing, Image: r.image}
}

func toStored(cake *v1.Cake) stored {
	return stored{flavour: cake.Flavour, icing: cake.Icing, image: cake.Image}
}
