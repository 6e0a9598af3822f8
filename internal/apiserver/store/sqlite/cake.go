// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package sqlite

import (
	"context"
	"database/sql"
	"math"
	"time"

	"github.com/jmoiron/sqlx"

	v1 "github.com/abdulrazak24/cake-manager-api/api/apiserver/v1"
	"github.com/abdulrazak24/cake-manager-api/internal/pkg/code"
	"github.com/abdulrazak24/cake-manager-api/internal/pkg/metrics"
	"github.com/abdulrazak24/cake-manager-api/pkg/errors"
)

const (
	selectCakes = `SELECT id, flavour, icing, image FROM cakes`
	insertCake  = `INSERT INTO cakes (flavour, icing, image) VALUES (:flavour, :icing, :image)`
	updateCake  = `UPDATE cakes SET flavour = :flavour, icing = :icing, image = :image WHERE id = :id`
	deleteCake  = `DELETE FROM cakes WHERE id = ?`
)

type cakes struct {
	db *sqlx.DB
}

func newCakes(ds *datastore) *cakes {
	return &cakes{ds.db}
}

func (c *cakes) List(ctx context.Context) (ret []*v1.Cake, err error) {
	defer func(start time.Time) { metrics.RecordDatabaseOperation("list", backend, start, err) }(time.Now())

	ret = make([]*v1.Cake, 0)
	if err = c.db.SelectContext(ctx, &ret, selectCakes+` ORDER BY id`); err != nil {
		return nil, errors.WrapC(err, code.ErrDatabase, "list cakes failed")
	}

	return ret, nil
}

func (c *cakes) Get(ctx context.Context, id uint64) (cake *v1.Cake, err error) {
	defer func(start time.Time) { metrics.RecordDatabaseOperation("get", backend, start, err) }(time.Now())

	if !storable(id) {
		return nil, notFound(id)
	}

	cake = &v1.Cake{}
	if err = c.db.GetContext(ctx, cake, selectCakes+` WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(id)
		}

		return nil, errors.WrapC(err, code.ErrDatabase, "get cake %d failed", id)
	}

	return cake, nil
}

func (c *cakes) Save(ctx context.Context, cake *v1.Cake) (err error) {
	defer func(start time.Time) { metrics.RecordDatabaseOperation("save", backend, start, err) }(time.Now())

	if cake.ID == 0 {
		id, err := insert(ctx, c.db, cake)
		if err != nil {
			return errors.WrapC(err, code.ErrDatabase, "create cake failed")
		}
		cake.ID = id

		return nil
	}

	if !storable(cake.ID) {
		return notFound(cake.ID)
	}

	result, err := c.db.NamedExecContext(ctx, updateCake, cake)
	if err != nil {
		return errors.WrapC(err, code.ErrDatabase, "update cake %d failed", cake.ID)
	}

	if n, _ := result.RowsAffected(); n == 0 {
		return notFound(cake.ID)
	}

	return nil
}

func (c *cakes) SaveCollection(ctx context.Context, list []*v1.Cake) (err error) {
	defer func(start time.Time) { metrics.RecordDatabaseOperation("save_collection", backend, start, err) }(time.Now())

	tx, err := c.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.WrapC(err, code.ErrDatabase, "begin transaction failed")
	}

	ids := make([]uint64, len(list))
	for i, cake := range list {
		id, err := insert(ctx, tx, cake)
		if err != nil {
			_ = tx.Rollback()
			return errors.WrapC(err, code.ErrDatabase, "create cakes failed at index %d", i)
		}
		ids[i] = id
	}

	if err := tx.Commit(); err != nil {
		return errors.WrapC(err, code.ErrDatabase, "commit cakes failed")
	}

	// 提交成功后才回填 ID
	for i, cake := range list {
		cake.ID = ids[i]
	}

	return nil
}

func (c *cakes) Delete(ctx context.Context, cake *v1.Cake) (err error) {
	defer func(start time.Time) { metrics.RecordDatabaseOperation("delete", backend, start, err) }(time.Now())

	if !storable(cake.ID) {
		return notFound(cake.ID)
	}

	result, err := c.db.ExecContext(ctx, deleteCake, cake.ID)
	if err != nil {
		return errors.WrapC(err, code.ErrDatabase, "delete cake %d failed", cake.ID)
	}

	if n, _ := result.RowsAffected(); n == 0 {
		return notFound(cake.ID)
	}

	return nil
}

func insert(ctx context.Context, e sqlx.ExtContext, cake *v1.Cake) (uint64, error) {
	result, err := sqlx.NamedExecContext(ctx, e, insertCake, cake)
	if err != nil {
		return 0, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	return uint64(id), nil
}

// storable 判断 id 能否绑定为 SQLite INTEGER，驱动拒绝最高位为 1 的 uint64
func storable(id uint64) bool {
	return id <= math.MaxInt64
}

func notFound(id uint64) error {
	return errors.WithCode(code.ErrCakeNotFound, "Cake not found with id %d", id)
}
