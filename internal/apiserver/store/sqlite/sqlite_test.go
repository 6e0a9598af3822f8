// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package sqlite

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/abdulrazak24/cake-manager-api/api/apiserver/v1"
	"github.com/abdulrazak24/cake-manager-api/internal/pkg/code"
	genericoptions "github.com/abdulrazak24/cake-manager-api/internal/pkg/options"
	"github.com/abdulrazak24/cake-manager-api/pkg/errors"
)

func newTestStore(t *testing.T) *datastore {
	t.Helper()

	opts := genericoptions.NewSQLiteOptions()
	opts.Path = ":memory:"

	factory, err := NewFactory(opts, true)
	require.NoError(t, err)
	t.Cleanup(func() { _ = factory.Close() })

	return factory.(*datastore)
}

func TestCakes_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	cakes := newTestStore(t).Cakes()

	list, err := cakes.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	cake := &v1.Cake{Flavour: "Chocolate", Icing: "Fudge"}
	require.NoError(t, cakes.Save(ctx, cake))
	assert.EqualValues(t, 1, cake.ID)

	got, err := cakes.Get(ctx, cake.ID)
	require.NoError(t, err)
	assert.Equal(t, cake, got)
	assert.Equal(t, "", got.Image)

	got.Icing = "Ganache"
	got.Image = "https://img/choc.png"
	require.NoError(t, cakes.Save(ctx, got))

	again, err := cakes.Get(ctx, cake.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ganache", again.Icing)
	assert.Equal(t, "https://img/choc.png", again.Image)
}

func TestCakes_GetMissing(t *testing.T) {
	_, err := newTestStore(t).Cakes().Get(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, code.ErrCakeNotFound))
	assert.Equal(t, "Cake not found with id 42", errors.Message(err))
}

func TestCakes_IDBeyondInt64(t *testing.T) {
	ctx := context.Background()
	cakes := newTestStore(t).Cakes()

	for _, id := range []uint64{1 << 63, math.MaxUint64} {
		_, err := cakes.Get(ctx, id)
		assert.True(t, errors.IsCode(err, code.ErrCakeNotFound), "get %d: %v", id, err)

		err = cakes.Save(ctx, &v1.Cake{ID: id, Flavour: "Plum", Icing: "Rum"})
		assert.True(t, errors.IsCode(err, code.ErrCakeNotFound), "save %d: %v", id, err)

		err = cakes.Delete(ctx, &v1.Cake{ID: id})
		assert.True(t, errors.IsCode(err, code.ErrCakeNotFound), "delete %d: %v", id, err)
	}

	_, err := cakes.Get(ctx, 1<<63)
	assert.Equal(t, "Cake not found with id 9223372036854775808", errors.Message(err))
}

func TestCakes_SaveDoesNotResurrect(t *testing.T) {
	ctx := context.Background()
	cakes := newTestStore(t).Cakes()

	cake := &v1.Cake{Flavour: "Lemon", Icing: "Glaze"}
	require.NoError(t, cakes.Save(ctx, cake))
	require.NoError(t, cakes.Delete(ctx, cake))

	err := cakes.Save(ctx, cake)
	assert.True(t, errors.IsCode(err, code.ErrCakeNotFound))

	list, err := cakes.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCakes_Delete(t *testing.T) {
	ctx := context.Background()
	cakes := newTestStore(t).Cakes()

	err := cakes.Delete(ctx, &v1.Cake{ID: 7})
	assert.True(t, errors.IsCode(err, code.ErrCakeNotFound))

	cake := &v1.Cake{Flavour: "Vanilla", Icing: "Buttercream"}
	require.NoError(t, cakes.Save(ctx, cake))
	require.NoError(t, cakes.Delete(ctx, cake))

	_, err = cakes.Get(ctx, cake.ID)
	assert.True(t, errors.IsCode(err, code.ErrCakeNotFound))
}

func TestCakes_SaveCollection(t *testing.T) {
	ctx := context.Background()
	cakes := newTestStore(t).Cakes()

	batch := []*v1.Cake{
		{Flavour: "Carrot", Icing: "Cream cheese"},
		{Flavour: "Red velvet", Icing: "Cream cheese", Image: "rv.png"},
	}
	require.NoError(t, cakes.SaveCollection(ctx, batch))
	assert.EqualValues(t, 1, batch[0].ID)
	assert.EqualValues(t, 2, batch[1].ID)

	list, err := cakes.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Carrot", list[0].Flavour)
	assert.Equal(t, "rv.png", list[1].Image)

	require.NoError(t, cakes.SaveCollection(ctx, nil))
}

func TestCakes_SaveCollectionRollsBack(t *testing.T) {
	ctx := context.Background()
	ds := newTestStore(t)

	_, err := ds.db.Exec(`CREATE TRIGGER reject_boom BEFORE INSERT ON cakes
		WHEN NEW.flavour = 'boom'
		BEGIN SELECT RAISE(ABORT, 'rejected'); END`)
	require.NoError(t, err)

	batch := []*v1.Cake{
		{Flavour: "Carrot", Icing: "Cream cheese"},
		{Flavour: "boom", Icing: "x"},
	}
	err = ds.Cakes().SaveCollection(ctx, batch)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, code.ErrDatabase))
	assert.Zero(t, batch[0].ID)
	assert.Zero(t, batch[1].ID)

	list, err := ds.Cakes().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
