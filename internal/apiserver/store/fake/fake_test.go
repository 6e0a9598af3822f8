// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package fake

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/abdulrazak24/cake-manager-api/api/apiserver/v1"
	"github.com/abdulrazak24/cake-manager-api/internal/pkg/code"
	"github.com/abdulrazak24/cake-manager-api/pkg/errors"
)

func TestStore_CRUD(t *testing.T) {
	ctx := context.Background()
	s := NewFactory()
	cakes := s.Cakes()

	cake := &v1.Cake{Flavour: "Chocolate", Icing: "Fudge"}
	require.NoError(t, cakes.Save(ctx, cake))
	assert.EqualValues(t, 1, cake.ID)

	cake.Icing = "changed outside"
	got, err := cakes.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Fudge", got.Icing)

	got.Icing = "Ganache"
	require.NoError(t, cakes.Save(ctx, got))

	list, err := cakes.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ganache", list[0].Icing)

	require.NoError(t, cakes.Delete(ctx, got))
	_, err = cakes.Get(ctx, 1)
	assert.True(t, errors.IsCode(err, code.ErrCakeNotFound))
	assert.Equal(t, "Cake not found with id 1", errors.Message(err))

	err = cakes.Save(ctx, got)
	assert.True(t, errors.IsCode(err, code.ErrCakeNotFound))

	assert.Equal(t, []Call{
		{Op: OpSave},
		{Op: OpGet, ID: 1},
		{Op: OpSave, ID: 1},
		{Op: OpList},
		{Op: OpDelete, ID: 1},
		{Op: OpGet, ID: 1},
		{Op: OpSave, ID: 1},
	}, s.Calls())
}

func TestStore_SaveCollectionOrder(t *testing.T) {
	ctx := context.Background()
	s := NewFactory()

	batch := []*v1.Cake{{Flavour: "a", Icing: "a"}, {Flavour: "b", Icing: "b"}, {Flavour: "c", Icing: "c"}}
	require.NoError(t, s.Cakes().SaveCollection(ctx, batch))

	list, err := s.Cakes().List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, cake := range list {
		assert.EqualValues(t, i+1, cake.ID)
		assert.Equal(t, batch[i].Flavour, cake.Flavour)
	}
	assert.Equal(t, Call{Op: OpSaveCollection, Count: 3}, s.Calls()[0])
}

func TestStore_FailOn(t *testing.T) {
	ctx := context.Background()
	s := NewFactory()
	boom := errors.WithCode(code.ErrDatabase, "boom")

	s.FailOn(OpList, boom)
	_, err := s.Cakes().List(ctx)
	assert.Equal(t, boom, err)

	s.FailOn(OpList, nil)
	list, err := s.Cakes().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	s.FailOn(OpSave, boom)
	cake := &v1.Cake{Flavour: "x", Icing: "y"}
	assert.Error(t, s.Cakes().Save(ctx, cake))
	assert.Zero(t, cake.ID)

	s.Reset()
	assert.Empty(t, s.Calls())
	require.NoError(t, s.Cakes().Save(ctx, cake))
}
