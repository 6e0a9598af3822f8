// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package v1

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/abdulrazak24/cake-manager-api/api/apiserver/v1"
	"github.com/abdulrazak24/cake-manager-api/internal/apiserver/store/fake"
	"github.com/abdulrazak24/cake-manager-api/internal/pkg/code"
	"github.com/abdulrazak24/cake-manager-api/pkg/errors"
)

func newTestService(t *testing.T) (CakeSrv, *fake.Store) {
	t.Helper()

	s := fake.NewFactory()

	return NewService(s).Cakes(), s
}

func TestCakeService_CreateRejectsBlankFields(t *testing.T) {
	tests := []struct {
		name string
		cake *v1.Cake
		msg  string
	}{
		{"blank flavour", &v1.Cake{Flavour: "  ", Icing: "Cream"}, "Flavor cannot be empty or null"},
		{"blank icing", &v1.Cake{Flavour: "Lemon", Icing: ""}, "Icing cannot be empty or null"},
		{"both blank", &v1.Cake{}, "Flavor cannot be empty or null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, s := newTestService(t)

			_, err := srv.Create(context.Background(), tt.cake)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, code.ErrValidation))
			assert.Equal(t, tt.msg, errors.Message(err))
			assert.Empty(t, s.Calls())
		})
	}
}

func TestCakeService_Create(t *testing.T) {
	srv, _ := newTestService(t)
	ctx := context.Background()

	created, err := srv.Create(ctx, &v1.Cake{ID: 99, Flavour: "Chocolate", Icing: "Fudge", Image: "c.png"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, created.ID)
	assert.Equal(t, "Chocolate", created.Flavour)
	assert.Equal(t, "Fudge", created.Icing)
	assert.Equal(t, "c.png", created.Image)

	got, err := srv.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCakeService_UnknownID(t *testing.T) {
	srv, s := newTestService(t)
	ctx := context.Background()

	_, err := srv.Get(ctx, 1)
	assert.True(t, errors.IsCode(err, code.ErrCakeNotFound))
	assert.Equal(t, "Cake not found with id 1", errors.Message(err))

	_, err = srv.Update(ctx, 1, &v1.Cake{Flavour: "Strawberry", Icing: "Cream"})
	assert.True(t, errors.IsCode(err, code.ErrCakeNotFound))

	err = srv.Delete(ctx, 1)
	assert.True(t, errors.IsCode(err, code.ErrCakeNotFound))

	for _, call := range s.Calls() {
		assert.Equal(t, fake.OpGet, call.Op)
	}
}

func TestCakeService_Update(t *testing.T) {
	srv, s := newTestService(t)
	ctx := context.Background()

	_, err := srv.Create(ctx, &v1.Cake{Flavour: "Vanilla", Icing: "Buttercream", Image: "v.png"})
	require.NoError(t, err)
	s.Reset()

	updated, err := srv.Update(ctx, 1, &v1.Cake{ID: 5, Flavour: "Strawberry", Icing: "Cream"})
	require.NoError(t, err)
	assert.Equal(t, &v1.Cake{ID: 1, Flavour: "Strawberry", Icing: "Cream", Image: ""}, updated)
	assert.Equal(t, []fake.Call{{Op: fake.OpGet, ID: 1}, {Op: fake.OpSave, ID: 1}}, s.Calls())

	s.Reset()
	_, err = srv.Update(ctx, 1, &v1.Cake{Flavour: "Strawberry"})
	assert.True(t, errors.IsCode(err, code.ErrValidation))
	assert.Equal(t, "Icing cannot be empty or null", errors.Message(err))
	assert.Empty(t, s.Calls())
}

func TestCakeService_DeleteThenGet(t *testing.T) {
	srv, _ := newTestService(t)
	ctx := context.Background()

	created, err := srv.Create(ctx, &v1.Cake{Flavour: "Lemon", Icing: "Glaze"})
	require.NoError(t, err)

	require.NoError(t, srv.Delete(ctx, created.ID))

	_, err = srv.Get(ctx, created.ID)
	assert.True(t, errors.IsCode(err, code.ErrCakeNotFound))
}

func TestCakeService_CreateCollection(t *testing.T) {
	srv, s := newTestService(t)
	ctx := context.Background()

	created, err := srv.CreateCollection(ctx, v1.CakeList{
		{Flavour: "Carrot", Icing: "Cream cheese"},
		{Flavour: "Red velvet", Icing: "Cream cheese"},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, "Carrot", created[0].Flavour)
	assert.Equal(t, "Red velvet", created[1].Flavour)
	assert.NotZero(t, created[0].ID)
	assert.NotZero(t, created[1].ID)
	assert.NotEqual(t, created[0].ID, created[1].ID)
	assert.Equal(t, []fake.Call{{Op: fake.OpSaveCollection, Count: 2}}, s.Calls())
}

func TestCakeService_CreateCollectionInvalidItem(t *testing.T) {
	srv, s := newTestService(t)

	_, err := srv.CreateCollection(context.Background(), v1.CakeList{
		{Flavour: "Carrot", Icing: "Cream cheese"},
		{Flavour: "Red velvet", Icing: " "},
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, code.ErrValidation))
	assert.Equal(t, "cakes[1]: Icing cannot be empty or null", errors.Message(err))
	assert.Empty(t, s.Calls())
}

func TestCakeService_CreateCollectionEmpty(t *testing.T) {
	srv, s := newTestService(t)

	created, err := srv.CreateCollection(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, created)
	assert.Empty(t, created)
	assert.Empty(t, s.Calls())
}

func TestCakeService_StoreFailure(t *testing.T) {
	srv, s := newTestService(t)
	s.FailOn(fake.OpList, errors.WithCode(code.ErrDatabase, "connection refused"))

	_, err := srv.List(context.Background())
	assert.True(t, errors.IsCode(err, code.ErrDatabase))
}
