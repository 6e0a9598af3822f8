// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package mysql

import (
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"

	v1 "github.com/abdulrazak24/cake-manager-api/api/apiserver/v1"
)

func TestMigrationsEmbedded(t *testing.T) {
	source, err := iofs.New(migrationsFS, "migrations")
	require.NoError(t, err)
	defer source.Close()

	first, err := source.First()
	require.NoError(t, err)
	assert.EqualValues(t, 1, first)

	r, _, err := source.ReadUp(first)
	require.NoError(t, err)
	defer r.Close()

	body, err := io.ReadAll(r)
	require.NoError(t, err)
	sql := string(body)
	for _, col := range []string{"`flavour` text NOT NULL", "`icing` text NOT NULL", "`image` text NOT NULL"} {
		assert.True(t, strings.Contains(sql, col), col)
	}
	// 与 SQLite 一致，字段长度不设上限
	assert.False(t, strings.Contains(sql, "varchar"))
}

func TestCakeSchema_ImageAlwaysWritten(t *testing.T) {
	s, err := schema.Parse(&v1.Cake{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	assert.Equal(t, "cakes", s.Table)

	for _, name := range []string{"flavour", "icing", "image"} {
		field := s.LookUpField(name)
		require.NotNil(t, field, name)
		assert.True(t, field.NotNull, name)
		assert.False(t, field.HasDefaultValue, name)
	}
}

func TestGetMySQLFactoryOr_NilOptions(t *testing.T) {
	_, err := GetMySQLFactoryOr(nil, false)
	assert.Error(t, err)
}
