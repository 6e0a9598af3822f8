// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package options

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	genericoptions "github.com/abdulrazak24/cake-manager-api/internal/pkg/options"
)

func TestOptions_DefaultsAreValid(t *testing.T) {
	opts := NewOptions()
	require.NoError(t, opts.Complete())

	assert.Empty(t, opts.Validate())
	assert.Len(t, opts.JwtOptions.Key, 32)
}

func TestOptions_ValidatesSelectedStoreOnly(t *testing.T) {
	opts := NewOptions()
	opts.SQLiteOptions.Path = ""
	opts.MySQLOptions.Host = ""

	errs := opts.Validate()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "sqlite.path")

	opts.StoreOptions.Type = genericoptions.StoreMemory
	assert.Empty(t, opts.Validate())
}

func TestOptions_CompleteHashesAccounts(t *testing.T) {
	opts := NewOptions()
	opts.AccountOptions.Cost = 4
	opts.AccountOptions.Users = []genericoptions.Account{
		{Username: "admin", Password: "password", Roles: []string{"ADMIN"}},
	}
	require.NoError(t, opts.Complete())

	assert.True(t, strings.HasPrefix(opts.AccountOptions.Users[0].Password, "$2"))
	assert.NotContains(t, opts.String(), "password")

	roles, ok := opts.AccountOptions.Authenticate("admin", "password")
	assert.True(t, ok)
	assert.Equal(t, []string{"ADMIN"}, roles)
}

func TestOptions_Flags(t *testing.T) {
	fss := NewOptions().Flags()

	for _, name := range []string{"generic", "jwt", "store", "mysql", "sqlite", "redis", "accounts", "logs"} {
		fs, ok := fss.FlagSets[name]
		require.True(t, ok, name)
		assert.True(t, fs.HasFlags(), name)
	}

	assert.NotNil(t, fss.FlagSets["store"].Lookup("store.type"))
}
