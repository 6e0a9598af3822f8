// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package options

import (
	"fmt"

	"github.com/novalagung/gubrak"
	"github.com/spf13/pflag"
)

// 存储后端
const (
	StoreMySQL  = "mysql"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

var storeTypes = []string{StoreMySQL, StoreSQLite, StoreMemory}

// StoreOptions 选择 cake 存储后端
type StoreOptions struct {
	Type string `json:"type" mapstructure:"type"`
	// Migrate 启动时执行建表迁移
	Migrate bool `json:"migrate" mapstructure:"migrate"`
}

// NewStoreOptions 默认 sqlite
func NewStoreOptions() *StoreOptions {
	return &StoreOptions{
		Type:    StoreSQLite,
		Migrate: true,
	}
}

// Validate 类型必须受支持
func (o *StoreOptions) Validate() []error {
	var errs []error

	if found, _ := gubrak.Includes(storeTypes, o.Type); !found {
		errs = append(errs, fmt.Errorf("--store.type %q is invalid, must be one of: %v", o.Type, storeTypes))
	}

	return errs
}

// AddFlags 绑定命令行参数
func (o *StoreOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Type, "store.type", o.Type, "Cake store backend: mysql, sqlite or memory.")
	fs.BoolVar(&o.Migrate, "store.migrate", o.Migrate, "Apply schema migrations on startup.")
}
