// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package config 由命令行选项生成运行配置
package config

import "github.com/abdulrazak24/cake-manager-api/internal/apiserver/options"

// Config cake-apiserver 的运行配置
type Config struct {
	*options.Options
}

// CreateConfigFromOptions 由选项创建配置
func CreateConfigFromOptions(opts *options.Options) (*Config, error) {
	return &Config{opts}, nil
}
