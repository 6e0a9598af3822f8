// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package app

import (
	cliflag "github.com/abdulrazak24/cake-manager-api/pkg/cli/flag"
)

// CliOptions 命令行选项需要实现的接口
type CliOptions interface {
	// Flags 按分组返回标志集
	Flags() (fss cliflag.NamedFlagSets)
	Validate() []error
}

// CompleteableOptions 校验前补全默认值
type CompleteableOptions interface {
	Complete() error
}

// PrintableOptions 启动时打印最终配置
type PrintableOptions interface {
	String() string
}
