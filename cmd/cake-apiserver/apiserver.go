// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// cake-apiserver 提供带角色控制的 cake 增删改查接口
package main

import "github.com/abdulrazak24/cake-manager-api/internal/apiserver"

func main() {
	apiserver.NewApp("cake-apiserver").Run()
}
