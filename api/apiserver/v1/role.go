// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package v1

// 调用方角色，ADMIN 同时具备 USER 的读权限
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// Roles 全部合法角色
var Roles = []string{RoleUser, RoleAdmin}

// HasRole 判断角色集合是否满足 required
func HasRole(roles []string, required string) bool {
	for _, r := range roles {
		if r == required || r == RoleAdmin {
			return true
		}
	}

	return false
}
