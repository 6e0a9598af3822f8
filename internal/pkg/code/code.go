// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package code 定义业务错误码并注册到 pkg/errors。
//
// 编码规则：服务(10/11) + 模块(2 位) + 序号(2 位)。
package code

import (
	"fmt"
	"net/http"

	"github.com/novalagung/gubrak"

	"github.com/abdulrazak24/cake-manager-api/pkg/errors"
)

var _ errors.Coder = &ErrCode{}

// ErrCode 实现 errors.Coder
type ErrCode struct {
	C    int    // 业务码
	HTTP int    // HTTP 状态码
	Ext  string // 对外描述
	Ref  string // 参考文档
}

func (coder ErrCode) Code() int { return coder.C }

func (coder ErrCode) String() string { return coder.Ext }

func (coder ErrCode) Reference() string { return coder.Ref }

// HTTPStatus 未指定时返回 500
func (coder ErrCode) HTTPStatus() int {
	if coder.HTTP == 0 {
		return http.StatusInternalServerError
	}

	return coder.HTTP
}

// allowedHTTPStatus 业务码允许映射的 HTTP 状态
var allowedHTTPStatus = []int{
	http.StatusOK,
	http.StatusBadRequest,
	http.StatusUnauthorized,
	http.StatusForbidden,
	http.StatusNotFound,
	http.StatusTooManyRequests,
	http.StatusInternalServerError,
}

// register 校验 HTTP 状态后注册，重复注册会 panic
func register(code int, httpStatus int, message string, refs ...string) {
	found, _ := gubrak.Includes(allowedHTTPStatus, httpStatus)
	if !found {
		panic(fmt.Sprintf("http code %d must be one of %v", httpStatus, allowedHTTPStatus))
	}

	var reference string
	if len(refs) > 0 {
		reference = refs[0]
	}

	errors.MustRegister(ErrCode{
		C:    code,
		HTTP: httpStatus,
		Ext:  message,
		Ref:  reference,
	})
}
