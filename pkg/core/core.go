// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package core 统一 HTTP 响应写出。
//
// 成功时直接输出业务数据；失败时按错误码解析 HTTP 状态并输出 ErrResponse。
// 4xx 使用错误自身的消息，5xx 使用注册的通用描述，不回显底层细节。
package core

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdulrazak24/cake-manager-api/pkg/errors"
	"github.com/abdulrazak24/cake-manager-api/pkg/log"
)

// ErrResponse 错误响应体
type ErrResponse struct {
	// Code 业务错误码
	Code int `json:"code"`

	// Message 对外可见的错误描述
	Message string `json:"message"`

	// Reference 排错文档，可选
	Reference string `json:"reference,omitempty"`
}

// WriteResponse 写出响应，err 非空时写错误体，否则以 200 写出 data
func WriteResponse(c *gin.Context, err error, data interface{}) {
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, data)
}

// WriteCreated 以 201 写出新建的资源
func WriteCreated(c *gin.Context, err error, data interface{}) {
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusCreated, data)
}

// WriteNoContent 以 204 结束请求
func WriteNoContent(c *gin.Context, err error) {
	if err != nil {
		writeError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func writeError(c *gin.Context, err error) {
	coder := errors.ParseCoderByErr(err)
	status := coder.HTTPStatus()

	message := coder.String()
	if status < http.StatusInternalServerError {
		message = errors.Message(err)
	} else {
		log.L(c).Errorf("%-v", err)
	}

	c.AbortWithStatusJSON(status, ErrResponse{
		Code:      coder.Code(),
		Message:   message,
		Reference: coder.Reference(),
	})
}
