// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"sync"
)

var (
	_codes     = map[int]Coder{}
	_codeMutex = &sync.Mutex{}

	// _unknownCode 未注册错误的兜底编码
	_unknownCode = defaultCoder{
		C:    1,
		HTTP: http.StatusInternalServerError,
		Ext:  "An internal server error occurred",
	}
)

// Coder 定义错误码的标准行为
type Coder interface {
	// Code 业务错误码
	Code() int
	// HTTPStatus 对应的 HTTP 状态码
	HTTPStatus() int
	// String 对外的默认描述
	String() string
	// Reference 参考文档地址
	Reference() string
}

type defaultCoder struct {
	C    int
	HTTP int
	Ext  string
	Ref  string
}

func (d defaultCoder) Code() int { return d.C }

func (d defaultCoder) HTTPStatus() int {
	if d.HTTP == 0 {
		return http.StatusInternalServerError
	}
	return d.HTTP
}

func (d defaultCoder) String() string    { return d.Ext }
func (d defaultCoder) Reference() string { return d.Ref }

// Register 注册错误码，已存在则覆盖。编码 0 保留，注册会 panic。
func Register(coder Coder) {
	if coder.Code() == 0 {
		panic("code `0` is reserved as unknownCode error code")
	}

	_codeMutex.Lock()
	defer _codeMutex.Unlock()
	_codes[coder.Code()] = coder
}

// MustRegister 注册错误码，已存在则 panic
func MustRegister(coder Coder) {
	if coder.Code() == 0 {
		panic("code '0' is reserved as ErrUnknown error code")
	}

	_codeMutex.Lock()
	defer _codeMutex.Unlock()
	if _, ok := _codes[coder.Code()]; ok {
		panic(fmt.Sprintf("code: %d already exist", coder.Code()))
	}
	_codes[coder.Code()] = coder
}

// ParseCoderByErr 解析错误链上第一个带码错误对应的 Coder。
// err 为 nil 返回 nil；找不到或未注册返回兜底编码。
func ParseCoderByErr(err error) Coder {
	if err == nil {
		return nil
	}

	var wc *withCode
	if stderrors.As(err, &wc) {
		return ParseCoderByCode(wc.code)
	}

	return _unknownCode
}

// ParseCoderByCode 按编码查找 Coder
func ParseCoderByCode(code int) Coder {
	_codeMutex.Lock()
	defer _codeMutex.Unlock()
	if coder, ok := _codes[code]; ok {
		return coder
	}

	return _unknownCode
}

// IsCode 判断错误链中是否包含指定业务码
func IsCode(err error, code int) bool {
	if v, ok := err.(*withCode); ok {
		if v.code == code {
			return true
		}
		if v.cause != nil {
			return IsCode(v.cause, code)
		}
		return false
	}

	type unwrapper interface{ Unwrap() error }
	if u, ok := err.(unwrapper); ok && u.Unwrap() != nil {
		return IsCode(u.Unwrap(), code)
	}

	return false
}

func init() {
	Register(_unknownCode)
}
