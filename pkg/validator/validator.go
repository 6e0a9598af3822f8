// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package validator 注册项目自定义的校验规则。
//
// 导入本包后，gin 的 binding 引擎与 New 返回的实例都支持 notblank 标签。
package validator

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// TagNotBlank 去除首尾空白后不能为空
const TagNotBlank = "notblank"

// NotBlank 字符串去空白后非空；指针与切片要求非 nil 且非空
func NotBlank(fl validator.FieldLevel) bool {
	field := fl.Field()

	switch field.Kind() {
	case reflect.String:
		return strings.TrimSpace(field.String()) != ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return field.Len() > 0
	case reflect.Ptr, reflect.Interface:
		return !field.IsNil()
	default:
		return !field.IsZero()
	}
}

// New 返回注册了自定义规则的校验器，错误中的字段名取 json 标签
func New() *validator.Validate {
	v := validator.New()
	register(v)

	return v
}

func register(v *validator.Validate) {
	_ = v.RegisterValidation(TagNotBlank, NotBlank)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		register(v)
	}
}
