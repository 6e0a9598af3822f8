// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package errors 提供带堆栈与业务码的错误类型。
//
// 核心概念：
//   - 基础错误（fundamental）：New/Errorf 创建，记录调用堆栈
//   - 包装错误（withStack/withMessage）：为已有错误追加堆栈或消息
//   - 带码错误（withCode）：关联业务码，由 ParseCoderByErr 解析为 HTTP 状态
//
// 使用示例：
//
//	err := errors.WithCode(code.ErrCakeNotFound, "Cake not found with id %d", id)
//	err = errors.Wrap(err, "load cake")
//	fmt.Printf("%+v\n", err)
package errors

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/abdulrazak24/cake-manager-api/pkg/json"
)

// fundamental 基础错误，包含消息和堆栈
type fundamental struct {
	msg string
	*stack
}

// New 返回带有当前调用堆栈的错误
func New(message string) error {
	return &fundamental{
		msg:   message,
		stack: callers(),
	}
}

// Errorf 按格式创建错误，同时记录调用堆栈
func Errorf(format string, args ...interface{}) error {
	return &fundamental{
		msg:   fmt.Sprintf(format, args...),
		stack: callers(),
	}
}

func (f *fundamental) Error() string { return f.msg }

func (f *fundamental) Format(st fmt.State, verb rune) {
	switch verb {
	case 'v':
		if st.Flag('+') {
			io.WriteString(st, f.msg)
			f.stack.Format(st, verb)
			return
		}
		fallthrough
	case 's':
		io.WriteString(st, f.msg)
	case 'q':
		fmt.Fprintf(st, "%q", f.msg)
	}
}

type withStack struct {
	error
	*stack
}

// WithStack 为错误追加当前堆栈；带码错误保持业务码不变
func WithStack(err error) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*withCode); ok {
		return &withCode{
			err:   e.err,
			code:  e.code,
			cause: err,
			stack: callers(),
		}
	}

	return &withStack{err, callers()}
}

func (w *withStack) Cause() error  { return w.error }
func (w *withStack) Unwrap() error { return w.error }

func (w *withStack) Format(st fmt.State, verb rune) {
	switch verb {
	case 'v':
		if st.Flag('+') {
			fmt.Fprintf(st, "%+v", w.Cause())
			w.stack.Format(st, verb)
			return
		}
		fallthrough
	case 's':
		io.WriteString(st, w.Error())
	case 'q':
		fmt.Fprintf(st, "%q", w.Error())
	}
}

// Wrap 为错误追加消息与堆栈，err 为 nil 时返回 nil
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*withCode); ok {
		return &withCode{
			err:   stderrors.New(message),
			code:  e.code,
			cause: err,
			stack: callers(),
		}
	}

	err = &withMessage{cause: err, msg: message}
	return &withStack{err, callers()}
}

// Wrapf 同 Wrap，消息支持格式化
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*withCode); ok {
		return &withCode{
			err:   fmt.Errorf(format, args...),
			code:  e.code,
			cause: err,
			stack: callers(),
		}
	}

	err = &withMessage{cause: err, msg: fmt.Sprintf(format, args...)}
	return &withStack{err, callers()}
}

type withMessage struct {
	cause error
	msg   string
}

// WithMessage 仅追加消息，不记录堆栈
func WithMessage(err error, message string) error {
	if err == nil {
		return nil
	}
	return &withMessage{cause: err, msg: message}
}

func (w *withMessage) Error() string { return w.msg }
func (w *withMessage) Cause() error  { return w.cause }
func (w *withMessage) Unwrap() error { return w.cause }

func (w *withMessage) Format(st fmt.State, verb rune) {
	switch verb {
	case 'v':
		if st.Flag('+') {
			fmt.Fprintf(st, "%+v\n", w.Cause())
			io.WriteString(st, w.msg)
			return
		}
		fallthrough
	case 's', 'q':
		io.WriteString(st, w.Error())
	}
}

// withCode 带业务码的错误
type withCode struct {
	err   error // 当前层的消息
	code  int   // 业务码
	cause error // 上一级错误
	*stack
}

// WithCode 创建一个带业务码的根错误
func WithCode(code int, format string, args ...interface{}) error {
	return &withCode{
		err:   fmt.Errorf(format, args...),
		code:  code,
		stack: callers(),
	}
}

// WrapC 用业务码和新消息包装已有错误
func WrapC(err error, code int, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}

	return &withCode{
		err:   fmt.Errorf(format, args...),
		code:  code,
		cause: err,
		stack: callers(),
	}
}

// Error 返回对外安全的消息
func (w *withCode) Error() string { return fmt.Sprintf("%v", w) }

func (w *withCode) Cause() error  { return w.cause }
func (w *withCode) Unwrap() error { return w.cause }

// Format 支持 %s %v %-v %+v %#v 五种格式：
//
//	%s  当前层消息
//	%v  [code: N] 当前层消息
//	%-v 附带当前层堆栈
//	%+v 逐层打印错误链与堆栈
//	%#v JSON 结构
func (w *withCode) Format(st fmt.State, verb rune) {
	switch verb {
	case 'v':
		switch {
		case st.Flag('#'):
			b, err := json.MarshalIndent(w.toJSON(), "", "    ")
			if err != nil {
				fmt.Fprintf(st, "格式化错误: %v", err)
				return
			}
			st.Write(b)
		case st.Flag('+'):
			if w.cause != nil {
				fmt.Fprintf(st, "  ↳ %+v\n", w.cause)
			}
			fmt.Fprintf(st, "[code: %d][http:%d] %s", w.code, ParseCoderByCode(w.code).HTTPStatus(), w.err.Error())
			if w.stack != nil {
				w.stack.Format(st, verb)
			}
		case st.Flag('-'):
			fmt.Fprintf(st, "[code: %d] %s", w.code, w.err.Error())
			if w.stack != nil {
				w.stack.Format(st, verb)
			}
		default:
			fmt.Fprintf(st, "[code: %d] %s", w.code, w.err.Error())
		}
	case 's':
		io.WriteString(st, w.err.Error())
	case 'q':
		fmt.Fprintf(st, "%q", w.err.Error())
	}
}

// Cause 沿 Cause() 链返回最底层错误
func Cause(err error) error {
	type causer interface {
		Cause() error
	}

	for err != nil {
		cause, ok := err.(causer)
		if !ok || cause.Cause() == nil {
			break
		}
		err = cause.Cause()
	}

	return err
}

// Message 返回错误链中最外层带码错误的消息。
// 非带码错误返回 err.Error()。
func Message(err error) string {
	if err == nil {
		return ""
	}
	var wc *withCode
	if stderrors.As(err, &wc) {
		return wc.err.Error()
	}

	return err.Error()
}

// Is 与 As 直接转发到标准库，方便调用方只引入一个 errors 包
func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target interface{}) bool { return stderrors.As(err, target) }

type withCodeJSON struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	HTTP    int         `json:"httpStatus"`
	Ref     string      `json:"reference,omitempty"`
	Cause   interface{} `json:"cause,omitempty"`
	Stack   []string    `json:"stack,omitempty"`
}

func (w *withCode) toJSON() withCodeJSON {
	var cause interface{}
	if w.cause != nil {
		if c, ok := w.cause.(*withCode); ok {
			cause = c.toJSON()
		} else {
			cause = map[string]string{"message": w.cause.Error()}
		}
	}
	coder := ParseCoderByCode(w.code)

	return withCodeJSON{
		Code:    w.code,
		Message: w.err.Error(),
		HTTP:    coder.HTTPStatus(),
		Ref:     coder.Reference(),
		Cause:   cause,
		Stack:   w.stack.ToSlice(),
	}
}
