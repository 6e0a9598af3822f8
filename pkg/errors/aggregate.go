// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package errors

import (
	stderrors "errors"
	"strings"
)

// Aggregate 表示一组错误，常用于汇总配置项校验结果
type Aggregate interface {
	error
	Errors() []error
	Is(error) bool
}

// NewAggregate 把错误列表合并成一个 Aggregate，列表为空或全为 nil 时返回 nil
func NewAggregate(errlist []error) Aggregate {
	var errs []error
	for _, e := range errlist {
		if e != nil {
			errs = append(errs, e)
		}
	}
	if len(errs) == 0 {
		return nil
	}

	return aggregate(errs)
}

type aggregate []error

// Error 去重后用逗号拼接，多条时加方括号
func (agg aggregate) Error() string {
	if len(agg) == 1 {
		return agg[0].Error()
	}

	seen := make(map[string]struct{}, len(agg))
	msgs := make([]string, 0, len(agg))
	agg.visit(func(err error) bool {
		msg := err.Error()
		if _, ok := seen[msg]; ok {
			return false
		}
		seen[msg] = struct{}{}
		msgs = append(msgs, msg)
		return false
	})
	if len(msgs) == 1 {
		return msgs[0]
	}

	return "[" + strings.Join(msgs, ", ") + "]"
}

func (agg aggregate) Is(target error) bool {
	return agg.visit(func(err error) bool {
		return stderrors.Is(err, target)
	})
}

func (agg aggregate) visit(f func(err error) bool) bool {
	for _, err := range agg {
		switch err := err.(type) {
		case aggregate:
			if err.visit(f) {
				return true
			}
		case Aggregate:
			for _, nested := range err.Errors() {
				if f(nested) {
					return true
				}
			}
		default:
			if f(err) {
				return true
			}
		}
	}

	return false
}

func (agg aggregate) Errors() []error {
	return []error(agg)
}
