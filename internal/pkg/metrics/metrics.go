// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package metrics 业务与存储层的 Prometheus 指标，注册到默认 registry，由 /metrics 暴露
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/abdulrazak24/cake-manager-api/internal/pkg/code"
	"github.com/abdulrazak24/cake-manager-api/pkg/errors"
)

// 业务结果标签
const (
	ResultSuccess  = "success"
	ResultNotFound = "not_found"
	ResultInvalid  = "invalid"
	ResultError    = "error"
)

var (
	// CakeOperations cake 业务操作计数
	CakeOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cake_operations_total",
		Help: "Total number of cake operations by operation and result",
	}, []string{"operation", "result"})

	// CakeOperationDuration cake 业务操作耗时
	CakeOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cake_operation_duration_seconds",
		Help:    "Duration of cake operations",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
	}, []string{"operation"})

	// DatabaseOperations 存储层调用计数
	DatabaseOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "database_operations_total",
		Help: "Total number of database operations by type",
	}, []string{"operation", "backend"})

	// DatabaseDuration 存储层调用耗时
	DatabaseDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "database_operation_duration_seconds",
		Help:    "Duration of database operations",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
	}, []string{"operation", "backend"})

	// DatabaseErrors 存储层错误计数，记录不存在不算错误
	DatabaseErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "database_errors_total",
		Help: "Total number of database errors",
	}, []string{"operation", "backend"})

	// TokenRevocations 注销的令牌数
	TokenRevocations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "token_revocations_total",
		Help: "Total number of revoked tokens by backend",
	}, []string{"backend"})
)

// ResultOf 按错误码归类操作结果
func ResultOf(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case errors.IsCode(err, code.ErrCakeNotFound):
		return ResultNotFound
	case errors.IsCode(err, code.ErrValidation), errors.IsCode(err, code.ErrBind):
		return ResultInvalid
	default:
		return ResultError
	}
}

// RecordCakeOperation 记录一次业务操作
func RecordCakeOperation(operation string, start time.Time, err error) {
	CakeOperations.WithLabelValues(operation, ResultOf(err)).Inc()
	CakeOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// RecordDatabaseOperation 记录一次存储调用
func RecordDatabaseOperation(operation, backend string, start time.Time, err error) {
	DatabaseOperations.WithLabelValues(operation, backend).Inc()
	DatabaseDuration.WithLabelValues(operation, backend).Observe(time.Since(start).Seconds())
	if err != nil && !errors.IsCode(err, code.ErrCakeNotFound) {
		DatabaseErrors.WithLabelValues(operation, backend).Inc()
	}
}
