// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package v1 定义 cake 资源。Cake 同时用作 API 交换格式与存储模型。
package v1

// Cake 蛋糕资源，对应 cakes 表
type Cake struct {
	// ID 由存储层在首次保存时分配，0 表示尚未持久化
	ID uint64 `json:"id" gorm:"column:id;primaryKey;autoIncrement" db:"id"`

	// Required: true
	Flavour string `json:"flavour" gorm:"column:flavour;not null" db:"flavour" validate:"notblank"`

	// Required: true
	Icing string `json:"icing" gorm:"column:icing;not null" db:"icing" validate:"notblank"`

	// 可选，不做校验
	Image string `json:"image" gorm:"column:image;not null" db:"image"`
}

// CakeList 批量创建的请求与响应体
type CakeList []*Cake

// TableName 映射到 cakes 表
func (c *Cake) TableName() string {
	return "cakes"
}
