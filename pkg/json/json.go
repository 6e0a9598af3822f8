// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package json 统一项目内的 JSON 编解码入口，底层使用 json-iterator，
// 配置与标准库 encoding/json 行为兼容。
package json

import (
	jsoniter "github.com/json-iterator/go"
)

// RawMessage 未解析的原始 JSON
type RawMessage = jsoniter.RawMessage

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	// Marshal 序列化
	Marshal = json.Marshal
	// Unmarshal 反序列化
	Unmarshal = json.Unmarshal
	// MarshalIndent 带缩进的序列化
	MarshalIndent = json.MarshalIndent
	// NewDecoder 从流中解码
	NewDecoder = json.NewDecoder
	// NewEncoder 向流中编码
	NewEncoder = json.NewEncoder
)
