// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package version 构建版本信息，变量在编译时通过 -ldflags -X 注入。
package version

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/abdulrazak24/cake-manager-api/pkg/json"
)

var (
	// GitVersion 语义化版本号
	GitVersion = "v0.0.0-master+$Format:%h$"
	// BuildDate ISO8601 格式，$(date -u +'%Y-%m-%dT%H:%M:%SZ')
	BuildDate = "1970-01-01T00:00:00Z"
	// GitCommit 构建时的提交
	GitCommit = "$Format:%H$"
	// GitTreeState clean 或 dirty
	GitTreeState = ""
)

// Info 版本信息
type Info struct {
	GitVersion   string `json:"gitVersion"`
	GitCommit    string `json:"gitCommit"`
	GitTreeState string `json:"gitTreeState"`
	BuildDate    string `json:"buildDate"`
	GoVersion    string `json:"goVersion"`
	Compiler     string `json:"compiler"`
	Platform     string `json:"platform"`
}

// String 以表格形式输出
func (info Info) String() string {
	if s, err := info.Text(); err == nil {
		return string(s)
	}

	return info.GitVersion
}

// ToJSON 以 JSON 输出
func (info Info) ToJSON() string {
	s, _ := json.Marshal(info)

	return string(s)
}

// Text 键名加粗的对齐表格
func (info Info) Text() ([]byte, error) {
	key := color.New(color.Bold).SprintFunc()

	table := uitable.New()
	table.RightAlign(0)
	table.MaxColWidth = 80
	table.Separator = " "
	table.AddRow(key("gitVersion:"), info.GitVersion)
	table.AddRow(key("gitCommit:"), info.GitCommit)
	table.AddRow(key("gitTreeState:"), info.GitTreeState)
	table.AddRow(key("buildDate:"), info.BuildDate)
	table.AddRow(key("goVersion:"), info.GoVersion)
	table.AddRow(key("compiler:"), info.Compiler)
	table.AddRow(key("platform:"), info.Platform)

	return table.Bytes(), nil
}

// Get 返回当前二进制的版本信息
func Get() Info {
	return Info{
		GitVersion:   GitVersion,
		GitCommit:    GitCommit,
		GitTreeState: GitTreeState,
		BuildDate:    BuildDate,
		GoVersion:    runtime.Version(),
		Compiler:     runtime.Compiler,
		Platform:     fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}
