// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abdulrazak24/cake-manager-api/pkg/json"
)

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, GitVersion, info.GitVersion)

	var decoded Info
	assert.NoError(t, json.Unmarshal([]byte(info.ToJSON()), &decoded))
	assert.Equal(t, info, decoded)

	assert.Contains(t, info.String(), info.GitVersion)
}
