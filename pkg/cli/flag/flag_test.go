// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package flag

import (
	"bytes"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
)

func TestNamedFlagSets_Order(t *testing.T) {
	var nfs NamedFlagSets
	nfs.FlagSet("server").String("server.mode", "release", "mode")
	nfs.FlagSet("mysql").String("mysql.host", "127.0.0.1:3306", "host")
	nfs.FlagSet("server").Bool("server.healthz", true, "healthz")
	nfs.FlagSet("empty")

	assert.Equal(t, []string{"server", "mysql", "empty"}, nfs.Order)

	var buf bytes.Buffer
	PrintSections(&buf, nfs, 0)
	out := buf.String()
	assert.Contains(t, out, "Server flags:")
	assert.Contains(t, out, "--server.healthz")
	assert.Contains(t, out, "Mysql flags:")
	assert.NotContains(t, out, "Empty flags:")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Server")), bytes.Index(buf.Bytes(), []byte("Mysql")))
}

func TestPrintSections_Wrapped(t *testing.T) {
	var nfs NamedFlagSets
	nfs.FlagSet("jwt").String("jwt.key", "", "Private key used to sign jwt token.")

	var buf bytes.Buffer
	PrintSections(&buf, nfs, 80)
	assert.Contains(t, buf.String(), "--jwt.key")
	assert.NotContains(t, buf.String(), "zzzz")
}

func TestWordSepNormalizeFunc(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetNormalizeFunc(WordSepNormalizeFunc)
	fs.String("bind-port", "", "")

	assert.NoError(t, fs.Parse([]string{"--bind_port=8080"}))
	v, _ := fs.GetString("bind-port")
	assert.Equal(t, "8080", v)
}
