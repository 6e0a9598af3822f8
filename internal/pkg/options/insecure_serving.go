// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package options

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/abdulrazak24/cake-manager-api/internal/pkg/server"
)

// InsecureServingOptions 明文 HTTP 监听选项
type InsecureServingOptions struct {
	BindAddress string `json:"bind-address" mapstructure:"bind-address"`
	BindPort    int    `json:"bind-port"    mapstructure:"bind-port"`
}

// NewInsecureServingOptions 默认只监听本机 8080
func NewInsecureServingOptions() *InsecureServingOptions {
	return &InsecureServingOptions{
		BindAddress: "127.0.0.1",
		BindPort:    8080,
	}
}

// ApplyTo 端口为 0 时不启动 HTTP 监听
func (s *InsecureServingOptions) ApplyTo(c *server.Config) error {
	if s.BindPort == 0 {
		c.InsecureServing = nil
		return nil
	}

	c.InsecureServing = &server.InsecureServingInfo{
		Address: net.JoinHostPort(s.BindAddress, strconv.Itoa(s.BindPort)),
	}

	return nil
}

// Validate 端口范围 0-65535
func (s *InsecureServingOptions) Validate() []error {
	var errs []error

	if s.BindPort < 0 || s.BindPort > 65535 {
		errs = append(errs, fmt.Errorf(
			"--insecure.bind-port %v must be between 0 and 65535, inclusive. 0 for turning off insecure (HTTP) port",
			s.BindPort,
		))
	}

	return errs
}

// AddFlags 绑定命令行参数
func (s *InsecureServingOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&s.BindAddress, "insecure.bind-address", s.BindAddress, ""+
		"The IP address on which to serve the --insecure.bind-port "+
		"(set to 0.0.0.0 for all IPv4 interfaces and :: for all IPv6 interfaces).")

	fs.IntVar(&s.BindPort, "insecure.bind-port", s.BindPort, ""+
		"The port on which to serve unsecured, unauthenticated access. Set to zero to disable.")
}
