// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package options

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/abdulrazak24/cake-manager-api/internal/pkg/server"
)

// SecureServingOptions HTTPS 监听选项
type SecureServingOptions struct {
	BindAddress string `json:"bind-address" mapstructure:"bind-address"`
	// BindPort 为 0 或证书缺失时不启动 HTTPS
	BindPort   int                `json:"bind-port"    mapstructure:"bind-port"`
	ServerCert GeneratableKeyCert `json:"tls"          mapstructure:"tls"`
}

// CertKey 证书与私钥文件
type CertKey struct {
	CertFile string `json:"cert-file"        mapstructure:"cert-file"`
	KeyFile  string `json:"private-key-file" mapstructure:"private-key-file"`
}

// GeneratableKeyCert 显式指定证书，或由目录与文件名前缀推导
type GeneratableKeyCert struct {
	CertKey       CertKey `json:"cert-key"  mapstructure:"cert-key"`
	CertDirectory string  `json:"cert-dir"  mapstructure:"cert-dir"`
	PairName      string  `json:"pair-name" mapstructure:"pair-name"`
}

// NewSecureServingOptions 默认 8443，未配置证书时等同关闭
func NewSecureServingOptions() *SecureServingOptions {
	return &SecureServingOptions{
		BindAddress: "0.0.0.0",
		BindPort:    8443,
		ServerCert: GeneratableKeyCert{
			PairName: "cake-apiserver",
		},
	}
}

// ApplyTo 写入服务器配置
func (s *SecureServingOptions) ApplyTo(c *server.Config) error {
	c.SecureServing = &server.SecureServingInfo{
		BindAddress: s.BindAddress,
		BindPort:    s.BindPort,
		CertKey: server.CertKey{
			CertFile: s.ServerCert.CertKey.CertFile,
			KeyFile:  s.ServerCert.CertKey.KeyFile,
		},
	}

	return nil
}

// Validate 端口范围与证书成对出现
func (s *SecureServingOptions) Validate() []error {
	if s == nil {
		return nil
	}

	var errs []error

	if s.BindPort < 0 || s.BindPort > 65535 {
		errs = append(errs, fmt.Errorf(
			"--secure.bind-port %v must be between 0 and 65535, inclusive. 0 for turning off secure port",
			s.BindPort,
		))
	}

	keyCert := s.ServerCert.CertKey
	if (keyCert.CertFile == "") != (keyCert.KeyFile == "") {
		errs = append(errs, fmt.Errorf(
			"--secure.tls.cert-key.cert-file and --secure.tls.cert-key.private-key-file must be specified together",
		))
	}

	return errs
}

// AddFlags 绑定命令行参数
func (s *SecureServingOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&s.BindAddress, "secure.bind-address", s.BindAddress, ""+
		"The IP address on which to listen for the --secure.bind-port port.")

	fs.IntVar(&s.BindPort, "secure.bind-port", s.BindPort, ""+
		"The port on which to serve HTTPS with authentication and authorization. "+
		"HTTPS is served only when a certificate is configured. Set to zero to disable.")

	fs.StringVar(&s.ServerCert.CertDirectory, "secure.tls.cert-dir", s.ServerCert.CertDirectory, ""+
		"The directory where the TLS certs are located. "+
		"If --secure.tls.cert-key.cert-file and --secure.tls.cert-key.private-key-file are provided, this flag will be ignored.")

	fs.StringVar(&s.ServerCert.PairName, "secure.tls.pair-name", s.ServerCert.PairName, ""+
		"The name which will be used with --secure.tls.cert-dir to make a cert and key filenames. "+
		"It becomes <cert-dir>/<pair-name>.crt and <cert-dir>/<pair-name>.key")

	fs.StringVar(&s.ServerCert.CertKey.CertFile, "secure.tls.cert-key.cert-file", s.ServerCert.CertKey.CertFile, ""+
		"File containing the default x509 Certificate for HTTPS. (CA cert, if any, concatenated after server cert).")

	fs.StringVar(&s.ServerCert.CertKey.KeyFile, "secure.tls.cert-key.private-key-file",
		s.ServerCert.CertKey.KeyFile, ""+
			"File containing the default x509 private key matching --secure.tls.cert-key.cert-file.")
}

// Complete 未显式指定证书时按 cert-dir 与 pair-name 推导路径
func (s *SecureServingOptions) Complete() error {
	if s == nil || s.BindPort == 0 {
		return nil
	}

	keyCert := &s.ServerCert.CertKey
	if len(keyCert.CertFile) != 0 || len(keyCert.KeyFile) != 0 {
		return nil
	}

	if len(s.ServerCert.CertDirectory) > 0 {
		if len(s.ServerCert.PairName) == 0 {
			return fmt.Errorf("--secure.tls.pair-name is required if --secure.tls.cert-dir is set")
		}
		keyCert.CertFile = filepath.Join(s.ServerCert.CertDirectory, s.ServerCert.PairName+".crt")
		keyCert.KeyFile = filepath.Join(s.ServerCert.CertDirectory, s.ServerCert.PairName+".key")
	}

	return nil
}
