// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package term 终端相关的小工具
package term

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// TerminalSize 返回 w 对应终端的宽高，w 不是终端时返回错误
func TerminalSize(w io.Writer) (int, int, error) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, 0, fmt.Errorf("given writer is no terminal")
	}

	return term.GetSize(int(f.Fd()))
}
