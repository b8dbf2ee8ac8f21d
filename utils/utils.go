// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"fmt"
	"os"
	"path"

	"github.com/ava-labs/avalanchego/utils/perms"
	formatter "github.com/onsi/ginkgo/v2/formatter"
)

func InitSubDirectory(rootPath string, name string) (string, error) {
	p := path.Join(rootPath, name)
	return p, os.MkdirAll(p, perms.ReadWriteExecute)
}

// Errf writes a ginkgo formatted message to stderr.
//
// e.g.,
//
//	Errf("{{red}}error: {{/}}%v\n", err)
//
// ref.
// https://github.com/onsi/ginkgo/blob/v2.0.0/formatter/formatter.go#L52-L73
func Errf(format string, args ...interface{}) {
	s := formatter.F(format, args...)
	fmt.Fprint(formatter.ColorableStdErr, s)
}
