package lzw

import "github.com/coreos/pkg/capnslog"

var plog = capnslog.NewPackageLogger("github.com/ghalt/compresskit", "lzw")
