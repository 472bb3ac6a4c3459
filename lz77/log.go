package lz77

import "github.com/coreos/pkg/capnslog"

var plog = capnslog.NewPackageLogger("github.com/ghalt/compresskit", "lz77")
