package mmfile

import "errors"

var errUnsupported = errors.New("mmfile: mmap not supported on this platform")
