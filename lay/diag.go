package lay

import (
	"github.com/golang/glog"
)

// Diagnostics are informational only and never change the parse result.
// Tests replace these to look at what got reported.
var (
	infof = glog.Infof
	warnf = glog.Warningf
)
