// Package paths locates lay files and other datafiles.
package paths

import (
	"io"
	"os"

	"github.com/golang/glog"
)

// File is what Open and NoFindOpen return.
type File interface {
	io.ReadCloser
	io.Seeker
}

// Find locates the passed datafile shortname and returns an absolute or
// relative path to find the datafile at.
//
// For example, for "hero.lay" it may return "datafiles/hero.lay". An empty
// string is returned if the file is not found on disk, even if Open can
// still serve it from the embedded datafiles.
func Find(fileName string) string {
	possiblePaths := getPossiblePathsImp(fileName)

	for _, path := range possiblePaths {
		if f, err := os.Open(path); err == nil {
			f.Close()
			glog.Infof("paths.Find(%q)=%s", fileName, path)
			return path
		}
	}

	return ""
}

// Open locates the passed file in the same locations that Find would look,
// and opens it. Files not found on disk are looked up in the embedded
// datafiles. If neither has it, an error is returned.
func Open(fileName string) (File, error) {
	return openImp(fileName)
}

// NoFindOpen opens the passed path as-is.
func NoFindOpen(fileName string) (File, error) {
	return noFindOpenImp(fileName)
}
