package paths

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-sglay/datafiles"
)

// PathEnv names the environment variable holding extra directories to search
// for datafiles, separated like PATH.
const PathEnv = "SGLAY_PATH"

// getPossiblePathDirsImp returns the directories searched by Find, in order:
// those listed in $SGLAY_PATH, then the working directory and the datafiles
// directory next to it or one level up (for tests running in a package
// directory).
func getPossiblePathDirsImp() []string {
	var dirs []string
	for _, dir := range filepath.SplitList(os.Getenv(PathEnv)) {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return append(dirs, ".", "datafiles", filepath.Join("..", "datafiles"))
}

// getPossiblePathsImp returns the candidate paths of the passed datafile
// shortname.
func getPossiblePathsImp(fileName string) []string {
	if filepath.IsAbs(fileName) {
		return []string{fileName}
	}
	dirs := getPossiblePathDirsImp()
	paths := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		paths = append(paths, filepath.Join(dir, fileName))
	}
	return paths
}

func openImp(fileName string) (File, error) {
	if path := Find(fileName); path != "" {
		return noFindOpenImp(path)
	}
	return openEmbeddedImp(fileName)
}

func noFindOpenImp(fileName string) (File, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "paths.NoFindOpen(%q)", fileName)
	}
	return f, nil
}

// openEmbeddedImp opens one of the sample files compiled into the datafiles
// package.
func openEmbeddedImp(fileName string) (File, error) {
	f, err := datafiles.FS.Open(filepath.ToSlash(fileName))
	if err != nil {
		return nil, errors.Wrapf(err, "paths.Open(%q): not found on disk or embedded", fileName)
	}
	rs, ok := f.(File)
	if !ok {
		f.Close()
		return nil, errors.Wrapf(fs.ErrInvalid, "paths.Open(%q): embedded file is not seekable", fileName)
	}
	glog.Infof("paths.Open(%q)=embedded", fileName)
	return rs, nil
}
